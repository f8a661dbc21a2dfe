package srs

import "github.com/giuliop/ptau-ceremony/bls"

// Parameters bounds one sub-ceremony: the fixed lengths of the G1 and G2
// point vectors, and the starting points a fresh SRS is built from.
type Parameters struct {
	NumG1      int
	NumG2      int
	StartingG1 bls.G1Point
	StartingG2 bls.G2Point
}

// DefaultParameters returns Parameters using the canonical BLS12-381
// generators as starting points.
func DefaultParameters(numG1, numG2 int) Parameters {
	g1, g2 := bls.Generators()
	return Parameters{NumG1: numG1, NumG2: numG2, StartingG1: g1, StartingG2: g2}
}
