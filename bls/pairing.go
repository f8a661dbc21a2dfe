package bls

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// PairingsEqual reports whether e(a1, b1) == e(a2, b2) in GT. This is the
// single primitive that both the product-decomposition proof and the SRS
// structural "powers" check are built from.
func PairingsEqual(a1 G1Point, b1 G2Point, a2 G1Point, b2 G2Point) (bool, error) {
	lhs, err := bls12381.Pair([]bls12381.G1Affine{a1.p}, []bls12381.G2Affine{b1.p})
	if err != nil {
		return false, fmt.Errorf("bls: computing pairing: %w", err)
	}
	rhs, err := bls12381.Pair([]bls12381.G1Affine{a2.p}, []bls12381.G2Affine{b2.p})
	if err != nil {
		return false, fmt.Errorf("bls: computing pairing: %w", err)
	}
	return lhs.Equal(&rhs), nil
}
