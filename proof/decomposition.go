package proof

import (
	"errors"
	"fmt"

	"github.com/giuliop/ptau-ceremony/bls"
)

// ErrIdentityStart is returned by NewProductDecomposition when the chain
// would be anchored at the identity point.
var ErrIdentityStart = errors.New("proof: product decomposition cannot start at the identity")

// ProductDecomposition is the running chain A[0] -> A[1] -> ... -> A[n] in
// G1, with G2 witnesses w[1..n] proving each step is a scalar
// multiplication by a known exponent.
type ProductDecomposition struct {
	points    []bls.G1Point
	witnesses []bls.G2Point
}

// NewProductDecomposition starts a chain at the given point, which must
// not be the identity.
func NewProductDecomposition(start bls.G1Point) (*ProductDecomposition, error) {
	if start.IsIdentity() {
		return nil, ErrIdentityStart
	}
	return &ProductDecomposition{points: []bls.G1Point{start}}, nil
}

// CurrentProduct returns the last point appended to the chain.
func (p *ProductDecomposition) CurrentProduct() bls.G1Point {
	return p.points[len(p.points)-1]
}

// Extend appends one more step to the chain: `next` should equal
// [x]*CurrentProduct() for some scalar x, and `witness` should equal
// [x]*G2; Verify checks this via pairing, it does not take x on trust.
func (p *ProductDecomposition) Extend(next bls.G1Point, witness bls.G2Point) {
	p.points = append(p.points, next)
	p.witnesses = append(p.witnesses, witness)
}

// Verify reports whether, for every consecutive pair (A[i-1], A[i])
// zipped with w[i], e(A[i], G2) == e(A[i-1], w[i]) holds.
//
// An identity witness degenerates this equation without Verify rejecting
// it here — that rejection happens one layer up, in srs.IsCorrect's
// non-identity check on the resulting SRS.
func (p *ProductDecomposition) Verify() (bool, error) {
	_, g2Gen := bls.Generators()
	for i := 1; i < len(p.points); i++ {
		ok, err := bls.PairingsEqual(p.points[i], g2Gen, p.points[i-1], p.witnesses[i-1])
		if err != nil {
			return false, fmt.Errorf("proof: verifying step %d: %w", i, err)
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}
