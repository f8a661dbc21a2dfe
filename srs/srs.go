package srs

import (
	"fmt"

	"github.com/giuliop/ptau-ceremony/bls"
	"github.com/giuliop/ptau-ceremony/keypair"
	"github.com/giuliop/ptau-ceremony/proof"
	"golang.org/x/sync/errgroup"
)

// SRS is the powers-of-τ accumulator: g1_points[i] = [τ^i]*starting_g1
// and g2_points[j] = [τ^j]*starting_g2 for some hidden τ, once it has
// been through at least one honest update.
type SRS struct {
	params   Parameters
	g1Points []bls.G1Point
	g2Points []bls.G2Point
}

// New builds a fresh, trivial (τ=1) SRS: every element equal to the
// corresponding starting point.
func New(params Parameters) (*SRS, error) {
	if params.NumG1 < 2 || params.NumG2 < 2 {
		return nil, ErrTooSmall
	}
	g1 := make([]bls.G1Point, params.NumG1)
	for i := range g1 {
		g1[i] = params.StartingG1
	}
	g2 := make([]bls.G2Point, params.NumG2)
	for i := range g2 {
		g2[i] = params.StartingG2
	}
	return &SRS{params: params, g1Points: g1, g2Points: g2}, nil
}

// Parameters returns the bound parameters this SRS was built or
// deserialized with.
func (s *SRS) Parameters() Parameters { return s.params }

// G1Points returns the current G1 power vector. The returned slice is a
// copy; mutating it does not affect s.
func (s *SRS) G1Points() []bls.G1Point {
	out := make([]bls.G1Point, len(s.g1Points))
	copy(out, s.g1Points)
	return out
}

// G2Points returns the current G2 power vector. The returned slice is a
// copy; mutating it does not affect s.
func (s *SRS) G2Points() []bls.G2Point {
	out := make([]bls.G2Point, len(s.g2Points))
	copy(out, s.g2Points)
	return out
}

// DegreeOneG1 returns g1_points[1], the anchor every chain proof is built
// around.
func (s *SRS) DegreeOneG1() bls.G1Point { return s.g1Points[1] }

// Clone returns a deep, independent copy of s. A contributor takes this
// snapshot before calling Update so that the in-place mutation Update
// performs cannot alias the pre-update state it needs for its own
// subsequent subgroup check.
func (s *SRS) Clone() *SRS {
	return &SRS{
		params:   s.params,
		g1Points: s.G1Points(),
		g2Points: s.G2Points(),
	}
}

// Update applies a fresh secret scalar to every element of the SRS in
// place: g1_points[i] *= s^i, g2_points[j] *= s^j. It returns the
// UpdateProof pairing the contributor's public key with the resulting
// degree-1 G1 element.
//
// The two point vectors are updated concurrently, since element i only
// depends on s^i and points[i]; each goroutine writes to disjoint slice
// indices, so the result does not depend on scheduling order.
func (s *SRS) Update(kp *keypair.KeyPair) (*proof.UpdateProof, error) {
	var g errgroup.Group
	g.Go(func() error {
		scalarMulEach(s.g1Points, kp, bls.G1Point.ScalarMul)
		return nil
	})
	g.Go(func() error {
		scalarMulEach(s.g2Points, kp, bls.G2Point.ScalarMul)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("srs: update: %w", err)
	}

	return proof.NewUpdateProof(kp.Public, s.DegreeOneG1()), nil
}

// scalarMulEach applies points[i] *= s^i in place, for the per-index
// scalar kp.PowI(i). Every write lands at a disjoint index, so calling
// this concurrently for the G1 and G2 vectors produces a result that
// does not depend on goroutine scheduling.
func scalarMulEach[T any](points []T, kp *keypair.KeyPair, mul func(T, bls.Scalar) T) {
	for i := range points {
		points[i] = mul(points[i], kp.PowI(uint(i)))
	}
}

// IsCorrect reports whether s satisfies all three well-formedness
// conditions: non-identity degree-0 elements, subgroup membership
// throughout, and the structural "powers" pairing relation.
func (s *SRS) IsCorrect() (bool, error) {
	if s.g1Points[0].IsIdentity() || s.g2Points[0].IsIdentity() {
		return false, nil
	}
	if !s.SubgroupChecks() {
		return false, nil
	}
	return s.structureCheck()
}

// SubgroupChecks reports whether every point in both vectors lies in its
// group's prime-order subgroup.
func (s *SRS) SubgroupChecks() bool {
	for _, p := range s.g1Points {
		if !p.IsInSubgroup() {
			return false
		}
	}
	for _, p := range s.g2Points {
		if !p.IsInSubgroup() {
			return false
		}
	}
	return true
}

// structureCheck verifies the geometric-progression relation across both
// point vectors via pairing equations.
func (s *SRS) structureCheck() (bool, error) {
	g10, g11 := s.g1Points[0], s.g1Points[1]
	for i := 0; i+1 < len(s.g1Points); i++ {
		ok, err := bls.PairingsEqual(s.g1Points[i+1], s.g2Points[0], s.g1Points[i], s.g2Points[1])
		if err != nil {
			return false, fmt.Errorf("srs: G1 structure check at index %d: %w", i, err)
		}
		if !ok {
			return false, nil
		}
	}
	for j := 0; j+1 < len(s.g2Points); j++ {
		ok, err := bls.PairingsEqual(g10, s.g2Points[j+1], g11, s.g2Points[j])
		if err != nil {
			return false, fmt.Errorf("srs: G2 structure check at index %d: %w", j, err)
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// VerifyUpdates reports whether after was produced from before by
// exactly the chain of contributions in proofs: sizes match, the chain
// is linked on both its head (last proof's AfterTauG1 equals after's
// degree-1 element) and tail (the product-decomposition proof anchored
// at before's degree-1 element verifies), and after.IsCorrect holds.
// before is not independently re-verified: a malformed before
// propagates into after, which the final check catches.
func VerifyUpdates(before, after *SRS, proofs []*proof.UpdateProof) (bool, error) {
	if len(proofs) == 0 {
		return false, fmt.Errorf("srs: verify updates: empty proof list")
	}
	if len(before.g1Points) != len(after.g1Points) || len(before.g2Points) != len(after.g2Points) {
		return false, nil
	}
	last := proofs[len(proofs)-1]
	if !last.AfterTauG1.Equal(after.DegreeOneG1()) {
		return false, nil
	}
	chainOK, err := proof.VerifyChain(before.DegreeOneG1(), proofs)
	if err != nil {
		return false, fmt.Errorf("srs: verify updates: %w", err)
	}
	if !chainOK {
		return false, nil
	}
	return after.IsCorrect()
}
