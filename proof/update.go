package proof

import (
	"fmt"

	"github.com/giuliop/ptau-ceremony/bls"
)

// UpdateProof is one contributor's record: the public key of the scalar
// they applied, and the resulting degree-1 G1 element of the SRS. It
// carries only the "after" point — the chain is anchored once, at the
// starting SRS, not per-proof.
type UpdateProof struct {
	PublicKey  bls.G2Point
	AfterTauG1 bls.G1Point
}

// NewUpdateProof builds an UpdateProof from the contributor's public key
// and the post-update degree-1 G1 element.
func NewUpdateProof(publicKey bls.G2Point, afterTauG1 bls.G1Point) *UpdateProof {
	return &UpdateProof{PublicKey: publicKey, AfterTauG1: afterTauG1}
}

// VerifyChain builds a ProductDecomposition anchored at startingPoint
// (the pre-ceremony SRS's degree-1 G1 element) and extends it with each
// proof in order, then checks it verifies.
//
// The proof list is walked with an explicit index, not a range over its
// length, fixing a source variant's `for i in len(proofs)` bug.
func VerifyChain(startingPoint bls.G1Point, proofs []*UpdateProof) (bool, error) {
	if len(proofs) == 0 {
		return false, fmt.Errorf("proof: cannot verify an empty chain")
	}
	chain, err := NewProductDecomposition(startingPoint)
	if err != nil {
		return false, fmt.Errorf("proof: %w", err)
	}
	for i := 0; i < len(proofs); i++ {
		chain.Extend(proofs[i].AfterTauG1, proofs[i].PublicKey)
	}
	return chain.Verify()
}
