package proof

import (
	"testing"

	"github.com/giuliop/ptau-ceremony/bls"
)

func TestNewProductDecompositionRejectsIdentity(t *testing.T) {
	var identity bls.G1Point
	if _, err := NewProductDecomposition(identity); err == nil {
		t.Errorf("expected an error starting a chain at the identity")
	}
}

func TestProductDecompositionVerifiesHonestChain(t *testing.T) {
	g1, _ := Generators(t)
	chain, err := NewProductDecomposition(g1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	x1 := bls.ScalarFromInt(5)
	x2 := bls.ScalarFromInt(9)
	a1 := g1.ScalarMul(x1)
	w1 := x1.PublicKey()
	a2 := a1.ScalarMul(x2)
	w2 := x2.PublicKey()

	chain.Extend(a1, w1)
	chain.Extend(a2, w2)

	ok, err := chain.Verify()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Errorf("honest chain should verify")
	}
}

func TestProductDecompositionRejectsTamperedStep(t *testing.T) {
	g1, _ := Generators(t)
	chain, err := NewProductDecomposition(g1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	x1 := bls.ScalarFromInt(5)
	a1 := g1.ScalarMul(x1)
	w1 := x1.PublicKey()
	chain.Extend(a1, w1)

	// tamper: extend with a witness that doesn't match the next point
	wrongWitness := bls.ScalarFromInt(7).PublicKey()
	chain.Extend(a1.ScalarMul(bls.ScalarFromInt(9)), wrongWitness)

	ok, err := chain.Verify()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Errorf("tampered chain should not verify")
	}
}

func TestVerifyChainMatchesPerStepUpdateProofs(t *testing.T) {
	g1, _ := Generators(t)

	scalars := []int64{123, 456, 789}
	var proofs []*UpdateProof
	current := g1
	for _, s := range scalars {
		sc := bls.ScalarFromInt(s)
		current = current.ScalarMul(sc)
		proofs = append(proofs, NewUpdateProof(sc.PublicKey(), current))
	}

	ok, err := VerifyChain(g1, proofs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Errorf("chain of honest update proofs should verify")
	}
}

func TestVerifyChainRejectsTamperedMiddleProof(t *testing.T) {
	g1, _ := Generators(t)

	scalars := []int64{123, 456, 789}
	var proofs []*UpdateProof
	current := g1
	for _, s := range scalars {
		sc := bls.ScalarFromInt(s)
		current = current.ScalarMul(sc)
		proofs = append(proofs, NewUpdateProof(sc.PublicKey(), current))
	}

	// replace the middle proof's after-point with the generator
	proofs[1] = NewUpdateProof(proofs[1].PublicKey, g1)

	ok, err := VerifyChain(g1, proofs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Errorf("chain with a tampered middle proof should not verify")
	}
}

func TestVerifyChainRejectsEmptyProofList(t *testing.T) {
	g1, _ := Generators(t)
	if _, err := VerifyChain(g1, nil); err == nil {
		t.Errorf("expected an error verifying an empty chain")
	}
}

// Generators is a small test helper returning the canonical generator
// pair.
func Generators(t *testing.T) (bls.G1Point, bls.G2Point) {
	t.Helper()
	g1, g2 := bls.Generators()
	return g1, g2
}
