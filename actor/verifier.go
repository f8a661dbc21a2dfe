package actor

import (
	"fmt"

	"github.com/giuliop/ptau-ceremony/bls"
	"github.com/giuliop/ptau-ceremony/proof"
	"github.com/giuliop/ptau-ceremony/srs"
)

// Verifier independently re-checks a completed (or partially completed)
// ceremony round from nothing but its public record: the starting SRS,
// the claimed ending SRS, and the ordered proof chain between them. It
// holds no secrets and trusts no party.
type Verifier struct {
	starting *srs.SRS
	ending   *srs.SRS
	proofs   []*proof.UpdateProof
}

// NewVerifier deserializes startingWire and endingWire under params and
// binds the proof chain claimed to link them.
func NewVerifier(params srs.Parameters, startingWire, endingWire []byte, proofs []*proof.UpdateProof) (*Verifier, error) {
	starting, err := srs.Deserialize(params, startingWire)
	if err != nil {
		return nil, fmt.Errorf("actor: verifier: starting: %w", err)
	}
	ending, err := srs.Deserialize(params, endingWire)
	if err != nil {
		return nil, fmt.Errorf("actor: verifier: ending: %w", err)
	}
	return &Verifier{starting: starting, ending: ending, proofs: proofs}, nil
}

// VerifyCeremony reports whether the bound ending SRS is a valid product
// of exactly the bound proof chain applied to the bound starting SRS.
func (v *Verifier) VerifyCeremony() (bool, error) {
	ok, err := srs.VerifyUpdates(v.starting, v.ending, v.proofs)
	if err != nil {
		return false, fmt.Errorf("actor: verifier: %w", err)
	}
	return ok, nil
}

// FindContribution reports the position of pub in the proof chain, after
// first confirming the chain itself verifies: a public key cannot be
// trusted to belong to the ceremony until the ceremony it is being
// searched in has been checked. Returns (-1, false, nil) if the ceremony
// is valid but pub never contributed.
func (v *Verifier) FindContribution(pub bls.G2Point) (int, bool, error) {
	ok, err := v.VerifyCeremony()
	if err != nil {
		return -1, false, fmt.Errorf("actor: verifier: find contribution: %w", err)
	}
	if !ok {
		return -1, false, fmt.Errorf("actor: verifier: find contribution: ceremony does not verify")
	}
	idx, found := v.FindContributionNoVerify(pub)
	return idx, found, nil
}

// FindContributionNoVerify is the same lookup as FindContribution without
// the verification step, for callers who have already called
// VerifyCeremony once and want to look up several public keys without
// paying its pairing-heavy cost again.
func (v *Verifier) FindContributionNoVerify(pub bls.G2Point) (int, bool) {
	for i, p := range v.proofs {
		if p.PublicKey.Equal(pub) {
			return i, true
		}
	}
	return -1, false
}
