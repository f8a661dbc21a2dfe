package actor

import (
	"fmt"

	"github.com/giuliop/ptau-ceremony/keypair"
	"github.com/giuliop/ptau-ceremony/proof"
	"github.com/giuliop/ptau-ceremony/srs"
)

// Contributor receives a serialized SRS, applies one fresh contribution
// to it, and can attest that the SRS it received was not obviously junk.
type Contributor struct {
	keyPair *keypair.KeyPair
	current *srs.SRS
	// oldSRS is the pre-update snapshot, kept only for the post-update
	// subgroup attestation: the contributor validates incoming work
	// optimistically, after applying its own update, so slow subgroup
	// checks never block the critical path.
	oldSRS *srs.SRS
}

// NewContributor deserializes wire under params, and binds kp as the
// secret this contributor will apply.
func NewContributor(kp *keypair.KeyPair, params srs.Parameters, wire []byte) (*Contributor, error) {
	current, err := srs.Deserialize(params, wire)
	if err != nil {
		return nil, fmt.Errorf("actor: contributor: %w", err)
	}
	return &Contributor{
		keyPair: kp,
		current: current,
		oldSRS:  current.Clone(),
	}, nil
}

// UpdateSRS applies the contributor's keypair to the SRS it holds and
// returns the resulting UpdateProof. The keypair is destroyed immediately
// afterward: nothing outside this call ever sees the private scalar
// again.
func (c *Contributor) UpdateSRS() (*proof.UpdateProof, error) {
	p, err := c.current.Update(c.keyPair)
	c.keyPair.Destroy()
	if err != nil {
		return nil, fmt.Errorf("actor: contributor: update: %w", err)
	}
	return p, nil
}

// AllElementsInCorrectSubgroup runs the subgroup-membership check on the
// SRS the contributor received, not the one it produced.
func (c *Contributor) AllElementsInCorrectSubgroup() bool {
	return c.oldSRS.SubgroupChecks()
}

// SerializeSRS returns the contributor's (post-update) SRS in wire form.
func (c *Contributor) SerializeSRS() ([]byte, error) {
	data, err := c.current.Serialize()
	if err != nil {
		return nil, fmt.Errorf("actor: contributor: %w", err)
	}
	return data, nil
}
