package actor

import (
	"fmt"
	"sync"

	"github.com/giuliop/ptau-ceremony/proof"
	"github.com/giuliop/ptau-ceremony/srs"
)

// Coordinator owns the ceremony's authoritative state: the current SRS
// and the ordered list of update proofs that produced it. Both are
// updated atomically — a proof is appended iff the SRS swap succeeds —
// guarded by mu held across both writes.
type Coordinator struct {
	mu      sync.Mutex
	current *srs.SRS
	proofs  []*proof.UpdateProof
}

// NewCoordinator starts a ceremony from the given starting SRS.
func NewCoordinator(starting *srs.SRS) *Coordinator {
	return &Coordinator{current: starting}
}

// ReplaceCurrentSRS deserializes incoming under the coordinator's bound
// parameters and checks it as a single-step chain extension of the
// current SRS. On success, it appends updateProof and swaps in the new
// SRS; on failure it leaves all state unchanged and returns false. A
// failed contribution is never partially applied, and the caller is
// expected to simply move on to the next contributor.
func (co *Coordinator) ReplaceCurrentSRS(incoming []byte, updateProof *proof.UpdateProof) (bool, error) {
	co.mu.Lock()
	defer co.mu.Unlock()

	params := co.current.Parameters()
	received, err := srs.Deserialize(params, incoming)
	if err != nil {
		return false, fmt.Errorf("actor: coordinator: %w", err)
	}

	ok, err := srs.VerifyUpdates(co.current, received, []*proof.UpdateProof{updateProof})
	if err != nil {
		return false, fmt.Errorf("actor: coordinator: %w", err)
	}
	if !ok {
		return false, nil
	}

	co.proofs = append(co.proofs, updateProof)
	co.current = received
	return true, nil
}

// SerializeSRS returns the coordinator's current authoritative SRS in
// wire form.
func (co *Coordinator) SerializeSRS() ([]byte, error) {
	co.mu.Lock()
	defer co.mu.Unlock()
	data, err := co.current.Serialize()
	if err != nil {
		return nil, fmt.Errorf("actor: coordinator: %w", err)
	}
	return data, nil
}

// Proofs returns a copy of the accepted update proofs, in contribution
// order.
func (co *Coordinator) Proofs() []*proof.UpdateProof {
	co.mu.Lock()
	defer co.mu.Unlock()
	out := make([]*proof.UpdateProof, len(co.proofs))
	copy(out, co.proofs)
	return out
}
