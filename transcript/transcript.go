package transcript

import (
	"errors"
	"fmt"

	"github.com/giuliop/ptau-ceremony/actor"
	"github.com/giuliop/ptau-ceremony/bls"
	"github.com/giuliop/ptau-ceremony/keypair"
	"github.com/giuliop/ptau-ceremony/proof"
	"github.com/giuliop/ptau-ceremony/srs"
	"golang.org/x/sync/errgroup"
)

// NumSubCeremonies is the fixed arity of a Transcript.
const NumSubCeremonies = 4

// ErrParameterMismatch is returned when a sub-ceremony's embedded sizes
// do not match the expected schedule for its position in the transcript.
var ErrParameterMismatch = errors.New("transcript: sub-ceremony size does not match the expected schedule")

// g1Sizes are the mandated N1 sizes, one per sub-ceremony, ascending.
var g1Sizes = [NumSubCeremonies]int{4096, 8192, 16384, 32768}

// g2Size is the shared N2 for every sub-ceremony.
const g2Size = 65

// Transcript is a fixed 4-tuple of serialized sub-SRS, ordered ascending
// by N1.
type Transcript struct {
	subSRS [NumSubCeremonies][]byte
}

// New builds a fresh transcript: four independent τ=1 SRS at the
// mandated sizes.
func New() (*Transcript, error) {
	var t Transcript
	for i, n1 := range g1Sizes {
		s, err := srs.New(srs.DefaultParameters(n1, g2Size))
		if err != nil {
			return nil, fmt.Errorf("transcript: building sub-ceremony %d: %w", i, err)
		}
		wire, err := s.Serialize()
		if err != nil {
			return nil, fmt.Errorf("transcript: serializing sub-ceremony %d: %w", i, err)
		}
		t.subSRS[i] = wire
	}
	return &t, nil
}

// SubSRS returns the transcript's four wire-form sub-SRS, in order.
func (t *Transcript) SubSRS() [NumSubCeremonies][]byte { return t.subSRS }

// Update applies one fresh secret per sub-ceremony and returns the
// resulting transcript alongside the four UpdateProofs, one per
// sub-ceremony in the same order. Each sub-ceremony's declared N1 is
// checked against the expected size at its position as a side effect of
// deserializing under srs.DefaultParameters(g1Sizes[i], g2Size); a
// mismatch fails the whole update with an error wrapping
// ErrParameterMismatch.
//
// The four sub-ceremonies are entirely independent once their KeyPairs
// are formed, so they run concurrently.
func Update(t *Transcript, secrets [NumSubCeremonies]bls.Scalar) (*Transcript, [NumSubCeremonies]*proof.UpdateProof, error) {
	var newWire [NumSubCeremonies][]byte
	var proofs [NumSubCeremonies]*proof.UpdateProof

	var g errgroup.Group
	for i := 0; i < NumSubCeremonies; i++ {
		i := i
		g.Go(func() error {
			params := srs.DefaultParameters(g1Sizes[i], g2Size)
			kp := &keypair.KeyPair{Private: secrets[i], Public: secrets[i].PublicKey()}
			contributor, err := actor.NewContributor(kp, params, t.subSRS[i])
			if err != nil {
				if errors.Is(err, srs.ErrSizeMismatch) {
					return fmt.Errorf("%w: sub-ceremony %d: %v", ErrParameterMismatch, i, err)
				}
				return fmt.Errorf("transcript: sub-ceremony %d: %w", i, err)
			}
			p, err := contributor.UpdateSRS()
			if err != nil {
				return fmt.Errorf("transcript: sub-ceremony %d: %w", i, err)
			}
			wire, err := contributor.SerializeSRS()
			if err != nil {
				return fmt.Errorf("transcript: sub-ceremony %d: %w", i, err)
			}
			newWire[i] = wire
			proofs[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, [NumSubCeremonies]*proof.UpdateProof{}, err
	}
	return &Transcript{subSRS: newWire}, proofs, nil
}

// VerifyCeremonies reports whether end was produced from start by
// exactly the four proof chains in proofsList, one per sub-ceremony,
// checked concurrently.
func VerifyCeremonies(start, end *Transcript, proofsList [NumSubCeremonies][]*proof.UpdateProof) (bool, error) {
	results := make([]bool, NumSubCeremonies)

	var g errgroup.Group
	for i := 0; i < NumSubCeremonies; i++ {
		i := i
		g.Go(func() error {
			params := srs.DefaultParameters(g1Sizes[i], g2Size)
			before, err := srs.Deserialize(params, start.subSRS[i])
			if err != nil {
				if errors.Is(err, srs.ErrSizeMismatch) {
					return fmt.Errorf("%w: sub-ceremony %d: starting SRS: %v", ErrParameterMismatch, i, err)
				}
				return fmt.Errorf("transcript: sub-ceremony %d: starting SRS: %w", i, err)
			}
			after, err := srs.Deserialize(params, end.subSRS[i])
			if err != nil {
				if errors.Is(err, srs.ErrSizeMismatch) {
					return fmt.Errorf("%w: sub-ceremony %d: ending SRS: %v", ErrParameterMismatch, i, err)
				}
				return fmt.Errorf("transcript: sub-ceremony %d: ending SRS: %w", i, err)
			}
			ok, err := srs.VerifyUpdates(before, after, proofsList[i])
			if err != nil {
				return fmt.Errorf("transcript: sub-ceremony %d: %w", i, err)
			}
			results[i] = ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return false, err
	}
	for _, ok := range results {
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// SubgroupCheck reports whether every point of every sub-SRS in t lies
// in its group's prime-order subgroup. This is not part of the core
// update/verify pipeline; it exists so a coordinator can audit a
// transcript it did not itself produce before trusting it as a starting
// point.
func SubgroupCheck(t *Transcript) (bool, error) {
	for i := 0; i < NumSubCeremonies; i++ {
		params := srs.DefaultParameters(g1Sizes[i], g2Size)
		s, err := srs.Deserialize(params, t.subSRS[i])
		if err != nil {
			return false, fmt.Errorf("transcript: sub-ceremony %d: %w", i, err)
		}
		if !s.SubgroupChecks() {
			return false, nil
		}
	}
	return true, nil
}
