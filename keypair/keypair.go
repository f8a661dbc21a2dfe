package keypair

import (
	"fmt"
	"math/big"

	"github.com/giuliop/ptau-ceremony/bls"
	"golang.org/x/crypto/sha3"
)

// KeyPair is a contributor's secret scalar and its public key.
type KeyPair struct {
	Private bls.Scalar
	Public  bls.G2Point
}

func fromScalar(s bls.Scalar) *KeyPair {
	return &KeyPair{Private: s, Public: s.PublicKey()}
}

// FromInt builds a KeyPair from an integer secret, reduced mod r.
func FromInt(secret int64) *KeyPair {
	return fromScalar(bls.ScalarFromInt(secret))
}

// FromHex builds a KeyPair from a hex-encoded secret, optionally
// `0x`-prefixed, reduced mod r. FromInt and FromHex are kept as two
// distinct constructors rather than one that type-switches on its input.
func FromHex(secret string) (*KeyPair, error) {
	s, err := bls.ScalarFromHex(secret)
	if err != nil {
		return nil, fmt.Errorf("keypair: %w", err)
	}
	return fromScalar(s), nil
}

// FromEntropy derives a KeyPair deterministically from raw entropy bytes
// gathered by the caller; collecting that entropy is the caller's
// responsibility. The entropy is hashed with SHA3-256 before reduction
// mod r, so an entropy source that is merely "large and unpredictable"
// need not itself be uniform over Fr.
func FromEntropy(entropy []byte) (*KeyPair, error) {
	if len(entropy) == 0 {
		return nil, fmt.Errorf("keypair: entropy must not be empty")
	}
	digest := sha3.Sum256(entropy)
	v := new(big.Int).SetBytes(digest[:])
	return fromScalar(bls.ScalarFromBigInt(v)), nil
}

// PowI returns private^i mod r.
func (k *KeyPair) PowI(i uint) bls.Scalar {
	return k.Private.PowI(i)
}

// Destroy overwrites the private scalar with zero. Best-effort: see
// bls.Scalar.Destroy.
func (k *KeyPair) Destroy() {
	k.Private.Destroy()
}
