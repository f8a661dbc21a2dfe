package bls

import (
	"fmt"
	"math/big"
	"runtime"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Scalar is an element of Fr, the BLS12-381 scalar field, always held
// canonically reduced mod r.
type Scalar struct {
	v fr.Element
}

// ScalarFromInt reduces v mod r and returns the resulting Scalar.
func ScalarFromInt(v int64) Scalar {
	return scalarFromBigInt(big.NewInt(v))
}

// ScalarFromHex parses a hex string, optionally `0x`-prefixed, and
// reduces it mod r.
func ScalarFromHex(s string) (Scalar, error) {
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	if s == "" {
		return Scalar{}, fmt.Errorf("bls: empty hex scalar")
	}
	i, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return Scalar{}, fmt.Errorf("bls: %q is not valid hex", s)
	}
	return scalarFromBigInt(i), nil
}

// ScalarFromBigInt reduces v mod r and returns the resulting Scalar.
func ScalarFromBigInt(v *big.Int) Scalar {
	return scalarFromBigInt(v)
}

func scalarFromBigInt(v *big.Int) Scalar {
	reduced := new(big.Int).Mod(v, fr.Modulus())
	var e fr.Element
	e.SetBigInt(reduced)
	return Scalar{e}
}

// IsZero reports whether the scalar is exactly 0.
func (s Scalar) IsZero() bool { return s.v.IsZero() }

// BigInt returns the scalar's canonical big.Int representation.
func (s Scalar) BigInt() *big.Int {
	var out big.Int
	s.v.BigInt(&out)
	return &out
}

// PowI returns a fresh Scalar equal to s^i mod r.
//
// If s == 0, the result is 0 for every i, including i == 0. This is a
// deliberate override of the field library's ordinary 0^0 == 1
// convention, so that a zero contribution collapses every element of an
// SRS to the identity and is caught by the non-identity check in
// srs.IsCorrect.
func (s Scalar) PowI(i uint) Scalar {
	if s.v.IsZero() {
		return Scalar{}
	}
	var out fr.Element
	out.Exp(s.v, new(big.Int).SetUint64(uint64(i)))
	return Scalar{out}
}

// PublicKey returns [s]*G2, the public key corresponding to this scalar
// used as a private key.
func (s Scalar) PublicKey() G2Point {
	_, g2 := Generators()
	return g2.ScalarMul(s)
}

// Destroy overwrites the scalar's internal value with zero. This is a
// best-effort erasure: Go gives no hard guarantee the compiler won't have
// already copied the value elsewhere, but runtime.KeepAlive below at
// least prevents the dead-store-elimination case where the zeroing write
// itself gets optimized away because nothing appears to read it.
func (s *Scalar) Destroy() {
	s.v.SetZero()
	runtime.KeepAlive(&s.v)
}
