package bls

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// SizeG1Compressed and SizeG2Compressed are the wire sizes, in bytes, of a
// compressed G1 / G2 point. Hex-encoded they are twice as long: 96 and 192
// characters respectively.
const (
	SizeG1Compressed = bls12381.SizeOfG1AffineCompressed
	SizeG2Compressed = bls12381.SizeOfG2AffineCompressed
)

// G1Point is a point of the prime-order subgroup of G1, or a point
// deserialized off the wire that has not yet been subgroup-checked.
type G1Point struct {
	p bls12381.G1Affine
}

// G2Point is the G2 analogue of G1Point; public keys and SRS g2_points
// both live here.
type G2Point struct {
	p bls12381.G2Affine
}

// Generators returns the canonical G1 and G2 generators for BLS12-381.
func Generators() (G1Point, G2Point) {
	_, _, g1, g2 := bls12381.Generators()
	return G1Point{g1}, G2Point{g2}
}

// ScalarMul returns [s]*p, leaving p unchanged.
func (p G1Point) ScalarMul(s Scalar) G1Point {
	var out bls12381.G1Affine
	out.ScalarMultiplication(&p.p, s.BigInt())
	return G1Point{out}
}

// ScalarMul returns [s]*p, leaving p unchanged.
func (p G2Point) ScalarMul(s Scalar) G2Point {
	var out bls12381.G2Affine
	out.ScalarMultiplication(&p.p, s.BigInt())
	return G2Point{out}
}

// Equal reports whether p and q represent the same point. Comparison goes
// through gnark-crypto's Equal, which normalizes coordinates first, rather
// than comparing the raw field element tuples.
func (p G1Point) Equal(q G1Point) bool { return p.p.Equal(&q.p) }
func (p G2Point) Equal(q G2Point) bool { return p.p.Equal(&q.p) }

// IsIdentity reports whether p is the identity element of its group.
// gnark-crypto represents the point at infinity in affine coordinates as
// (0, 0), which is never itself a point on either curve, so testing both
// coordinates for zero is exact.
func (p G1Point) IsIdentity() bool { return p.p.X.IsZero() && p.p.Y.IsZero() }
func (p G2Point) IsIdentity() bool { return p.p.X.IsZero() && p.p.Y.IsZero() }

// IsInSubgroup reports whether p lies in the prime-order subgroup, using
// the curve's cofactor-clearing membership test rather than a naive
// [r]*P == O multiplication.
func (p G1Point) IsInSubgroup() bool { return p.p.IsInSubGroup() }
func (p G2Point) IsInSubgroup() bool { return p.p.IsInSubGroup() }

// Bytes returns the compressed encoding of p.
func (p G1Point) Bytes() [SizeG1Compressed]byte { return p.p.Bytes() }
func (p G2Point) Bytes() [SizeG2Compressed]byte { return p.p.Bytes() }

// G1FromBytes decodes a compressed G1 point. It does not perform a
// subgroup check; callers that need one call IsInSubgroup explicitly.
func G1FromBytes(data []byte) (G1Point, error) {
	if len(data) != SizeG1Compressed {
		return G1Point{}, fmt.Errorf("bls: G1 point must be %d bytes, got %d",
			SizeG1Compressed, len(data))
	}
	var out bls12381.G1Affine
	if err := out.Unmarshal(data); err != nil {
		return G1Point{}, fmt.Errorf("bls: decoding G1 point: %w", err)
	}
	return G1Point{out}, nil
}

// G2FromBytes decodes a compressed G2 point. See G1FromBytes.
func G2FromBytes(data []byte) (G2Point, error) {
	if len(data) != SizeG2Compressed {
		return G2Point{}, fmt.Errorf("bls: G2 point must be %d bytes, got %d",
			SizeG2Compressed, len(data))
	}
	var out bls12381.G2Affine
	if err := out.Unmarshal(data); err != nil {
		return G2Point{}, fmt.Errorf("bls: decoding G2 point: %w", err)
	}
	return G2Point{out}, nil
}
