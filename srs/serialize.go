package srs

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/giuliop/ptau-ceremony/bls"
)

// wireFormat is the JSON shape a single serialized SRS takes on the
// wire: declared lengths alongside `0x`-prefixed lowercase
// compressed-point hex strings, the same shape the real Ethereum KZG
// ceremony's transcript.json uses.
type wireFormat struct {
	NumG1Points int      `json:"numG1Points"`
	NumG2Points int      `json:"numG2Points"`
	G1Points    []string `json:"g1Points"`
	G2Points    []string `json:"g2Points"`
}

// Serialize encodes s to its wire JSON form.
func (s *SRS) Serialize() ([]byte, error) {
	w := wireFormat{
		NumG1Points: len(s.g1Points),
		NumG2Points: len(s.g2Points),
		G1Points:    make([]string, len(s.g1Points)),
		G2Points:    make([]string, len(s.g2Points)),
	}
	for i, p := range s.g1Points {
		b := p.Bytes()
		w.G1Points[i] = "0x" + hex.EncodeToString(b[:])
	}
	for j, p := range s.g2Points {
		b := p.Bytes()
		w.G2Points[j] = "0x" + hex.EncodeToString(b[:])
	}
	data, err := json.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("srs: serialize: %w", err)
	}
	return data, nil
}

// Deserialize decodes a wire-form SRS under the caller's expected
// Parameters. Declared sizes must match both the parameters and the
// actual array lengths; any mismatch is a decode error, not a
// verification failure. No subgroup check is performed here — that is
// the caller's explicit, separate step.
func Deserialize(params Parameters, data []byte) (*SRS, error) {
	var w wireFormat
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("srs: decode: %w", err)
	}
	if w.NumG1Points != params.NumG1 || len(w.G1Points) != params.NumG1 {
		return nil, fmt.Errorf("%w: expected %d G1 points, declared %d, got %d",
			ErrSizeMismatch, params.NumG1, w.NumG1Points, len(w.G1Points))
	}
	if w.NumG2Points != params.NumG2 || len(w.G2Points) != params.NumG2 {
		return nil, fmt.Errorf("%w: expected %d G2 points, declared %d, got %d",
			ErrSizeMismatch, params.NumG2, w.NumG2Points, len(w.G2Points))
	}

	g1Points := make([]bls.G1Point, len(w.G1Points))
	for i, s := range w.G1Points {
		b, err := decodeHexPoint(s, bls.SizeG1Compressed)
		if err != nil {
			return nil, fmt.Errorf("srs: G1Points[%d]: %w", i, err)
		}
		p, err := bls.G1FromBytes(b)
		if err != nil {
			return nil, fmt.Errorf("%w: G1Points[%d]: %v", ErrMalformedPoint, i, err)
		}
		g1Points[i] = p
	}

	g2Points := make([]bls.G2Point, len(w.G2Points))
	for j, s := range w.G2Points {
		b, err := decodeHexPoint(s, bls.SizeG2Compressed)
		if err != nil {
			return nil, fmt.Errorf("srs: G2Points[%d]: %w", j, err)
		}
		p, err := bls.G2FromBytes(b)
		if err != nil {
			return nil, fmt.Errorf("%w: G2Points[%d]: %v", ErrMalformedPoint, j, err)
		}
		g2Points[j] = p
	}

	return &SRS{params: params, g1Points: g1Points, g2Points: g2Points}, nil
}

func decodeHexPoint(s string, wantSize int) ([]byte, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	b, err := hex.DecodeString(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPoint, err)
	}
	if len(b) != wantSize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrMalformedPoint, wantSize, len(b))
	}
	return b, nil
}
