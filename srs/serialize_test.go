package srs

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestDeserializeRejectsMalformedHex(t *testing.T) {
	params := DefaultParameters(2, 2)
	w := wireFormat{
		NumG1Points: 2,
		NumG2Points: 2,
		G1Points:    []string{"0xnot-hex", "0xnot-hex"},
		G2Points:    []string{"0xnot-hex", "0xnot-hex"},
	}
	data, err := json.Marshal(w)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = Deserialize(params, data)
	if err == nil {
		t.Fatalf("expected a decode error for malformed hex")
	}
	if !errors.Is(err, ErrMalformedPoint) {
		t.Errorf("expected ErrMalformedPoint, got %v", err)
	}
}

func TestDeserializeRejectsWrongPointLength(t *testing.T) {
	params := DefaultParameters(2, 2)
	w := wireFormat{
		NumG1Points: 2,
		NumG2Points: 2,
		G1Points:    []string{"0x00", "0x00"},
		G2Points:    []string{"0x00", "0x00"},
	}
	data, err := json.Marshal(w)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = Deserialize(params, data)
	if err == nil {
		t.Fatalf("expected a decode error for undersized points")
	}
	if !errors.Is(err, ErrMalformedPoint) {
		t.Errorf("expected ErrMalformedPoint, got %v", err)
	}
}

func TestDeserializeAcceptsUppercasePrefix(t *testing.T) {
	params := DefaultParameters(2, 2)
	s, err := New(params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := s.Serialize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var w wireFormat
	if err := json.Unmarshal(data, &w); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, s := range w.G1Points {
		w.G1Points[i] = "0X" + s[2:]
	}
	upperData, err := json.Marshal(w)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := Deserialize(params, upperData); err != nil {
		t.Errorf("unexpected error decoding uppercase-prefixed hex: %v", err)
	}
}
