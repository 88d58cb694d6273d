package utils

import "testing"

type payload struct {
	D0             float64 `json:"d0"`
	RequiredReturn float64 `json:"required_return"`
}

func TestSmartParseStrictJSON(t *testing.T) {
	var p payload
	if err := SmartParse(`{"d0": 5, "required_return": 0.10}`, &p); err != nil {
		t.Fatalf("strict JSON should parse: %v", err)
	}
	if p.D0 != 5 || p.RequiredReturn != 0.10 {
		t.Errorf("got %+v", p)
	}
}

func TestSmartParseRepairsSloppyJSON(t *testing.T) {
	// Single quotes and a trailing comma, as typed into a terminal.
	var p payload
	if err := SmartParse(`{'d0': 5, 'required_return': 0.10,}`, &p); err != nil {
		t.Fatalf("sloppy JSON should repair: %v", err)
	}
	if p.D0 != 5 {
		t.Errorf("got %+v", p)
	}
}

func TestSmartParseAcceptsHjson(t *testing.T) {
	var p payload
	body := `{
  # most recent dividend
  d0: 5
  required_return: 0.10
}`
	if err := SmartParse(body, &p); err != nil {
		t.Fatalf("hjson should parse: %v", err)
	}
	if p.D0 != 5 || p.RequiredReturn != 0.10 {
		t.Errorf("got %+v", p)
	}
}

func TestSmartParseKeepsFloat64Precision(t *testing.T) {
	// Bodies that need the lenient path must not lose numeric precision:
	// a rate typed as 0.10 has to reach the engine as exactly 0.10, not a
	// float32 round-trip like 0.10000000149011612.
	var p payload
	body := `{
  // unquoted keys force the lenient path
  d0: 5
  required_return: 0.10
}`
	if err := SmartParse(body, &p); err != nil {
		t.Fatalf("lenient body should parse: %v", err)
	}
	if p.RequiredReturn != 0.10 {
		t.Errorf("required_return lost precision: got %v, want exactly 0.10", p.RequiredReturn)
	}
}

func TestSmartParseRejectsGarbage(t *testing.T) {
	var p payload
	if err := SmartParse("[1, 2", &p); err == nil {
		t.Error("expected an error for a body that is not an object")
	}
}
