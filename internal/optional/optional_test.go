package optional

import (
	"encoding/json"
	"testing"
)

type payload struct {
	Title       Field[string] `json:"title"`
	Description Field[string] `json:"description"`
	Order       Field[int]    `json:"order"`
}

func TestUnmarshalDistinguishesAbsentNullAndValue(t *testing.T) {
	var p payload
	if err := json.Unmarshal([]byte(`{"title":"hello","description":null}`), &p); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if !p.Title.Present || !p.Title.Valid || p.Title.Value != "hello" {
		t.Errorf("expected title to be set to %q, got %+v", "hello", p.Title)
	}
	if !p.Description.Present || p.Description.Valid {
		t.Errorf("expected description to be an explicit null, got %+v", p.Description)
	}
	if p.Order.Present {
		t.Errorf("expected order to be absent, got %+v", p.Order)
	}
}

func TestUnmarshalZeroValue(t *testing.T) {
	var p payload
	if err := json.Unmarshal([]byte(`{"order":0}`), &p); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !p.Order.Present || !p.Order.Valid || p.Order.Value != 0 {
		t.Errorf("expected order set to 0, got %+v", p.Order)
	}
}

func TestPtr(t *testing.T) {
	if got := Null[string]().Ptr(); got != nil {
		t.Errorf("expected nil pointer for null field, got %v", *got)
	}
	if got := Set("x").Ptr(); got == nil || *got != "x" {
		t.Errorf("expected pointer to %q, got %v", "x", got)
	}
}
