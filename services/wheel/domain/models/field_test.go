package models

import (
	"encoding/json"
	"testing"
)

func TestFieldUnmarshal(t *testing.T) {
	type patch struct {
		Name        Field[string] `json:"name"`
		Description Field[string] `json:"description"`
		Order       Field[int]    `json:"order"`
	}

	t.Run("absent key stays absent", func(t *testing.T) {
		var p patch
		if err := json.Unmarshal([]byte(`{}`), &p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Name.Present() || p.Description.Present() || p.Order.Present() {
			t.Fatal("expected all fields absent")
		}
	})

	t.Run("explicit null is present and null", func(t *testing.T) {
		var p patch
		if err := json.Unmarshal([]byte(`{"description": null}`), &p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !p.Description.Present() || !p.Description.IsNull() {
			t.Fatal("expected description present and null")
		}
		if _, ok := p.Description.Value(); ok {
			t.Fatal("null field must not yield a value")
		}
	})

	t.Run("value is present and set", func(t *testing.T) {
		var p patch
		if err := json.Unmarshal([]byte(`{"name": "Pizza", "order": 3}`), &p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if name, ok := p.Name.Value(); !ok || name != "Pizza" {
			t.Fatalf("expected name Pizza, got %q ok=%v", name, ok)
		}
		if p.Name.IsNull() {
			t.Fatal("set field must not report null")
		}
		if order, ok := p.Order.Value(); !ok || order != 3 {
			t.Fatalf("expected order 3, got %d ok=%v", order, ok)
		}
	})

	t.Run("wrong type returns error", func(t *testing.T) {
		var p patch
		if err := json.Unmarshal([]byte(`{"order": "three"}`), &p); err == nil {
			t.Fatal("expected error for non-numeric order")
		}
	})
}

func TestFieldConstructors(t *testing.T) {
	f := Set("hello")
	if v, ok := f.Value(); !ok || v != "hello" {
		t.Fatalf("Set value lost: %q ok=%v", v, ok)
	}

	n := Null[string]()
	if !n.Present() || !n.IsNull() {
		t.Fatal("Null must be present and null")
	}

	var zero Field[string]
	if zero.Present() {
		t.Fatal("zero Field must be absent")
	}
}

func TestFieldMarshal(t *testing.T) {
	data, err := json.Marshal(Set(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "5" {
		t.Fatalf("expected 5, got %s", data)
	}

	data, err = json.Marshal(Null[int]())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "null" {
		t.Fatalf("expected null, got %s", data)
	}
}
