package hashing

import (
	"context"
	"math"
	"testing"
)

func TestNewEmbedderValidatesDimension(t *testing.T) {
	if _, err := NewEmbedder(0); err == nil {
		t.Fatal("expected error for zero dimension")
	}
	if _, err := NewEmbedder(-3); err == nil {
		t.Fatal("expected error for negative dimension")
	}
}

func TestEmbedFixedDimension(t *testing.T) {
	e, err := NewEmbedder(64)
	if err != nil {
		t.Fatal(err)
	}
	if e.Dimension() != 64 {
		t.Fatalf("Dimension = %d, want 64", e.Dimension())
	}
	for _, text := range []string{"short", "a much longer text with many more tokens than the first one", ""} {
		vec, err := e.Embed(context.Background(), text)
		if err != nil {
			t.Fatalf("Embed(%q): %v", text, err)
		}
		if len(vec) != 64 {
			t.Errorf("Embed(%q) dimension = %d, want 64", text, len(vec))
		}
	}
}

func TestEmbedDeterministic(t *testing.T) {
	e, _ := NewEmbedder(32)
	a, _ := e.Embed(context.Background(), "deterministic embedding output")
	b, _ := e.Embed(context.Background(), "deterministic embedding output")
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("vectors differ at %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestEmbedNormalized(t *testing.T) {
	e, _ := NewEmbedder(32)
	vec, _ := e.Embed(context.Background(), "normalize this vector please")
	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if math.Abs(math.Sqrt(norm)-1) > 1e-6 {
		t.Errorf("norm = %v, want 1", math.Sqrt(norm))
	}
}

func TestEmbedStopwordsOnlyIsZero(t *testing.T) {
	e, _ := NewEmbedder(32)
	vec, _ := e.Embed(context.Background(), "the and of to in")
	for i, v := range vec {
		if v != 0 {
			t.Fatalf("expected zero vector, got %v at %d", v, i)
		}
	}
}
