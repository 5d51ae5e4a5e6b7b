package similarity

import (
	"errors"
	"math"
	"testing"

	"docsearch/internal/domain"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Function
		wantErr bool
	}{
		{name: "cosine", input: "COSINE", want: Cosine},
		{name: "dot lowercase", input: "dot", want: Dot},
		{name: "euclidean padded", input: " Euclidean ", want: Euclidean},
		{name: "empty defaults to cosine", input: "", want: Cosine},
		{name: "unknown", input: "MANHATTAN", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestScore(t *testing.T) {
	a := []float32{1, 0, 0}
	b := []float32{0, 1, 0}
	c := []float32{2, 0, 0}

	tests := []struct {
		name string
		fn   Function
		x, y []float32
		want float64
	}{
		{name: "cosine identical direction", fn: Cosine, x: a, y: c, want: 1},
		{name: "cosine orthogonal", fn: Cosine, x: a, y: b, want: 0},
		{name: "dot", fn: Dot, x: a, y: c, want: 2},
		{name: "euclidean same", fn: Euclidean, x: a, y: a, want: 0},
		{name: "euclidean unit apart", fn: Euclidean, x: a, y: c, want: 1},
		{name: "euclidean diagonal", fn: Euclidean, x: a, y: b, want: math.Sqrt2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn.Score(tt.x, tt.y)
			if err != nil {
				t.Fatalf("Score: unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Score = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScoreDimensionMismatch(t *testing.T) {
	for _, fn := range []Function{Cosine, Dot, Euclidean} {
		_, err := fn.Score([]float32{1, 2}, []float32{1, 2, 3})
		if !errors.Is(err, domain.ErrDimensionMismatch) {
			t.Errorf("%s: expected ErrDimensionMismatch, got %v", fn, err)
		}
	}
}

func TestCosineZeroMagnitude(t *testing.T) {
	got, err := Cosine.Score([]float32{0, 0}, []float32{1, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Errorf("zero-magnitude cosine = %v, want 0", got)
	}
}

func TestRankingDirection(t *testing.T) {
	if Cosine.Ascending() || Dot.Ascending() {
		t.Error("COSINE and DOT must rank descending")
	}
	if !Euclidean.Ascending() {
		t.Error("EUCLIDEAN must rank ascending")
	}
	if !Cosine.Better(0.9, 0.1) {
		t.Error("higher cosine score must rank ahead")
	}
	if !Euclidean.Better(0.1, 0.9) {
		t.Error("lower euclidean distance must rank ahead")
	}
}
