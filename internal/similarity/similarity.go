package similarity

import (
	"fmt"
	"math"
	"strings"

	"docsearch/internal/domain"
)

// Function is the similarity metric used to compare a query vector against
// candidate page vectors. Exactly one function is active per process; it is
// parsed from configuration at startup.
type Function int

const (
	Cosine Function = iota
	Dot
	Euclidean
)

// Parse maps a configuration name to a Function. Names match the
// configuration surface: COSINE, DOT, EUCLIDEAN (case-insensitive).
func Parse(name string) (Function, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "COSINE", "":
		return Cosine, nil
	case "DOT":
		return Dot, nil
	case "EUCLIDEAN":
		return Euclidean, nil
	default:
		return 0, fmt.Errorf("unknown similarity function %q", name)
	}
}

func (f Function) String() string {
	switch f {
	case Dot:
		return "DOT"
	case Euclidean:
		return "EUCLIDEAN"
	default:
		return "COSINE"
	}
}

// Ascending reports the ranking direction: Euclidean distance ranks ascending
// (lower is more similar), the other two rank descending.
func (f Function) Ascending() bool { return f == Euclidean }

// Better reports whether score a ranks ahead of score b under this function.
func (f Function) Better(a, b float64) bool {
	if f.Ascending() {
		return a < b
	}
	return a > b
}

// Score computes the similarity between two vectors of equal length.
// A length mismatch is a contract violation and fails fast.
func (f Function) Score(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", domain.ErrDimensionMismatch, len(a), len(b))
	}
	switch f {
	case Dot:
		return dot(a, b), nil
	case Euclidean:
		var sum float64
		for i := range a {
			d := float64(a[i]) - float64(b[i])
			sum += d * d
		}
		return math.Sqrt(sum), nil
	default:
		var dp, na2, nb2 float64
		for i := range a {
			va := float64(a[i])
			vb := float64(b[i])
			dp += va * vb
			na2 += va * va
			nb2 += vb * vb
		}
		if na2 == 0 || nb2 == 0 {
			return 0, nil
		}
		return dp / (math.Sqrt(na2) * math.Sqrt(nb2)), nil
	}
}

func dot(a, b []float32) float64 {
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}
