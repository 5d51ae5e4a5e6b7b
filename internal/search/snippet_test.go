package search

import (
	"strings"
	"testing"
)

func TestSnippeterBuild(t *testing.T) {
	s := NewSnippeter()

	t.Run("no sentence boundaries returns trimmed text", func(t *testing.T) {
		got := s.Build("  plain fragment without punctuation \n", 2)
		if got != "plain fragment without punctuation" {
			t.Errorf("Build = %q", got)
		}
	})

	t.Run("keeps selected sentences in original order", func(t *testing.T) {
		text := "Storage engines persist data. The weather is nice. Storage compaction reclaims storage space. Lunch was fine."
		got := s.Build(text, 2)
		first := strings.Index(got, "Storage engines")
		second := strings.Index(got, "compaction")
		if first == -1 || second == -1 {
			t.Fatalf("expected the storage sentences to be selected, got %q", got)
		}
		if first > second {
			t.Errorf("selected sentences out of original order: %q", got)
		}
	})

	t.Run("caps at available sentences", func(t *testing.T) {
		got := s.Build("Only one sentence here.", 5)
		if got != "Only one sentence here." {
			t.Errorf("Build = %q", got)
		}
	})
}
