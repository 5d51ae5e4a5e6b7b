package domain

import "context"

// Embedder converts free text into a fixed-dimension numeric vector.
// Implementations must return the same dimension for every call within one
// process configuration.
type Embedder interface {
	Name() string
	Dimension() int
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Extractor turns a raw uploaded document into an XDoc with ordered pages of
// plain text plus title and page-count metadata.
type Extractor interface {
	Extract(data []byte) (*XDoc, error)
}
