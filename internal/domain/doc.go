package domain

// XDoc is a single extracted document owned by exactly one session.
// Field names on the wire follow the extraction response format.
type XDoc struct {
	ID         string         `json:"id"`
	Title      string         `json:"doc_title"`
	Filename   string         `json:"filename"`
	TotalPages int            `json:"total_pages"`
	Pages      []XPage        `json:"pages"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// XPage is one page of an extracted document. Vector is nil until the page
// has been embedded; only vectorized pages participate in search.
type XPage struct {
	Number int       `json:"page_number"`
	Text   string    `json:"page_text"`
	Vector []float32 `json:"vector,omitempty"`
}

// Match is a single ranked search result referencing a page in the
// queried session.
type Match struct {
	DocID      string  `json:"doc_id"`
	DocTitle   string  `json:"doc_title"`
	PageNumber int     `json:"page_number"`
	Text       string  `json:"page_text"`
	Snippet    string  `json:"snippet"`
	Score      float64 `json:"score"`
}
