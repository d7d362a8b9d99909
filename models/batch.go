package models

// BatchRequest is the payload for POST /api/batch/competitor-search.
type BatchRequest struct {
	// Queries is the list of search terms to run. Required.
	Queries []string `json:"queries" binding:"required,min=1,max=20"`

	// MaxResults caps competitors per query.
	// Default: 10.
	MaxResults int `json:"maxResults,omitempty" binding:"omitempty,min=1,max=50"`
}

// BatchResponse is the immediate response for POST /api/batch/competitor-search.
type BatchResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
	Status  string `json:"status"`
	Total   int    `json:"total"`
}

// BatchStatusResponse is the response for GET /api/batch/:id.
type BatchStatusResponse struct {
	ID        string         `json:"id"`
	Status    string         `json:"status"`
	Completed int            `json:"completed"`
	Total     int            `json:"total"`
	Results   []*BatchResult `json:"results,omitempty"`
}

// BatchResult is the outcome of one query in a batch.
type BatchResult struct {
	Query       string       `json:"query"`
	Competitors []Competitor `json:"competitors"`
	TotalFound  int          `json:"totalFound"`
	Error       *ErrorDetail `json:"error,omitempty"`
}

// BatchJob tracks an in-progress batch search.
type BatchJob struct {
	ID        string
	Status    string // "scraping", "completed"
	Total     int
	Completed int
	Results   []*BatchResult
	CreatedAt int64 // unix timestamp
}
