package domain

import "github.com/google/uuid"

// Snippet represents a single saved code snippet
type Snippet struct {
	ID          string   `json:"id"`          // UUID v4, also the on-disk filename
	Description string   `json:"description"` // short, searchable description
	Tags        []string `json:"tags"`        // optional tags used for filtering
	Code        string   `json:"code"`        // the snippet body
}

// NewSnippet creates a snippet with a fresh random ID
func NewSnippet(description string, tags []string, code string) Snippet {
	return Snippet{
		ID:          uuid.NewString(),
		Description: description,
		Tags:        tags,
		Code:        code,
	}
}
