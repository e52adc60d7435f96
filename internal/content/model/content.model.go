package model

import "time"

const (
	CategoryArticle  = "article"
	CategoryTutorial = "tutorial"
	CategoryNote     = "note"
	CategoryIdea     = "idea"
)

// Categories lists every valid content category, in display order.
var Categories = []string{CategoryArticle, CategoryTutorial, CategoryNote, CategoryIdea}

type Content struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ContentFields carries the caller-editable fields of a Content record.
// Used for both create and update requests.
type ContentFields struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type ValidationResponse struct {
	Errors map[string]string `json:"errors"`
}
