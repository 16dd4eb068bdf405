package domain

import "time"

// Template is a reusable document body with {{placeholder}} tokens.
// Templates are a shared library, not tenant-scoped.
type Template struct {
	TemplateID string    `json:"templateID"`
	Title      string    `json:"title"`
	Category   string    `json:"category"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
