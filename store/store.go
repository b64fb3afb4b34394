// Package store persists the prompt library: saved translations with
// categories, tags and usage tracking, behind a simple document-CRUD
// interface with in-memory and Redis backends.
package store

import (
	"context"
	"errors"
	"time"
)

// Categories a prompt can be filed under.
const (
	CategoryGeneral   = "general"
	CategoryPortrait  = "portrait"
	CategoryLandscape = "landscape"
	CategoryAbstract  = "abstract"
	CategoryCharacter = "character"
	CategoryScene     = "scene"
	CategoryStyle     = "style"
	CategoryOther     = "other"
)

// ValidCategory reports whether c is a known prompt category.
func ValidCategory(c string) bool {
	switch c {
	case CategoryGeneral, CategoryPortrait, CategoryLandscape, CategoryAbstract,
		CategoryCharacter, CategoryScene, CategoryStyle, CategoryOther:
		return true
	}
	return false
}

// ErrNotFound is returned when no prompt exists for the given id.
var ErrNotFound = errors.New("prompt not found")

// Prompt is a saved translation in the prompt library.
type Prompt struct {
	ID             string    `json:"id"`
	OriginalText   string    `json:"originalText"`
	TranslatedText string    `json:"translatedText"`
	Language       string    `json:"language"`
	Category       string    `json:"category"`
	Tags           []string  `json:"tags"`
	UsageCount     int       `json:"usageCount"`
	IsPublic       bool      `json:"isPublic"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Filter narrows and paginates a List call.
type Filter struct {
	Search   string // Substring match on original/translated text
	Category string // Exact category match ("" = all)
	Page     int    // 1-based page number
	PageSize int    // Items per page (default 20)
}

// Page is one page of prompts with the total match count.
type Page struct {
	Prompts []Prompt `json:"prompts"`
	Page    int      `json:"page"`
	Limit   int      `json:"limit"`
	Total   int      `json:"total"`
	Pages   int      `json:"pages"`
}

// Update carries the mutable fields of a prompt. Nil fields are left
// unchanged.
type Update struct {
	Category *string
	Tags     *[]string
	IsPublic *bool
}

// PromptStore is the document-CRUD surface for the prompt library.
type PromptStore interface {
	Create(ctx context.Context, p *Prompt) error
	GetByID(ctx context.Context, id string) (*Prompt, error)
	List(ctx context.Context, f Filter) (*Page, error)
	Update(ctx context.Context, id string, u Update) (*Prompt, error)
	Delete(ctx context.Context, id string) error
	IncrementUsage(ctx context.Context, id string) error
}
