package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is a thread-safe in-memory PromptStore.
type MemoryStore struct {
	mu      sync.RWMutex
	prompts map[string]Prompt
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{prompts: make(map[string]Prompt)}
}

// Create stores a new prompt, assigning its id and timestamps.
func (s *MemoryStore) Create(ctx context.Context, p *Prompt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now
	normalizePrompt(p)

	s.prompts[p.ID] = *p
	return nil
}

// GetByID returns the prompt with the given id.
func (s *MemoryStore) GetByID(ctx context.Context, id string) (*Prompt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.prompts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

// List returns prompts matching the filter, newest first.
func (s *MemoryStore) List(ctx context.Context, f Filter) (*Page, error) {
	s.mu.RLock()
	matched := make([]Prompt, 0, len(s.prompts))
	for _, p := range s.prompts {
		if matchesFilter(p, f) {
			matched = append(matched, p)
		}
	}
	s.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	return paginatePrompts(matched, f.Page, f.PageSize), nil
}

// Update applies the non-nil fields of u to the prompt.
func (s *MemoryStore) Update(ctx context.Context, id string, u Update) (*Prompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.prompts[id]
	if !ok {
		return nil, ErrNotFound
	}

	applyUpdate(&p, u)
	s.prompts[id] = p
	return &p, nil
}

// Delete removes the prompt with the given id.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.prompts[id]; !ok {
		return ErrNotFound
	}
	delete(s.prompts, id)
	return nil
}

// IncrementUsage bumps the prompt's usage counter.
func (s *MemoryStore) IncrementUsage(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.prompts[id]
	if !ok {
		return ErrNotFound
	}
	p.UsageCount++
	p.UpdatedAt = time.Now()
	s.prompts[id] = p
	return nil
}

func normalizePrompt(p *Prompt) {
	p.OriginalText = strings.TrimSpace(p.OriginalText)
	p.TranslatedText = strings.TrimSpace(p.TranslatedText)
	if p.Category == "" || !ValidCategory(p.Category) {
		p.Category = CategoryGeneral
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
}

func applyUpdate(p *Prompt, u Update) {
	if u.Category != nil && ValidCategory(*u.Category) {
		p.Category = *u.Category
	}
	if u.Tags != nil {
		p.Tags = *u.Tags
	}
	if u.IsPublic != nil {
		p.IsPublic = *u.IsPublic
	}
	p.UpdatedAt = time.Now()
}

func matchesFilter(p Prompt, f Filter) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.OriginalText), term) &&
			!strings.Contains(strings.ToLower(p.TranslatedText), term) {
			return false
		}
	}
	return true
}

func paginatePrompts(prompts []Prompt, page, pageSize int) *Page {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	total := len(prompts)
	pages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	out := make([]Prompt, end-start)
	copy(out, prompts[start:end])

	return &Page{
		Prompts: out,
		Page:    page,
		Limit:   pageSize,
		Total:   total,
		Pages:   pages,
	}
}

// Verify MemoryStore implements PromptStore
var _ PromptStore = (*MemoryStore)(nil)
