// Package history keeps a bounded in-memory record of recent
// translations. Records live for the process lifetime only; the buffer
// holds the newest DefaultCapacity entries and silently evicts the
// oldest on overflow.
package history

import (
	"strconv"
	"strings"
	"sync"
	"time"
)

// DefaultCapacity is the number of records retained.
const DefaultCapacity = 10

// CategoryGeneral is the fixed category assigned to history records.
const CategoryGeneral = "general"

// Record is one saved translation.
type Record struct {
	ID             string    `json:"id"`
	OriginalText   string    `json:"originalText"`
	TranslatedText string    `json:"translatedText"`
	Language       string    `json:"language"`
	Category       string    `json:"category"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Page is one page of records with the total match count.
type Page struct {
	Records []Record `json:"prompts"`
	Page    int      `json:"page"`
	Limit   int      `json:"limit"`
	Total   int      `json:"total"`
	Pages   int      `json:"pages"`
}

// Store is a mutex-guarded bounded recency buffer, newest first.
type Store struct {
	mu       sync.Mutex
	records  []Record
	capacity int
	lastID   int64
}

// NewStore creates a Store with the given capacity. Non-positive
// capacities fall back to DefaultCapacity.
func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{
		records:  make([]Record, 0, capacity),
		capacity: capacity,
	}
}

// Append prepends a new record, evicting the oldest once the buffer is
// full, and returns the stored record.
func (s *Store) Append(original, translated, language string) Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := time.Now().UnixNano()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id

	rec := Record{
		ID:             strconv.FormatInt(id, 10),
		OriginalText:   original,
		TranslatedText: translated,
		Language:       language,
		Category:       CategoryGeneral,
		CreatedAt:      time.Now(),
	}

	s.records = append([]Record{rec}, s.records...)
	if len(s.records) > s.capacity {
		s.records = s.records[:s.capacity]
	}

	return rec
}

// List returns one page of records, optionally filtered by category.
// An empty or "all" category matches everything.
func (s *Store) List(category string, page, pageSize int) Page {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := s.records
	if category != "" && category != "all" {
		filtered = make([]Record, 0, len(s.records))
		for _, rec := range s.records {
			if rec.Category == category {
				filtered = append(filtered, rec)
			}
		}
	}

	return paginate(filtered, page, pageSize)
}

// Search returns records whose original or translated text contains q,
// case-insensitively.
func (s *Store) Search(q string, page, pageSize int) Page {
	s.mu.Lock()
	defer s.mu.Unlock()

	term := strings.ToLower(strings.TrimSpace(q))
	matched := make([]Record, 0, len(s.records))
	for _, rec := range s.records {
		if strings.Contains(strings.ToLower(rec.OriginalText), term) ||
			strings.Contains(strings.ToLower(rec.TranslatedText), term) {
			matched = append(matched, rec)
		}
	}

	return paginate(matched, page, pageSize)
}

// Delete removes the record with the given id. Returns false if no
// such record exists.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, rec := range s.records {
		if rec.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of retained records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

func paginate(records []Record, page, pageSize int) Page {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	total := len(records)
	pages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	out := make([]Record, end-start)
	copy(out, records[start:end])

	return Page{
		Records: out,
		Page:    page,
		Limit:   pageSize,
		Total:   total,
		Pages:   pages,
	}
}
