package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestMemoryStore_CreateAndGet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	p := &Prompt{
		OriginalText:   "  A dragon above the clouds  ",
		TranslatedText: "云层之上的巨龙",
		Language:       "zh-CN",
		Category:       CategoryScene,
	}

	if err := s.Create(ctx, p); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if p.ID == "" {
		t.Error("Expected Create to assign an id")
	}
	if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
		t.Error("Expected Create to set timestamps")
	}
	if p.OriginalText != "A dragon above the clouds" {
		t.Errorf("Expected trimmed original text, got %q", p.OriginalText)
	}
	if p.Tags == nil {
		t.Error("Expected non-nil tags slice")
	}

	got, err := s.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.TranslatedText != "云层之上的巨龙" {
		t.Errorf("Unexpected translated text: %q", got.TranslatedText)
	}
}

func TestMemoryStore_CreateInvalidCategory(t *testing.T) {
	s := NewMemoryStore()
	p := &Prompt{OriginalText: "x", TranslatedText: "y", Category: "bogus"}

	if err := s.Create(context.Background(), p); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if p.Category != CategoryGeneral {
		t.Errorf("Expected invalid category to fall back to %q, got %q", CategoryGeneral, p.Category)
	}
}

func TestMemoryStore_GetNotFound(t *testing.T) {
	s := NewMemoryStore()

	if _, err := s.GetByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStore_ListFilters(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	for i, cat := range []string{CategoryPortrait, CategoryPortrait, CategoryScene} {
		p := &Prompt{
			OriginalText:   fmt.Sprintf("prompt %d sunset", i),
			TranslatedText: "日落",
			Category:       cat,
		}
		if err := s.Create(ctx, p); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		// Distinct CreatedAt for a stable sort order
		time.Sleep(time.Millisecond)
	}

	page, err := s.List(ctx, Filter{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if page.Total != 3 {
		t.Errorf("Expected 3 prompts, got %d", page.Total)
	}
	// Newest first
	if page.Prompts[0].OriginalText != "prompt 2 sunset" {
		t.Errorf("Expected newest prompt first, got %q", page.Prompts[0].OriginalText)
	}

	page, err = s.List(ctx, Filter{Category: CategoryPortrait})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if page.Total != 2 {
		t.Errorf("Expected 2 portrait prompts, got %d", page.Total)
	}

	page, err = s.List(ctx, Filter{Search: "SUNSET", Category: CategoryScene})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if page.Total != 1 {
		t.Errorf("Expected 1 match, got %d", page.Total)
	}

	page, err = s.List(ctx, Filter{Search: "dragon"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if page.Total != 0 {
		t.Errorf("Expected no matches, got %d", page.Total)
	}
}

func TestMemoryStore_ListPagination(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := s.Create(ctx, &Prompt{OriginalText: fmt.Sprintf("p%d", i), TranslatedText: "t"}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		time.Sleep(time.Millisecond)
	}

	page, err := s.List(ctx, Filter{Page: 2, PageSize: 2})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if page.Total != 5 || page.Pages != 3 || len(page.Prompts) != 2 {
		t.Errorf("Unexpected page: total=%d pages=%d len=%d", page.Total, page.Pages, len(page.Prompts))
	}
	if page.Page != 2 || page.Limit != 2 {
		t.Errorf("Unexpected page metadata: page=%d limit=%d", page.Page, page.Limit)
	}
}

func TestMemoryStore_Update(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	p := &Prompt{OriginalText: "x", TranslatedText: "y"}
	if err := s.Create(ctx, p); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	cat := CategoryStyle
	tags := []string{"neon", "cyberpunk"}
	public := true
	updated, err := s.Update(ctx, p.ID, Update{Category: &cat, Tags: &tags, IsPublic: &public})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Category != CategoryStyle {
		t.Errorf("Expected category %q, got %q", CategoryStyle, updated.Category)
	}
	if len(updated.Tags) != 2 || updated.Tags[0] != "neon" {
		t.Errorf("Unexpected tags: %v", updated.Tags)
	}
	if !updated.IsPublic {
		t.Error("Expected IsPublic true")
	}

	// Invalid category is ignored, other fields still apply
	bad := "bogus"
	updated, err = s.Update(ctx, p.ID, Update{Category: &bad})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Category != CategoryStyle {
		t.Errorf("Expected category unchanged, got %q", updated.Category)
	}

	if _, err := s.Update(ctx, "missing", Update{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStore_Delete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	p := &Prompt{OriginalText: "x", TranslatedText: "y"}
	if err := s.Create(ctx, p); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := s.Delete(ctx, p.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := s.GetByID(ctx, p.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
	if err := s.Delete(ctx, p.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound on second delete, got %v", err)
	}
}

func TestMemoryStore_IncrementUsage(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	p := &Prompt{OriginalText: "x", TranslatedText: "y"}
	if err := s.Create(ctx, p); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := s.IncrementUsage(ctx, p.ID); err != nil {
			t.Fatalf("IncrementUsage failed: %v", err)
		}
	}

	got, err := s.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.UsageCount != 3 {
		t.Errorf("Expected usage count 3, got %d", got.UsageCount)
	}

	if err := s.IncrementUsage(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}
