package rest

import (
	"testing"
)

func TestDecodeListPrefersPluralKey(t *testing.T) {
	payload := map[string]any{
		"blogs": []any{
			map[string]any{"blog_id": "1"},
			map[string]any{"blog_id": "2"},
		},
		"data":  []any{map[string]any{"blog_id": "9"}},
		"total": float64(42),
	}

	result := DecodeList(payload, "blogs")
	if len(result.Data) != 2 {
		t.Fatalf("len(Data) = %d, want 2", len(result.Data))
	}
	if result.Total != 42 {
		t.Fatalf("Total = %d, want 42", result.Total)
	}
}

func TestDecodeListFallsBackToDataKey(t *testing.T) {
	payload := map[string]any{
		"data": []any{map[string]any{"id": "1"}},
	}

	result := DecodeList(payload, "blogs")
	if len(result.Data) != 1 {
		t.Fatalf("len(Data) = %d, want 1", len(result.Data))
	}
	if result.Total != 1 {
		t.Fatalf("Total = %d, want len fallback 1", result.Total)
	}
}

func TestDecodeListBareArray(t *testing.T) {
	payload := []any{
		map[string]any{"id": "1"},
		map[string]any{"id": "2"},
		map[string]any{"id": "3"},
	}

	result := DecodeList(payload, "faqs")
	if len(result.Data) != 3 {
		t.Fatalf("len(Data) = %d, want 3", len(result.Data))
	}
	if result.Total != 3 {
		t.Fatalf("Total = %d, want 3", result.Total)
	}
}

func TestDecodeOnePrefersSingularKey(t *testing.T) {
	payload := map[string]any{
		"blog": map[string]any{"blog_id": "7", "title": "hello"},
		"data": map[string]any{"blog_id": "8"},
	}

	record := DecodeOne(payload, "blog")
	if record.ID("blog_id") != "7" {
		t.Fatalf("ID = %q, want 7", record.ID("blog_id"))
	}
}

func TestDecodeOneBareObject(t *testing.T) {
	payload := map[string]any{"faq_id": "3", "question": "why"}

	record := DecodeOne(payload, "faq")
	if record.ID("faq_id") != "3" {
		t.Fatalf("ID = %q, want 3", record.ID("faq_id"))
	}
}
