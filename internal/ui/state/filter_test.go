package state

import (
	"testing"

	"github.com/stepmenu/stepmenu/internal/menu"
)

func matchItems(labels ...string) []menu.Item {
	items := make([]menu.Item, len(labels))
	for i, label := range labels {
		items[i] = menu.Item{Name: label, Label: label}
	}
	return items
}

func TestBestMatchIndexPrefersExactMatch(t *testing.T) {
	items := matchItems("wireless", "wifi", "wifi extras")
	if idx := BestMatchIndex(items, "wifi"); idx != 1 {
		t.Fatalf("expected exact match index 1, got %d", idx)
	}
}

func TestBestMatchIndexFallsBackToPrefix(t *testing.T) {
	items := matchItems("ethernet", "wireless")
	if idx := BestMatchIndex(items, "wire"); idx != 1 {
		t.Fatalf("expected prefix match index 1, got %d", idx)
	}
}

func TestBestMatchIndexUsesFuzzyRanking(t *testing.T) {
	items := matchItems("configuration", "callback registry")
	if idx := BestMatchIndex(items, "cfgrtn"); idx != 0 {
		t.Fatalf("expected fuzzy match index 0, got %d", idx)
	}
}

func TestBestMatchIndexReturnsMinusOneWhenNothingMatches(t *testing.T) {
	items := matchItems("alpha", "beta")
	if idx := BestMatchIndex(items, "zzzz"); idx != -1 {
		t.Fatalf("expected -1, got %d", idx)
	}
	if idx := BestMatchIndex(nil, "query"); idx != -1 {
		t.Fatalf("expected -1 for no items, got %d", idx)
	}
	if idx := BestMatchIndex(items, "  "); idx != -1 {
		t.Fatalf("expected -1 for blank query, got %d", idx)
	}
}
