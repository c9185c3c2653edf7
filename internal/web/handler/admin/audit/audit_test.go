package audit

import (
	"testing"

	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/iamapi"
)

func sampleEntries() []iamapi.AuditEntry {
	return []iamapi.AuditEntry{
		{ID: 1, Timestamp: "2025-01-02T10:00:00", Action: "LOGIN", Username: "alice", Target: "alice", Status: "SUCCESS"},
		{ID: 2, Timestamp: "2025-01-01T09:00:00", Action: "DELETE_USER", Username: "admin", Target: "bob", Details: "removed account", Status: "SUCCESS"},
		{ID: 3, Timestamp: "2025-01-03T08:30:00", Action: "LOGIN", Username: "mallory", Target: "mallory", Status: "FAILURE"},
		{ID: 4, Timestamp: "2025-01-02T11:15:00", Action: "UPDATE_ROLE", Username: "admin", Target: "ROLE_USER", Status: "SUCCESS"},
	}
}

func TestFilterEntries_Search(t *testing.T) {
	got := filterEntries(sampleEntries(), &QueryParams{SearchQuery: "BOB"})

	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("expected only entry 2, got %+v", got)
	}
}

func TestFilterEntries_SearchMatchesDetails(t *testing.T) {
	got := filterEntries(sampleEntries(), &QueryParams{SearchQuery: "removed"})

	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("expected only entry 2, got %+v", got)
	}
}

func TestFilterEntries_StatusAndAction(t *testing.T) {
	got := filterEntries(sampleEntries(), &QueryParams{FilterStatus: "success", FilterAction: "login"})

	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("expected only entry 1, got %+v", got)
	}
}

func TestFilterEntries_NoFiltersKeepsAll(t *testing.T) {
	got := filterEntries(sampleEntries(), &QueryParams{})

	if len(got) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(got))
	}
}

func TestSortEntries_TimestampDescIsDefaultOrder(t *testing.T) {
	entries := sampleEntries()
	sortEntries(entries, "timestamp", "desc")

	want := []int64{3, 4, 1, 2}
	for i, id := range want {
		if entries[i].ID != id {
			t.Fatalf("position %d: got id %d, want %d (order %+v)", i, entries[i].ID, id, entries)
		}
	}
}

func TestSortEntries_UsernameAsc(t *testing.T) {
	entries := sampleEntries()
	sortEntries(entries, "username", "asc")

	if entries[0].Username != "admin" || entries[len(entries)-1].Username != "mallory" {
		t.Fatalf("unexpected order: %+v", entries)
	}
}

func TestSortEntries_UnknownFieldKeepsOrder(t *testing.T) {
	entries := sampleEntries()
	sortEntries(entries, "bogus", "asc")

	for i, want := range []int64{1, 2, 3, 4} {
		if entries[i].ID != want {
			t.Fatalf("order changed on unknown sort field: %+v", entries)
		}
	}
}

func TestPaginateEntries(t *testing.T) {
	entries := sampleEntries()

	page, totalPages, actualPage := paginateEntries(entries, 2, 3)

	if totalPages != 2 || actualPage != 2 {
		t.Fatalf("totalPages = %d, actualPage = %d, want 2, 2", totalPages, actualPage)
	}

	if len(page) != 1 || page[0].ID != 4 {
		t.Fatalf("expected last entry on page 2, got %+v", page)
	}
}

func TestPaginateEntries_PageBeyondEndClamps(t *testing.T) {
	entries := sampleEntries()

	page, totalPages, actualPage := paginateEntries(entries, 99, 3)

	if actualPage != totalPages {
		t.Fatalf("actualPage = %d, want %d", actualPage, totalPages)
	}

	if len(page) == 0 {
		t.Fatal("expected clamped page to contain entries")
	}
}

func TestPaginateEntries_Empty(t *testing.T) {
	page, totalPages, actualPage := paginateEntries(nil, 1, 10)

	if totalPages != 1 || actualPage != 1 || len(page) != 0 {
		t.Fatalf("got page=%v totalPages=%d actualPage=%d", page, totalPages, actualPage)
	}
}

func TestBuildViewData(t *testing.T) {
	params := &QueryParams{
		Page:        2,
		PageSize:    10,
		SearchQuery: "alice",
		SortField:   "timestamp",
		SortOrder:   "desc",
	}

	view := buildViewData(sampleEntries()[:2], 3, params)

	if !view.HasPrevPage || !view.HasNextPage {
		t.Fatalf("page 2 of 3 must have prev and next, got %+v", view)
	}

	if view.PrevPage != 1 || view.NextPage != 3 {
		t.Fatalf("PrevPage = %d, NextPage = %d", view.PrevPage, view.NextPage)
	}

	if view.SearchQuery != "alice" || view.SortField != "timestamp" {
		t.Fatalf("query params not carried into view: %+v", view)
	}
}
