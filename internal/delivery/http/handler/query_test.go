package handler

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestIntQuery(t *testing.T) {
	r := httptest.NewRequest("GET", "/?page=3&limit=abc", nil)
	if got := intQuery(r, "page"); got != 3 {
		t.Errorf("page = %d, want 3", got)
	}
	if got := intQuery(r, "limit"); got != 0 {
		t.Errorf("malformed limit = %d, want 0", got)
	}
	if got := intQuery(r, "missing"); got != 0 {
		t.Errorf("missing = %d, want 0", got)
	}
}

func TestDateQuery(t *testing.T) {
	r := httptest.NewRequest("GET", "/?dateFrom=2026-03-15&bad=15-03-2026", nil)

	got := dateQuery(r, "dateFrom")
	if got == nil {
		t.Fatal("valid date parsed as nil")
	}
	want := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if dateQuery(r, "bad") != nil {
		t.Error("malformed date did not degrade to nil")
	}
	if dateQuery(r, "missing") != nil {
		t.Error("missing date did not degrade to nil")
	}
}

func TestEndOfDayQueryIsInclusive(t *testing.T) {
	r := httptest.NewRequest("GET", "/?dateTo=2026-03-15", nil)

	got := endOfDayQuery(r, "dateTo")
	if got == nil {
		t.Fatal("valid date parsed as nil")
	}

	// A record created late on the named day must fall inside the bound
	lateSameDay := time.Date(2026, 3, 15, 23, 59, 59, 0, time.UTC)
	if got.Before(lateSameDay) {
		t.Errorf("bound %v excludes %v", got, lateSameDay)
	}

	nextDay := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	if !got.Before(nextDay) {
		t.Errorf("bound %v reaches into the next day", got)
	}
}
