package handler

import (
	"net/http"
	"strconv"
	"time"
)

func intQuery(r *http.Request, key string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return v
}

// dateQuery parses a YYYY-MM-DD query parameter. Returns nil for a
// missing or malformed value: filters degrade rather than fail.
func dateQuery(r *http.Request, key string) *time.Time {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	return &t
}

// endOfDayQuery parses a YYYY-MM-DD query parameter as an inclusive
// upper bound: the returned instant is the very end of that day.
func endOfDayQuery(r *http.Request, key string) *time.Time {
	t := dateQuery(r, key)
	if t == nil {
		return nil
	}
	end := t.Add(24*time.Hour - time.Nanosecond)
	return &end
}
