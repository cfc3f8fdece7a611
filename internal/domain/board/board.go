// Package board holds the leaderboard data model and ranking rules.
package board

import (
	"encoding/json"
	"math"
	"sort"
)

// DefaultMaxEntries bounds the board at the classic arcade ten.
const DefaultMaxEntries = 10

// Entry is a single leaderboard row. Immutable once created.
type Entry struct {
	Name      string  `json:"name"`
	Score     float64 `json:"score"`
	Timestamp string  `json:"timestamp"`
}

// RoundScore rounds a score to one decimal place.
func RoundScore(v float64) float64 {
	return math.Round(v*10) / 10
}

// Insert places e at the front of entries, re-sorts by descending score
// with a stable sort keyed on score only, and truncates to max. Stability
// guarantees the new entry sorts ahead of existing entries with an equal
// score, and that pre-existing ties keep their relative order.
func Insert(entries []Entry, e Entry, max int) []Entry {
	merged := make([]Entry, 0, len(entries)+1)
	merged = append(merged, e)
	merged = append(merged, entries...)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Score > merged[j].Score
	})
	if max > 0 && len(merged) > max {
		merged = merged[:max]
	}
	return merged
}

// Decode parses the persisted JSON array into entries.
func Decode(data []byte) ([]Entry, error) {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Encode serializes entries as the persisted JSON array. A nil or empty
// slice encodes as [] so the blob never holds a JSON null.
func Encode(entries []Entry) ([]byte, error) {
	if entries == nil {
		entries = []Entry{}
	}
	return json.Marshal(entries)
}
