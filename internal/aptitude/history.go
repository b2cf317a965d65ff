package aptitude

import (
	"time"

	"github.com/priyansh/career-compass/internal/types"
)

// RecordHistory prepends a completed quiz to the per-category history,
// newest first, pruning anything beyond the retention cap.
func RecordHistory(history []types.HistoryEntry, entry types.HistoryEntry, now time.Time) []types.HistoryEntry {
	entry.Date = now
	out := make([]types.HistoryEntry, 0, len(history)+1)
	out = append(out, entry)
	out = append(out, history...)
	if len(out) > types.HistoryCap {
		out = out[:types.HistoryCap]
	}
	return out
}
