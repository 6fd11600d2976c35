package store

import (
	"math"
	"sort"

	"github.com/drinkwise/bac-cli/internal/model"
)

// History returns the archived day summaries, newest first.
func (s *Store) History() ([]model.HistoryEntry, error) {
	v, err := s.readSlot(KeyHistory)
	if err != nil {
		return nil, err
	}
	entries := make([]model.HistoryEntry, 0)
	for _, raw := range asSlice(v) {
		entries = append(entries, decodeHistoryEntry(raw))
	}
	return entries, nil
}

// SaveHistory persists the entries sorted descending by date key (lexical
// order on YYYY-MM-DD is chronological order), dropping entries without a
// date and truncating to the retention window.
func (s *Store) SaveHistory(entries []model.HistoryEntry) ([]model.HistoryEntry, error) {
	kept := make([]model.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		if e.Date == "" {
			continue
		}
		kept = append(kept, e)
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].Date > kept[j].Date })

	max := s.MaxHistoryDays
	if max < 1 {
		max = 1
	}
	if len(kept) > max {
		kept = kept[:max]
	}
	if err := s.writeSlot(KeyHistory, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

func (s *Store) summarizeSession(dateKey string, sess model.Session) model.HistoryEntry {
	var cups, ethanol float64
	for _, it := range sess.Items {
		cups += it.Cups
		ethanol += it.EthanolG
	}
	end := sess.EndTime
	if end == "" {
		end = isoTime(s.now())
	}
	return model.HistoryEntry{
		Date:          dateKey,
		StartTime:     sess.StartTime,
		EndTime:       end,
		Count:         len(sess.Items),
		TotalCups:     math.Round(cups*1000) / 1000,
		TotalEthanolG: math.Round(ethanol*1000) / 1000,
		Items:         sess.Items,
	}
}

// ArchiveSession summarizes the session under the given day key and
// upserts it into history (newest write wins for a day). Sessions with no
// items are discarded, leaving history untouched.
func (s *Store) ArchiveSession(dateKey string, sess model.Session) ([]model.HistoryEntry, error) {
	normalized := NormalizeSession(sess, s.now())
	if len(normalized.Items) == 0 {
		return s.History()
	}
	history, err := s.History()
	if err != nil {
		return nil, err
	}
	merged := make([]model.HistoryEntry, 0, len(history)+1)
	merged = append(merged, s.summarizeSession(dateKey, normalized))
	for _, e := range history {
		if e.Date == dateKey {
			continue
		}
		merged = append(merged, e)
	}
	return s.SaveHistory(merged)
}
