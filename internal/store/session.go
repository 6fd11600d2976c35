package store

import "github.com/drinkwise/bac-cli/internal/model"

func (s *Store) emptySession() model.Session {
	return model.Session{
		StartTime: isoTime(s.now()),
		EndTime:   "",
		IsActive:  false,
		Items:     []model.DrinkItem{},
	}
}

// SetTodaySession normalizes and persists the session as today's, stamping
// the date marker with the current local day key.
func (s *Store) SetTodaySession(sess model.Session) (model.Session, error) {
	now := s.now()
	normalized := NormalizeSession(sess, now)
	if err := s.writeSlot(KeySessionDate, LocalDateKey(now)); err != nil {
		return model.Session{}, err
	}
	if err := s.writeSlot(KeySession, normalized); err != nil {
		return model.Session{}, err
	}
	return normalized, nil
}

// TodaySession returns the current day's session, performing the lazy day
// rollover: a session stamped with an older day key is archived under that
// key (if it has any items) and replaced with a fresh empty session. A
// stored session with no marker at all is adopted as today's.
func (s *Store) TodaySession() (model.Session, error) {
	now := s.now()
	today := LocalDateKey(now)

	markerV, err := s.readSlot(KeySessionDate)
	if err != nil {
		return model.Session{}, err
	}
	marker := toString(markerV)

	sessV, err := s.readSlot(KeySession)
	if err != nil {
		return model.Session{}, err
	}
	stored := NormalizeSession(decodeSession(sessV), now)

	if marker == "" {
		return s.SetTodaySession(stored)
	}
	if marker != today {
		if _, err := s.ArchiveSession(marker, stored); err != nil {
			return model.Session{}, err
		}
		return s.SetTodaySession(s.emptySession())
	}
	return s.SetTodaySession(stored)
}

// AddSessionItem normalizes the item and appends it to today's session,
// rolling the day over first if needed. The session becomes active. Only
// catalog items with a SKU ID bump the favorites counter; custom pours
// never do.
func (s *Store) AddSessionItem(item model.DrinkItem) (model.Session, error) {
	sess, err := s.TodaySession()
	if err != nil {
		return model.Session{}, err
	}
	it := NormalizeItem(item, s.now())
	sess.Items = append(sess.Items, it)
	sess.IsActive = true
	if sess.StartTime == "" {
		sess.StartTime = isoTime(s.now())
	}
	if it.Type == model.ItemTypeSku && it.SkuID != "" {
		if err := s.BumpFavoriteSku(it.SkuID, it.Qty); err != nil {
			return model.Session{}, err
		}
	}
	return s.SetTodaySession(sess)
}

// StartDrinking opens today's session. Starting with no logged items
// re-anchors the start time to now; once items exist the clock stays at
// the first drink, not the button press.
func (s *Store) StartDrinking() (model.Session, error) {
	sess, err := s.TodaySession()
	if err != nil {
		return model.Session{}, err
	}
	if len(sess.Items) == 0 {
		sess.StartTime = isoTime(s.now())
	}
	sess.EndTime = ""
	sess.IsActive = true
	return s.SetTodaySession(sess)
}

// EndDrinking closes today's session, stamping the end time with now.
func (s *Store) EndDrinking() (model.Session, error) {
	sess, err := s.TodaySession()
	if err != nil {
		return model.Session{}, err
	}
	sess.IsActive = false
	sess.EndTime = isoTime(s.now())
	return s.SetTodaySession(sess)
}
