package bac

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/drinkwise/bac-cli/internal/app"
	"github.com/drinkwise/bac-cli/internal/db"
	"github.com/drinkwise/bac-cli/internal/model"
	"github.com/drinkwise/bac-cli/internal/store"
)

func withStore(run func(*store.Store) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	st, err := store.New(db.NewBackend(sqldb))
	if err != nil {
		return err
	}
	return run(st)
}

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	return app.DefaultDBPath()
}

func parseSex(value string) (string, error) {
	sex := strings.TrimSpace(strings.ToLower(value))
	switch sex {
	case model.SexMale, model.SexFemale, model.SexUnknown:
		return sex, nil
	}
	return "", fmt.Errorf("invalid sex %q (expected male, female or unknown)", value)
}

func sessionTotals(sess model.Session) (cups, ethanol float64) {
	for _, it := range sess.Items {
		cups += it.Cups
		ethanol += it.EthanolG
	}
	return cups, ethanol
}

// elapsedHours is the time since the session start, floored at zero; a
// missing or unparsable start counts as "just now".
func elapsedHours(startISO string, now time.Time) float64 {
	start, err := time.Parse(time.RFC3339, startISO)
	if err != nil {
		return 0
	}
	h := now.Sub(start).Hours()
	if h < 0 {
		return 0
	}
	return h
}

func sortedByTime(items []model.DrinkItem) []model.DrinkItem {
	out := make([]model.DrinkItem, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return out[i].TS < out[j].TS })
	return out
}

func localClock(iso string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return "--:--"
	}
	return t.Local().Format("15:04")
}

const profileIncompleteNotice = "Profile incomplete: set your weight (and sex) with `bac settings set --weight <kg>`"
