package study

import "time"

// UpdateStreak advances a collection's study streak for a session studied on
// studyDate. Pure function over day-granularity dates.
//
// Rules:
//   - first study ever: streak becomes 1, best at least 1
//   - same day as the last study: unchanged (same-day re-study is idempotent)
//   - exactly one day after: streak increments, best follows
//   - more than one day after: streak resets to 1, best unchanged
//   - studyDate before lastStudied (backdated submission): unchanged
func UpdateStreak(lastStudied *time.Time, current, best int, studyDate time.Time) (int, int) {
	if lastStudied == nil {
		return 1, max(best, 1)
	}

	switch days := DaysBetween(*lastStudied, studyDate); {
	case days == 0:
		return current, best
	case days == 1:
		next := current + 1
		return next, max(best, next)
	case days > 1:
		return 1, best
	default:
		return current, best
	}
}
