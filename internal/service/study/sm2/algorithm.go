// Package sm2 implements the SuperMemo-2 spaced repetition algorithm.
// Grades run 0..5; a grade >= 3 counts as successful recall.
package sm2

import (
	"math"
	"time"

	"github.com/lunarbyte/flashdeck-backend/internal/domain"
)

// DefaultEaseFactor is the starting ease factor for new cards.
const DefaultEaseFactor = 2.5

// MinEaseFactor is the floor below which the ease factor never drops.
const MinEaseFactor = 1.3

// State is the per-card SM-2 scheduling tuple.
type State struct {
	Repetitions  int
	IntervalDays int
	EaseFactor   float64
}

// Params bounds the algorithm output.
type Params struct {
	MinEaseFactor   float64
	MaxIntervalDays int // 0 means uncapped
}

// Result is the outcome of grading a card.
type Result struct {
	State State
	Due   time.Time
}

// NextEaseFactor applies the SM-2 ease-factor update for a successful recall.
//
//	EF' = EF + (0.1 - (5-g) * (0.08 + (5-g) * 0.02))
//
// clamped below at minEase.
func NextEaseFactor(ease float64, grade int, minEase float64) float64 {
	q := float64(5 - grade)
	next := ease + (0.1 - q*(0.08+q*0.02))
	return math.Max(minEase, next)
}

// Update grades a card and returns its next scheduling state.
// Deterministic given inputs; the due date is computed from now (processing
// time), not from when the card was actually studied.
//
// Successful recall (grade >= 3): the ease factor is updated first and the
// new interval is 1 day after the first repetition, 6 days after the second,
// then round(interval * EF'). Failed recall resets repetitions to 0 and the
// interval to 1 day, leaving the ease factor unchanged.
func Update(p Params, s State, grade int, now time.Time) (Result, error) {
	if grade < domain.MinGrade || grade > domain.MaxGrade {
		return Result{}, &domain.InvalidGradeError{Grade: grade}
	}

	minEase := p.MinEaseFactor
	if minEase <= 0 {
		minEase = MinEaseFactor
	}

	var next State
	if grade >= domain.PassingGrade {
		next.EaseFactor = NextEaseFactor(s.EaseFactor, grade, minEase)
		switch s.Repetitions {
		case 0:
			next.IntervalDays = 1
		case 1:
			next.IntervalDays = 6
		default:
			next.IntervalDays = int(math.Round(float64(s.IntervalDays) * next.EaseFactor))
		}
		next.Repetitions = s.Repetitions + 1
	} else {
		next.Repetitions = 0
		next.IntervalDays = 1
		next.EaseFactor = s.EaseFactor
	}

	if p.MaxIntervalDays > 0 && next.IntervalDays > p.MaxIntervalDays {
		next.IntervalDays = p.MaxIntervalDays
	}

	return Result{
		State: next,
		Due:   now.AddDate(0, 0, next.IntervalDays),
	}, nil
}
