package carto

import "math"

// ProgressionParams controls how score targets grow.
type ProgressionParams struct {
	InitialTarget int
	GrowthFactor  float64
}

// DefaultProgression returns a first target of 10 growing by 20% per level.
func DefaultProgression() ProgressionParams {
	return ProgressionParams{InitialTarget: 10, GrowthFactor: 1.2}
}

// Progress is the score and level state of a run.
//
// Target is expressed as a delta from LastTarget, the cumulative score at
// which the current level started.
type Progress struct {
	Score      int
	LastPoints int
	Level      int
	Target     int
	LastTarget int
}

// ResetProgress returns the state at the start of a run.
func ResetProgress(p ProgressionParams) Progress {
	return Progress{
		Score:      0,
		LastPoints: 0,
		Level:      1,
		Target:     p.InitialTarget,
		LastTarget: 0,
	}
}

// Add folds points into s. At most one level is gained per call, even when
// points cross several thresholds.
func Add(s Progress, points int, p ProgressionParams) Progress {
	points = max(points, 0)
	s.LastPoints = points
	s.Score += points

	if s.Score-s.LastTarget >= s.Target {
		s.Level++
		s.LastTarget += s.Target
		s.Target = int(math.Floor(float64(s.Target) * p.GrowthFactor))
	}
	return s
}

// LeveledUp reports whether next is a level above prev.
func LeveledUp(prev, next Progress) bool {
	return next.Level > prev.Level
}

// Toward returns the points earned in the current level and the target,
// clamped for progress bar display.
func (s Progress) Toward() (earned, target int) {
	earned = min(s.Score-s.LastTarget, s.Target)
	return max(earned, 0), s.Target
}
