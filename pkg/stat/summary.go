package stat

import (
	"math"
)

// Summary accumulates observations and reports their count, extremes, mean and variance without
// keeping the observations themselves.  A zero Summary is ready to use.
type Summary struct {
	count int
	min   float64
	max   float64
	mean  float64
	m2    float64
}

// Record adds a new observation
func (s *Summary) Record(obs float64) {
	s.count++
	if s.count == 1 {
		s.min, s.max = obs, obs
	} else {
		s.min = math.Min(s.min, obs)
		s.max = math.Max(s.max, obs)
	}

	// Welford's online update
	delta := obs - s.mean
	s.mean += delta / float64(s.count)
	s.m2 += delta * (obs - s.mean)
}

// Count returns the total number of observations
func (s *Summary) Count() int {
	return s.count
}

func (s *Summary) Min() float64 {
	return s.min
}

func (s *Summary) Max() float64 {
	return s.max
}

// Mean returns the sample mean, or 0 if there are no observations
func (s *Summary) Mean() float64 {
	return s.mean
}

// Variance returns the unbiased sample variance.  Fewer than two observations have no variance and
// return 0.
func (s *Summary) Variance() float64 {
	if s.count < 2 {
		return 0.0
	}
	return s.m2 / float64(s.count-1)
}

func (s *Summary) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Summarize records every value in obs into a new Summary
func Summarize(obs []float64) *Summary {
	s := &Summary{}
	for _, o := range obs {
		s.Record(o)
	}
	return s
}
