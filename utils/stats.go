package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
	history              []string
	historySize          int
}

// NewStats tracks the last historySize grid hashes for cycle detection
func NewStats(historySize int) *Stats {
	return &Stats{StartTime: time.Now(), historySize: historySize}
}

func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.TotalGenerations <= 1 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Record stores a grid hash and reports whether it repeats one of the recent
// hashes, which means the grid is static or cycling.
func (s *Stats) Record(hash string) (stagnant bool) {
	for _, h := range s.history {
		if h == hash {
			stagnant = true
			break
		}
	}

	if s.historySize <= 0 {
		return stagnant
	}
	s.history = append(s.history, hash)
	if len(s.history) > s.historySize {
		s.history = s.history[1:]
	}
	return stagnant
}

// Runtime returns the time elapsed since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
