package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	PeakPopulation       int
	TotalGenerations     int
	TotalBirths          int
	TotalDeaths          int
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records the outcome of one generation.
func (s *Stats) Update(generation, population, births, deaths int, duration time.Duration) {
	s.TotalGenerations = generation
	s.TotalBirths += births
	s.TotalDeaths += deaths
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}
	if population > s.PeakPopulation {
		s.PeakPopulation = population
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}
