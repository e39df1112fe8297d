package core

import (
	"sync"
	"time"
)

// Stats 编排层维护的请求计数，今日计数按自然日翻转
type Stats struct {
	mu              sync.Mutex
	totalQueries    int64
	queriesToday    int64
	totalResponseMs int64
	day             string
	startTime       time.Time
}

func NewStats() *Stats {
	return &Stats{
		day:       time.Now().Format("2006-01-02"),
		startTime: time.Now(),
	}
}

func (s *Stats) RecordQuery(elapsedMs int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := time.Now().Format("2006-01-02")
	if today != s.day {
		s.day = today
		s.queriesToday = 0
	}

	s.totalQueries++
	s.queriesToday++
	s.totalResponseMs += elapsedMs
}

func (s *Stats) Snapshot() (totalQueries, queriesToday int64, averageResponseMs float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.totalQueries > 0 {
		averageResponseMs = float64(s.totalResponseMs) / float64(s.totalQueries)
	}
	return s.totalQueries, s.queriesToday, averageResponseMs
}
