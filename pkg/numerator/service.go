// Package numerator provides sale auto-numbering backed by in-process counters.
package numerator

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	corenum "pharmacy/internal/core/numerator"
	"pharmacy/internal/core/tx"
)

// Service provides document numbering functionality.
// Counters live for the duration of the session only.
type Service struct {
	mu       sync.Mutex
	counters map[string]int64
}

// New creates a new numerator service.
func New() *Service {
	return &Service{
		counters: make(map[string]int64),
	}
}

// GetNextNumber generates the next document number.
// Pattern: PREFIX-YEAR-XXXXX (e.g., VD-2026-00001)
func (s *Service) GetNextNumber(ctx context.Context, cfg corenum.Config, period time.Time) (string, error) {
	if s == nil {
		return "", fmt.Errorf("numerator service is not initialized")
	}
	if cfg.Prefix == "" {
		return "", fmt.Errorf("numerator prefix is required")
	}

	key := buildKey(cfg, period)

	s.mu.Lock()
	s.counters[key]++
	num := s.counters[key]
	s.mu.Unlock()

	// A failed commit hands the number back so sequences stay gapless.
	tx.OnRollback(ctx, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.counters[key] == num {
			s.counters[key] = num - 1
		}
	})

	return formatNumber(cfg, period, num), nil
}

// setNextNumber makes the following GetNextNumber call return value.
func (s *Service) setNextNumber(cfg corenum.Config, period time.Time, value int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[buildKey(cfg, period)] = value - 1
}

// buildKey creates the sequence key based on config and period.
func buildKey(cfg corenum.Config, period time.Time) string {
	switch cfg.ResetPeriod {
	case "month":
		return fmt.Sprintf("%s_%s", cfg.Prefix, period.Format("2006_01"))
	case "year":
		return fmt.Sprintf("%s_%s", cfg.Prefix, period.Format("2006"))
	default:
		return cfg.Prefix
	}
}

// formatNumber creates the final number string.
func formatNumber(cfg corenum.Config, period time.Time, num int64) string {
	padWidth := cfg.PadWidth
	if padWidth == 0 {
		padWidth = 5
	}

	if cfg.IncludeYear {
		return fmt.Sprintf("%s-%s-%0*d", cfg.Prefix, period.Format("2006"), padWidth, num)
	}
	return fmt.Sprintf("%s-%0*d", cfg.Prefix, padWidth, num)
}

// ParseNumber extracts numeric part from formatted number.
// Returns -1 if parsing fails.
func ParseNumber(formatted string) int64 {
	idx := strings.LastIndex(formatted, "-")
	if idx < 0 || idx == len(formatted)-1 {
		return -1
	}
	num, err := strconv.ParseInt(formatted[idx+1:], 10, 64)
	if err != nil {
		return -1
	}
	return num
}

var _ corenum.Generator = (*Service)(nil)
