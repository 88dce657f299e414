// Package docnumber generates human-readable, date-scoped document numbers of
// the form "{PREFIX}-{SEQ}-{DDMMYY}", e.g. "JRN-0001-100124". The sequence is
// four digits, zero padded, and resets daily per prefix.
package docnumber

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// DateSuffix returns the DDMMYY suffix for the given date.
func DateSuffix(date time.Time) string {
	return date.Format("020106")
}

// Format renders a document number from its parts.
func Format(prefix string, seq int, date time.Time) string {
	return fmt.Sprintf("%s-%04d-%s", prefix, seq, DateSuffix(date))
}

// LikePattern returns the SQL LIKE pattern matching all numbers issued for
// the given prefix on the given date.
func LikePattern(prefix string, date time.Time) string {
	return prefix + "-%" + DateSuffix(date)
}

// NextSequence computes the sequence that follows the latest existing number
// for the day. A nil latest starts the day at 1. A malformed latest number
// also restarts at 1: the fallback is deliberate (legacy data contains
// hand-entered numbers) but logged so it stays observable.
func NextSequence(latest *string, logger *slog.Logger) int {
	if latest == nil || *latest == "" {
		return 1
	}
	parts := strings.Split(*latest, "-")
	if len(parts) != 3 {
		logger.Warn("malformed document number, restarting sequence at 1",
			slog.String("number", *latest))
		return 1
	}
	seq, err := strconv.Atoi(parts[1])
	if err != nil || seq < 1 {
		logger.Warn("unparseable sequence segment, restarting sequence at 1",
			slog.String("number", *latest))
		return 1
	}
	return seq + 1
}

// Next produces the full next document number for a prefix and date given the
// latest existing number for that day (nil when none exists yet).
func Next(prefix string, date time.Time, latest *string, logger *slog.Logger) string {
	return Format(prefix, NextSequence(latest, logger), date)
}
