package game

import (
	"fmt"
	"strings"
)

// SimLogEntry is one recorded event during a simulation run.
type SimLogEntry struct {
	Tick     uint64
	Category string // lifecycle, mode, den, event, move
	Key      string // specific event name within the category
	Value    string // human-readable detail
}

// String formats the entry as a fixed-width log line.
//
//	[T=00042] den       release          ambush
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[T=%05d] %-9s %-16s %s", e.Tick, e.Category, e.Key, e.Value)
}

// SimLog collects structured, machine-readable entries during a run. It is
// unbounded; tests and the headless report read it back, the windowed app
// leaves it non-verbose.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
}

// NewSimLog creates a SimLog. If verbose is true, per-tick movement entries
// are also recorded.
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// Verbose reports whether per-tick entries are being recorded.
func (l *SimLog) Verbose() bool {
	return l.verbose
}

// SetVerbose toggles per-tick recording.
func (l *SimLog) SetVerbose(v bool) {
	l.verbose = v
}

// Add records a new entry.
func (l *SimLog) Add(tick uint64, category, key, value string) {
	l.entries = append(l.entries, SimLogEntry{Tick: tick, Category: category, Key: key, Value: value})
}

// Addf records a new entry with a formatted value.
func (l *SimLog) Addf(tick uint64, category, key, format string, args ...any) {
	l.Add(tick, category, key, fmt.Sprintf(format, args...))
}

// Entries returns every recorded entry in order.
func (l *SimLog) Entries() []SimLogEntry {
	return l.entries
}

// Filter returns entries matching category and key. Empty strings match
// everything.
func (l *SimLog) Filter(category, key string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range l.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Dump renders the whole log as text.
func (l *SimLog) Dump() string {
	var b strings.Builder
	for _, e := range l.entries {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}
