// Package trace records the human-readable, clock-stamped event log of a run.
// It has no dependencies on sim/ and stores pure data types.
package trace

import (
	"fmt"
	"io"
	"strings"
)

// Record is one log line.
type Record struct {
	Clock   float64 // clock value when the line was generated
	TruckID int     // 0 when the line is not about a specific truck
	Message string
}

// String renders the record with a fixed-width "[T=<clock>]" prefix.
func (r Record) String() string {
	return fmt.Sprintf("[T=%8.2f] %s", r.Clock, r.Message)
}

// EventLog collects records in the order they were generated.
// Lines are generated as the clock advances, so the log is chronological.
type EventLog struct {
	Records []Record
}

// NewEventLog creates an EventLog ready for recording.
func NewEventLog() *EventLog {
	return &EventLog{Records: make([]Record, 0)}
}

// Recordf appends a formatted line stamped with clock.
func (l *EventLog) Recordf(clock float64, truckID int, format string, args ...any) {
	l.Records = append(l.Records, Record{
		Clock:   clock,
		TruckID: truckID,
		Message: fmt.Sprintf(format, args...),
	})
}

// Lines returns every record rendered as text.
func (l *EventLog) Lines() []string {
	lines := make([]string, len(l.Records))
	for i, r := range l.Records {
		lines[i] = r.String()
	}
	return lines
}

// ForTruck returns the records that mention truckID.
func (l *EventLog) ForTruck(truckID int) []Record {
	var out []Record
	for _, r := range l.Records {
		if r.TruckID == truckID {
			out = append(out, r)
		}
	}
	return out
}

// WriteTo writes one line per record to w.
func (l *EventLog) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	for _, r := range l.Records {
		sb.WriteString(r.String())
		sb.WriteByte('\n')
	}
	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}
