// Package notify keeps the short list of notices shown to an interactive
// user. The log belongs to the caller; generation code never writes to it.
package notify

// DefaultCapacity matches the number of notices the form has room for.
const DefaultCapacity = 5

// Level distinguishes success notices from validation and I/O errors.
type Level int

const (
	LevelInfo Level = iota
	LevelError
)

// Notice is one line shown to the user.
type Notice struct {
	Level Level
	Text  string
}

// Log is a bounded notice list. When a new submission arrives and the log is
// full, it is cleared before the new notices are added.
type Log struct {
	capacity int
	notices  []Notice
}

// NewLog creates a log holding up to capacity notices. capacity <= 0 uses
// DefaultCapacity.
func NewLog(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{capacity: capacity}
}

// BeginSubmission clears the log if it has reached capacity.
func (l *Log) BeginSubmission() {
	if len(l.notices) >= l.capacity {
		l.notices = l.notices[:0]
	}
}

// Info appends a success notice.
func (l *Log) Info(text string) {
	l.notices = append(l.notices, Notice{Level: LevelInfo, Text: text})
}

// Error appends an error notice.
func (l *Log) Error(text string) {
	l.notices = append(l.notices, Notice{Level: LevelError, Text: text})
}

// Notices returns a copy of the current notices, oldest first.
func (l *Log) Notices() []Notice {
	out := make([]Notice, len(l.notices))
	copy(out, l.notices)
	return out
}

// Len returns the number of notices.
func (l *Log) Len() int {
	return len(l.notices)
}
