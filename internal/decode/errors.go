package decode

import "fmt"

// Error is a decode-time failure, optionally carrying a 1-based line
// number. The decoder does not set Column.
type Error struct {
	Message string
	Line    int
	Column  int
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s (line %d)", e.Message, e.Line)
	}
	return e.Message
}

func errf(line int, format string, args ...interface{}) error {
	return &Error{Message: fmt.Sprintf(format, args...), Line: line}
}
