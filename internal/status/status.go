package status

import "time"

// TTL is how long a notice stays on the status line.
const TTL = 3 * time.Second

type Notice struct {
	ID      uint64
	Text    string
	IsError bool
}

// Line is a single transient status slot. A newer notice replaces the
// current one; Expire only clears the notice it was scheduled for.
type Line struct {
	seq     uint64
	current *Notice
}

func (l *Line) Show(text string, isError bool) Notice {
	l.seq++
	n := Notice{ID: l.seq, Text: text, IsError: isError}
	l.current = &n
	return n
}

func (l *Line) Expire(id uint64) bool {
	if l.current == nil || l.current.ID != id {
		return false
	}
	l.current = nil
	return true
}

func (l *Line) Current() (Notice, bool) {
	if l.current == nil {
		return Notice{}, false
	}
	return *l.current, true
}
