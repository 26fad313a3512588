package editor

import (
	"errors"

	"ghostconfig/internal/model"
	"ghostconfig/internal/picker"
)

type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

var ErrNoOption = errors.New("editor: no option")

// Session edits at most one option at a time. It is reusable: every Open
// starts from scratch and every close drops the picker.
type Session struct {
	option *model.Option
	picker picker.Picker
	gen    uint64
}

// InitialValue seeds the edit buffer: current value, then default, then "".
func InitialValue(opt model.Option) string {
	if opt.CurrentValue != "" {
		return opt.CurrentValue
	}
	return opt.DefaultValue
}

// Open starts editing opt. A session that is already open is discarded
// without a prompt.
func (s *Session) Open(opt *model.Option, env picker.Env) (picker.Picker, error) {
	if opt == nil {
		return nil, ErrNoOption
	}
	s.reset()
	p, err := picker.New(*opt, InitialValue(*opt), env)
	if err != nil {
		return nil, err
	}
	s.gen++
	s.option = opt
	s.picker = p
	return p, nil
}

// Cancel closes the session without committing. Dismiss gestures map here too.
func (s *Session) Cancel() { s.reset() }

// Close ends the session after a successful commit.
func (s *Session) Close() { s.reset() }

func (s *Session) reset() {
	s.option = nil
	s.picker = nil
}

func (s *Session) State() State {
	if s.option == nil {
		return Closed
	}
	return Open
}

func (s *Session) Option() *model.Option { return s.option }
func (s *Session) Picker() picker.Picker { return s.picker }

// Generation identifies the current (or last) opened session. It changes on
// every Open so late async results can tell whether their session is gone.
func (s *Session) Generation() uint64 { return s.gen }

func (s *Session) IsOpenFor(key string) bool {
	return s.option != nil && s.option.Key == key
}

// Value is the picker's commit value, or "" when closed.
func (s *Session) Value() string {
	if s.picker == nil {
		return ""
	}
	return s.picker.Value()
}
