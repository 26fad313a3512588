package reconcile

import (
	"context"
	"fmt"

	"ghostconfig/internal/catalog"
	"ghostconfig/internal/status"
)

type Saver interface {
	SaveConfig(ctx context.Context, key, value string) error
}

// SaveError is a rejected commit. The edit session stays open on this error.
type SaveError struct {
	Key string
	Err error
}

func (e *SaveError) Error() string { return fmt.Sprintf("save %s: %v", e.Key, e.Err) }
func (e *SaveError) Unwrap() error { return e.Err }

// Messages formats status notices. Zero value uses the English wording.
type Messages struct {
	Saved      func(key, value string) string
	SaveFailed func(err error) string
}

func (m Messages) saved(key, value string) string {
	if m.Saved != nil {
		return m.Saved(key, value)
	}
	return fmt.Sprintf("Saved: %s = %s", key, value)
}

func (m Messages) saveFailed(err error) string {
	if m.SaveFailed != nil {
		return m.SaveFailed(err)
	}
	return "Failed to save: " + err.Error()
}

// Reconciler is the only writer of the catalog.
type Reconciler struct {
	saver    Saver
	catalog  *catalog.Catalog
	status   *status.Line
	onChange func()
	msgs     Messages
}

func New(saver Saver, cat *catalog.Catalog, line *status.Line, onChange func()) *Reconciler {
	return &Reconciler{saver: saver, catalog: cat, status: line, onChange: onChange}
}

func (r *Reconciler) SetMessages(m Messages) { r.msgs = m }

// Commit sends key=value to the server. The catalog is updated only after the
// server acknowledges; a failure leaves it untouched.
//
// The returned notice is the one posted to the status line; callers schedule
// its expiry after status.TTL.
func (r *Reconciler) Commit(ctx context.Context, key, value string) (status.Notice, error) {
	if err := r.saver.SaveConfig(ctx, key, value); err != nil {
		return r.Fail(key, err)
	}
	return r.Apply(key, value), nil
}

// Apply merges an acknowledged save into the catalog, re-projects once and
// posts the success notice. It is split from Commit so callers that run the
// network call off the UI loop can merge on the loop.
func (r *Reconciler) Apply(key, value string) status.Notice {
	r.catalog.ApplyUpdate(key, value)
	if r.onChange != nil {
		r.onChange()
	}
	return r.notify(r.msgs.saved(key, value), false)
}

// Fail posts the error notice for a save that was rejected off the UI loop.
func (r *Reconciler) Fail(key string, err error) (status.Notice, error) {
	serr := &SaveError{Key: key, Err: err}
	return r.notify(r.msgs.saveFailed(err), true), serr
}

func (r *Reconciler) notify(text string, isError bool) status.Notice {
	if r.status == nil {
		return status.Notice{Text: text, IsError: isError}
	}
	return r.status.Show(text, isError)
}
