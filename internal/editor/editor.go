// Package editor implements the modal-form state machine shared by the four
// question editors and the book form:
//
//	closed → open(create, blank draft) | open(edit, draft = toForm(item))
//	       → submitting → closed on success, back to open on failure
//
// The editor exclusively owns its draft until submit or cancel. Validation
// runs before any network call and surfaces as a user-facing message, never
// a request.
package editor

import (
	"context"
	"errors"
)

// Mode distinguishes create from edit.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

// State is the editor's position in the modal lifecycle.
type State int

const (
	StateClosed State = iota
	StateOpen
	StateSubmitting
)

// ErrNotOpen is returned when Submit is called on a closed editor.
var ErrNotOpen = errors.New("editor is not open")

// ErrBusy is returned when a submission is already in flight for this
// editor. Duplicate submissions from the same control are excluded here;
// cross-control duplicates remain a server responsibility.
var ErrBusy = errors.New("a submission is already in flight")

// SubmitFunc performs the create or update request for a validated draft and
// whatever follows it (typically a full store reload).
type SubmitFunc[D any] func(ctx context.Context, draft D, mode Mode, itemID int64) error

// Editor owns one in-progress draft of type D.
type Editor[D any] struct {
	state  State
	mode   Mode
	itemID int64
	draft  D

	validate func(*D) error
	submit   SubmitFunc[D]
}

// New creates a closed editor with the given validation and submit hooks.
func New[D any](validate func(*D) error, submit SubmitFunc[D]) *Editor[D] {
	return &Editor[D]{validate: validate, submit: submit}
}

// OpenCreate opens the editor in create mode with a blank draft.
func (e *Editor[D]) OpenCreate(blank D) {
	e.state = StateOpen
	e.mode = ModeCreate
	e.itemID = 0
	e.draft = blank
}

// OpenEdit opens the editor in edit mode with the item's form draft.
func (e *Editor[D]) OpenEdit(itemID int64, draft D) {
	e.state = StateOpen
	e.mode = ModeEdit
	e.itemID = itemID
	e.draft = draft
}

// Draft exposes the in-progress draft for mutation while open.
func (e *Editor[D]) Draft() *D { return &e.draft }

// State returns the current lifecycle state.
func (e *Editor[D]) State() State { return e.state }

// Mode returns create or edit; meaningful only while open.
func (e *Editor[D]) Mode() Mode { return e.mode }

// Cancel closes the editor and discards the draft.
func (e *Editor[D]) Cancel() {
	var zero D
	e.state = StateClosed
	e.draft = zero
}

// Submit validates, serializes, and performs the request. On success the
// editor closes and the draft is cleared. On failure the editor stays open
// with the draft intact and the error maps to a user-facing message at the
// call site.
func (e *Editor[D]) Submit(ctx context.Context) error {
	switch e.state {
	case StateClosed:
		return ErrNotOpen
	case StateSubmitting:
		return ErrBusy
	}

	if err := e.validate(&e.draft); err != nil {
		return err
	}

	e.state = StateSubmitting
	if err := e.submit(ctx, e.draft, e.mode, e.itemID); err != nil {
		e.state = StateOpen
		return err
	}

	var zero D
	e.state = StateClosed
	e.draft = zero
	return nil
}
