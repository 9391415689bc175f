package editor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type draft struct {
	Text string
}

func validateNonEmpty(d *draft) error {
	if d.Text == "" {
		return errors.New("text is required")
	}
	return nil
}

func TestEditorLifecycle(t *testing.T) {
	var submitted []draft
	ed := New(validateNonEmpty, func(ctx context.Context, d draft, mode Mode, itemID int64) error {
		submitted = append(submitted, d)
		return nil
	})

	assert.Equal(t, StateClosed, ed.State())

	ed.OpenCreate(draft{})
	assert.Equal(t, StateOpen, ed.State())
	assert.Equal(t, ModeCreate, ed.Mode())

	ed.Draft().Text = "hello"
	require.NoError(t, ed.Submit(context.Background()))

	assert.Equal(t, StateClosed, ed.State())
	require.Len(t, submitted, 1)
	assert.Equal(t, "hello", submitted[0].Text)
}

func TestEditorOpenEditCarriesItemID(t *testing.T) {
	var gotMode Mode
	var gotID int64
	ed := New(validateNonEmpty, func(ctx context.Context, d draft, mode Mode, itemID int64) error {
		gotMode = mode
		gotID = itemID
		return nil
	})

	ed.OpenEdit(42, draft{Text: "existing"})
	require.NoError(t, ed.Submit(context.Background()))

	assert.Equal(t, ModeEdit, gotMode)
	assert.Equal(t, int64(42), gotID)
}

func TestEditorInvalidDraftNeverSubmits(t *testing.T) {
	calls := 0
	ed := New(validateNonEmpty, func(ctx context.Context, d draft, mode Mode, itemID int64) error {
		calls++
		return nil
	})

	ed.OpenCreate(draft{})
	err := ed.Submit(context.Background())

	require.EqualError(t, err, "text is required")
	assert.Zero(t, calls)
	// Editor stays open with the draft intact for another attempt.
	assert.Equal(t, StateOpen, ed.State())
}

func TestEditorFailedSubmitKeepsDraft(t *testing.T) {
	ed := New(validateNonEmpty, func(ctx context.Context, d draft, mode Mode, itemID int64) error {
		return errors.New("server said no")
	})

	ed.OpenCreate(draft{Text: "keep me"})
	err := ed.Submit(context.Background())

	require.Error(t, err)
	assert.Equal(t, StateOpen, ed.State())
	assert.Equal(t, "keep me", ed.Draft().Text)
}

func TestEditorSubmitWhileClosed(t *testing.T) {
	ed := New(validateNonEmpty, func(ctx context.Context, d draft, mode Mode, itemID int64) error {
		return nil
	})

	assert.ErrorIs(t, ed.Submit(context.Background()), ErrNotOpen)
}

func TestEditorRejectsConcurrentSubmit(t *testing.T) {
	ed := New(validateNonEmpty, nil)

	started := make(chan struct{})
	release := make(chan struct{})
	var inner error
	ed.submit = func(ctx context.Context, d draft, mode Mode, itemID int64) error {
		close(started)
		<-release
		return nil
	}

	ed.OpenCreate(draft{Text: "slow"})
	done := make(chan struct{})
	go func() {
		inner = ed.Submit(context.Background())
		close(done)
	}()

	<-started
	assert.ErrorIs(t, ed.Submit(context.Background()), ErrBusy)
	close(release)
	<-done
	assert.NoError(t, inner)
}

func TestEditorCancelDiscardsDraft(t *testing.T) {
	ed := New(validateNonEmpty, func(ctx context.Context, d draft, mode Mode, itemID int64) error {
		return nil
	})

	ed.OpenCreate(draft{Text: "discard"})
	ed.Cancel()

	assert.Equal(t, StateClosed, ed.State())
	assert.Empty(t, ed.Draft().Text)
}
