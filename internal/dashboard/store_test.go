package dashboard

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alclearn/admin-console/internal/api"
	"github.com/alclearn/admin-console/internal/catalog"
	"github.com/alclearn/admin-console/internal/editor"
	"github.com/alclearn/admin-console/internal/form"
	"github.com/alclearn/admin-console/internal/session"
	"github.com/alclearn/admin-console/internal/stub"
	"github.com/alclearn/admin-console/internal/validator"
)

func accept(string) bool  { return true }
func decline(string) bool { return false }

func newTestDashboard(t *testing.T) *Store {
	t.Helper()
	validator.Setup()

	state := stub.NewState("test-secret", time.Hour)
	srv := httptest.NewServer(state.Router(nil, zerolog.Nop()))
	t.Cleanup(srv.Close)

	sessions, err := session.Open(filepath.Join(t.TempDir(), "session.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { sessions.Close() })

	client := api.New(srv.URL, sessions, 5*time.Second, zerolog.Nop())
	entry := session.NewEntry(client, sessions, zerolog.Nop())
	_, err = entry.Login(context.Background(), stub.AdminEmail, stub.AdminPassword)
	require.NoError(t, err)

	return New(client, 5*time.Second, zerolog.Nop())
}

func TestLoadBooks(t *testing.T) {
	store := newTestDashboard(t)
	require.NoError(t, store.LoadBooks(context.Background()))

	books := store.Books()
	require.Len(t, books, 1)
	assert.Equal(t, "First Steps in English", books[0].Title)
	assert.Equal(t, 49.5, books[0].PriceSAR)
}

func TestSaveBookCreateAppendsServerRecord(t *testing.T) {
	store := newTestDashboard(t)
	require.NoError(t, store.LoadBooks(context.Background()))

	draft := form.BookDraft{Title: "Grammar Basics", PriceSAR: "25"}
	require.NoError(t, store.SaveBook(context.Background(), draft, editor.ModeCreate, 0))

	books := store.Books()
	require.Len(t, books, 2)
	// The appended record is the server's, with its assigned ID.
	assert.Equal(t, "Grammar Basics", books[1].Title)
	assert.NotZero(t, books[1].ID)
	assert.Equal(t, 25.0, books[1].PriceSAR)
}

func TestSaveBookEditReplacesLocalRecord(t *testing.T) {
	store := newTestDashboard(t)
	require.NoError(t, store.LoadBooks(context.Background()))

	book := store.Books()[0]
	draft := form.BookToForm(book)
	draft.Title = "First Steps in English, 2nd ed."

	require.NoError(t, store.SaveBook(context.Background(), draft, editor.ModeEdit, book.ID))

	books := store.Books()
	require.Len(t, books, 1)
	assert.Equal(t, "First Steps in English, 2nd ed.", books[0].Title)
	assert.Equal(t, book.ID, books[0].ID)
}

func TestDeleteBookDeclined(t *testing.T) {
	store := newTestDashboard(t)
	require.NoError(t, store.LoadBooks(context.Background()))

	book := store.Books()[0]
	err := store.DeleteBook(context.Background(), book.ID, book.Title, decline)

	assert.ErrorIs(t, err, catalog.ErrDeclined)
	assert.Len(t, store.Books(), 1)
}

func TestDeleteBookFiltersLocalList(t *testing.T) {
	store := newTestDashboard(t)
	require.NoError(t, store.LoadBooks(context.Background()))

	book := store.Books()[0]
	require.NoError(t, store.DeleteBook(context.Background(), book.ID, book.Title, accept))

	assert.Empty(t, store.Books())

	// The server agrees after a resync.
	require.NoError(t, store.LoadBooks(context.Background()))
	assert.Empty(t, store.Books())
}

func TestLoadResetRequests(t *testing.T) {
	store := newTestDashboard(t)
	require.NoError(t, store.LoadResetRequests(context.Background()))

	requests := store.ResetRequests()
	require.Len(t, requests, 2)
	assert.False(t, requests[0].IsHandled)
	assert.True(t, requests[1].IsHandled)
}

func TestMarkResetRequestHandled(t *testing.T) {
	store := newTestDashboard(t)
	require.NoError(t, store.LoadResetRequests(context.Background()))

	pending := store.ResetRequests()[0]
	require.NoError(t, store.MarkResetRequestHandled(context.Background(), pending.ID))

	assert.True(t, store.ResetRequests()[0].IsHandled)

	// Handled stays handled across a resync.
	require.NoError(t, store.LoadResetRequests(context.Background()))
	assert.True(t, store.ResetRequests()[0].IsHandled)
}
