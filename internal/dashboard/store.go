// Package dashboard holds the book list and the password-reset request list
// behind the dashboard screen.
package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/alclearn/admin-console/internal/api"
	"github.com/alclearn/admin-console/internal/catalog"
	"github.com/alclearn/admin-console/internal/editor"
	"github.com/alclearn/admin-console/internal/form"
	"github.com/alclearn/admin-console/internal/model"
)

// Store manages books and reset requests. Unlike the question screen, book
// mutations patch the local list optimistically with the server's response
// instead of reloading; LoadBooks remains the resync point.
type Store struct {
	client *api.Client
	log    zerolog.Logger

	// Banner carries the screen's ephemeral success/error messages.
	Banner *Banner

	mu       sync.Mutex
	books    []model.Book
	requests []model.PasswordResetRequest
}

// New creates a dashboard Store.
func New(client *api.Client, bannerTTL time.Duration, log zerolog.Logger) *Store {
	return &Store{
		client: client,
		log:    log.With().Str("component", "dashboard").Logger(),
		Banner: NewBanner(bannerTTL),
	}
}

// LoadBooks fetches the full book list.
func (s *Store) LoadBooks(ctx context.Context) error {
	var books []model.Book
	if err := s.client.Get(ctx, "/questions/books/", &books); err != nil {
		return err
	}
	s.mu.Lock()
	s.books = books
	s.mu.Unlock()
	return nil
}

// Books returns the current book list.
func (s *Store) Books() []model.Book {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.books
}

// SaveBook creates or updates a book and patches the local list with the
// server's returned record.
func (s *Store) SaveBook(ctx context.Context, d form.BookDraft, mode editor.Mode, bookID int64) error {
	payload := d.ToWire()

	var saved model.Book
	var err error
	if mode == editor.ModeEdit {
		err = s.client.Put(ctx, fmt.Sprintf("/questions/books/%d/", bookID), payload, &saved)
	} else {
		err = s.client.Post(ctx, "/questions/books/", payload, &saved)
	}
	if err != nil {
		return err
	}

	s.mu.Lock()
	if mode == editor.ModeEdit {
		for i := range s.books {
			if s.books[i].ID == bookID {
				s.books[i] = saved
				break
			}
		}
	} else {
		s.books = append(s.books, saved)
	}
	s.mu.Unlock()
	return nil
}

// DeleteBook deletes a book after confirmation and filters it from the local
// list.
func (s *Store) DeleteBook(ctx context.Context, bookID int64, title string, confirm catalog.Confirm) error {
	if confirm == nil || !confirm(fmt.Sprintf("Delete the book %q?", title)) {
		return catalog.ErrDeclined
	}

	if err := s.client.Delete(ctx, fmt.Sprintf("/questions/books/%d/", bookID)); err != nil {
		return err
	}

	s.mu.Lock()
	kept := s.books[:0]
	for _, b := range s.books {
		if b.ID != bookID {
			kept = append(kept, b)
		}
	}
	s.books = kept
	s.mu.Unlock()
	return nil
}

// LoadResetRequests fetches the password-reset request list.
func (s *Store) LoadResetRequests(ctx context.Context) error {
	var requests []model.PasswordResetRequest
	if err := s.client.Get(ctx, "/users/password-reset-requests/", &requests); err != nil {
		return err
	}
	s.mu.Lock()
	s.requests = requests
	s.mu.Unlock()
	return nil
}

// ResetRequests returns the current reset-request list.
func (s *Store) ResetRequests() []model.PasswordResetRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests
}

// MarkResetRequestHandled flips is_handled to true, exactly once. The flag
// never reverses here; the local row is patched to handled on success.
func (s *Store) MarkResetRequestHandled(ctx context.Context, id int64) error {
	body := map[string]bool{"is_handled": true}
	path := fmt.Sprintf("/users/password-reset-requests/%d/", id)
	if err := s.client.Patch(ctx, path, body, nil); err != nil {
		return err
	}

	s.mu.Lock()
	for i := range s.requests {
		if s.requests[i].ID == id {
			s.requests[i].IsHandled = true
			break
		}
	}
	s.mu.Unlock()
	return nil
}
