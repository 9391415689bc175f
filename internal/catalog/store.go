// Package catalog holds the per-book question collection, the single source
// of truth for the question screen.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/alclearn/admin-console/internal/api"
	"github.com/alclearn/admin-console/internal/editor"
	"github.com/alclearn/admin-console/internal/form"
	"github.com/alclearn/admin-console/internal/model"
)

// ErrAlreadyDeleted marks a delete that hit a 404: the item was gone before
// the request, so the outcome is already satisfied. The collection is
// refreshed anyway.
var ErrAlreadyDeleted = errors.New("item was already deleted")

// ErrDeclined marks a delete the operator did not confirm. No request is
// issued.
var ErrDeclined = errors.New("delete declined")

// Confirm asks the operator before a destructive call.
type Confirm func(prompt string) bool

// Store fetches one book's question bundle and fans it out into the four
// kind-buckets. Contract: every successful mutation triggers a full Load
// before the call returns, so the collection always reflects one fresh
// server snapshot — mutate() implies subsequent state reflects a fresh load.
// An optimistic-patch implementation may replace this as long as it keeps
// that guarantee.
type Store struct {
	client *api.Client
	bookID int64
	log    zerolog.Logger

	mu       sync.Mutex
	book     *model.Book
	buckets  model.QuestionBuckets
	passages []model.ReadingPassage
	loaded   bool
}

// New creates a Store for one book.
func New(client *api.Client, bookID int64, log zerolog.Logger) *Store {
	return &Store{
		client: client,
		bookID: bookID,
		log:    log.With().Str("component", "catalog").Int64("book_id", bookID).Logger(),
	}
}

// Load fetches the full question bundle in one request. A missing or
// misshapen payload surfaces as an error, not a crash.
func (s *Store) Load(ctx context.Context) error {
	var bundle model.QuestionBundle
	path := fmt.Sprintf("/questions/books/%d/questions/", s.bookID)
	if err := s.client.Get(ctx, path, &bundle); err != nil {
		return err
	}

	s.mu.Lock()
	s.book = bundle.Book
	s.buckets = bundle.Questions
	s.passages = bundle.ReadingPassages
	s.loaded = true
	s.mu.Unlock()

	s.log.Debug().
		Int("mcq", len(bundle.Questions.MCQ)).
		Int("matching", len(bundle.Questions.Matching)).
		Int("truefalse", len(bundle.Questions.TrueFalse)).
		Int("reading", len(bundle.ReadingPassages)).
		Msg("bundle loaded")
	return nil
}

// LoadMessage maps a load failure to the message shown on the screen.
func LoadMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case api.IsNotFound(err):
		return "The book does not exist or has no questions."
	case errors.Is(err, api.ErrNoSession), api.IsUnauthorized(err):
		return "Your session has expired. Please sign in again."
	default:
		return "Something went wrong while loading the questions."
	}
}

// Book returns the loaded book, if any.
func (s *Store) Book() *model.Book {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.book
}

// BookTitle returns the loaded book's title, or "".
func (s *Store) BookTitle() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.book == nil {
		return ""
	}
	return s.book.Title
}

// MCQ returns the multiple-choice bucket.
func (s *Store) MCQ() []model.MCQItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buckets.MCQ
}

// Matching returns the matching bucket.
func (s *Store) Matching() []model.MatchingItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buckets.Matching
}

// TrueFalse returns the true/false bucket.
func (s *Store) TrueFalse() []model.TrueFalseItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buckets.TrueFalse
}

// Passages returns the reading passages.
func (s *Store) Passages() []model.ReadingPassage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.passages
}

// Total counts every question across the four kind-buckets.
func (s *Store) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.buckets.MCQ) + len(s.buckets.Matching) +
		len(s.buckets.TrueFalse) + len(s.passages)
}

// ─── Mutations ──────────────────────────────────────────────────────────────

// SaveMCQ creates or updates an MCQ, then reloads.
func (s *Store) SaveMCQ(ctx context.Context, d form.MCQDraft, mode editor.Mode, itemID int64) error {
	payload := d.ToWire(s.bookID, mode == editor.ModeEdit)
	var err error
	if mode == editor.ModeEdit {
		err = s.client.Put(ctx, fmt.Sprintf("/questions/mcq-questions/%d/", itemID), payload, nil)
	} else {
		err = s.client.Post(ctx, "/questions/mcq-questions/", payload, nil)
	}
	if err != nil {
		return err
	}
	return s.Load(ctx)
}

// SaveMatching creates or updates a matching question, then reloads.
func (s *Store) SaveMatching(ctx context.Context, d form.MatchingDraft, mode editor.Mode, itemID int64) error {
	payload := d.ToWire(s.bookID, mode == editor.ModeEdit)
	var err error
	if mode == editor.ModeEdit {
		err = s.client.Put(ctx, fmt.Sprintf("/questions/matching-questions/%d/", itemID), payload, nil)
	} else {
		err = s.client.Post(ctx, "/questions/matching-questions/", payload, nil)
	}
	if err != nil {
		return err
	}
	return s.Load(ctx)
}

// SaveTrueFalse creates or updates a true/false question, then reloads.
func (s *Store) SaveTrueFalse(ctx context.Context, d form.TrueFalseDraft, mode editor.Mode, itemID int64) error {
	payload := d.ToWire(s.bookID)
	var err error
	if mode == editor.ModeEdit {
		err = s.client.Put(ctx, fmt.Sprintf("/questions/truefalse-questions/%d/", itemID), payload, nil)
	} else {
		err = s.client.Post(ctx, "/questions/truefalse-questions/", payload, nil)
	}
	if err != nil {
		return err
	}
	return s.Load(ctx)
}

// SaveReading creates or updates a reading passage, then reloads.
func (s *Store) SaveReading(ctx context.Context, d form.ReadingDraft, mode editor.Mode, itemID int64) error {
	payload := d.ToWire(s.bookID, s.BookTitle())
	var err error
	if mode == editor.ModeEdit {
		err = s.client.Put(ctx, fmt.Sprintf("/questions/reading-comprehensions/%d/", itemID), payload, nil)
	} else {
		err = s.client.Post(ctx, "/questions/reading-comprehensions/", payload, nil)
	}
	if err != nil {
		return err
	}
	return s.Load(ctx)
}

// DeleteMCQ deletes an MCQ after confirmation, then reloads.
func (s *Store) DeleteMCQ(ctx context.Context, itemID int64, text string, confirm Confirm) error {
	prompt := fmt.Sprintf("Delete the question %q?", truncate(text, 50))
	return s.delete(ctx, fmt.Sprintf("/questions/mcq-questions/%d/", itemID), prompt, confirm)
}

// DeleteMatching deletes a matching question after confirmation, then reloads.
func (s *Store) DeleteMatching(ctx context.Context, itemID int64, text string, confirm Confirm) error {
	prompt := fmt.Sprintf("Delete the matching question %q?", truncate(text, 50))
	return s.delete(ctx, fmt.Sprintf("/questions/matching-questions/%d/", itemID), prompt, confirm)
}

// DeleteTrueFalse deletes a true/false question after confirmation, then reloads.
func (s *Store) DeleteTrueFalse(ctx context.Context, itemID int64, text string, confirm Confirm) error {
	prompt := fmt.Sprintf("Delete the true/false question %q?", truncate(text, 50))
	return s.delete(ctx, fmt.Sprintf("/questions/truefalse-questions/%d/", itemID), prompt, confirm)
}

// DeleteReading deletes a reading passage after confirmation, then reloads.
func (s *Store) DeleteReading(ctx context.Context, itemID int64, title string, confirm Confirm) error {
	prompt := fmt.Sprintf("Delete the reading passage %q?", truncate(title, 50))
	return s.delete(ctx, fmt.Sprintf("/questions/reading-comprehensions/%d/", itemID), prompt, confirm)
}

// delete issues the confirmed DELETE. A 404 is treated as already satisfied
// and still triggers a refresh.
func (s *Store) delete(ctx context.Context, path, prompt string, confirm Confirm) error {
	if confirm == nil || !confirm(prompt) {
		return ErrDeclined
	}

	err := s.client.Delete(ctx, path)
	switch {
	case err == nil:
		return s.Load(ctx)
	case api.IsNotFound(err):
		if loadErr := s.Load(ctx); loadErr != nil {
			s.log.Warn().Err(loadErr).Msg("refresh after 404 delete failed")
		}
		return ErrAlreadyDeleted
	default:
		return err
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "…"
}
