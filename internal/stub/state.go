// Package stub is an in-memory stand-in for the remote ALC API. It serves
// every endpoint the console consumes, including both historical
// matching-pair wire shapes, so the client layer can be developed and tested
// without the production backend.
package stub

import (
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/alclearn/admin-console/internal/model"
)

// Seeded accounts and reset token, fixed so tests and manual runs can rely
// on them.
const (
	AdminEmail    = "admin@alc.example"
	AdminPassword = "admin12345"
	ReaderEmail   = "reader@alc.example"
	ReaderPass    = "reader12345"
	ResetToken    = "seed-reset-token"
)

type account struct {
	user model.User
	hash []byte
}

type mcqRecord struct {
	bookID int64
	item   model.MCQItem
}

type matchingRecord struct {
	bookID int64
	item   model.MatchingItem
	// legacyParallel makes the bundle serve this item's pairs in the old
	// two-column array shape.
	legacyParallel bool
}

type trueFalseRecord struct {
	bookID int64
	item   model.TrueFalseItem
}

type readingRecord struct {
	bookID int64
	item   model.ReadingPassage
}

// State is the stub's in-memory data set.
type State struct {
	secret   []byte
	tokenTTL time.Duration

	mu        sync.Mutex
	nextID    int64
	accounts  map[string]*account
	books     map[int64]*model.Book
	mcq       map[int64]*mcqRecord
	matching  map[int64]*matchingRecord
	trueFalse map[int64]*trueFalseRecord
	reading   map[int64]*readingRecord
	resets    map[int64]*model.PasswordResetRequest
	payments  map[string]*model.Payment
}

// NewState creates a seeded State.
func NewState(secret string, tokenTTL time.Duration) *State {
	s := &State{
		secret:    []byte(secret),
		tokenTTL:  tokenTTL,
		accounts:  make(map[string]*account),
		books:     make(map[int64]*model.Book),
		mcq:       make(map[int64]*mcqRecord),
		matching:  make(map[int64]*matchingRecord),
		trueFalse: make(map[int64]*trueFalseRecord),
		reading:   make(map[int64]*readingRecord),
		resets:    make(map[int64]*model.PasswordResetRequest),
		payments:  make(map[string]*model.Payment),
	}
	s.seed()
	return s
}

func (s *State) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *State) seed() {
	s.addAccount(AdminEmail, AdminPassword, "Console Admin", true)
	s.addAccount(ReaderEmail, ReaderPass, "Plain Reader", false)

	book := &model.Book{ID: s.id(), Title: "First Steps in English", Description: "Beginner course book", PriceSAR: 49.5}
	s.books[book.ID] = book

	mcqID := s.id()
	s.mcq[mcqID] = &mcqRecord{
		bookID: book.ID,
		item: model.MCQItem{
			ID:         mcqID,
			Text:       "What is the capital of France?",
			Difficulty: model.DifficultyEasy,
			Choices: []model.Choice{
				{ID: s.id(), Text: "Paris", IsCorrect: true},
				{ID: s.id(), Text: "London"},
				{ID: s.id(), Text: "Rome"},
			},
			CorrectAnswer: "Paris",
		},
	}

	// One matching item in the old two-column shape, one in the flat shape.
	legacyID := s.id()
	s.matching[legacyID] = &matchingRecord{
		bookID:         book.ID,
		legacyParallel: true,
		item: model.MatchingItem{
			ID:         legacyID,
			Text:       "Match the animal to its sound",
			Difficulty: model.DifficultyMedium,
			Pairs: model.PairList{
				{MatchKey: "A", LeftItem: "Dog", RightItem: "Bark"},
				{MatchKey: "B", LeftItem: "Cat", RightItem: "Meow"},
			},
		},
	}
	flatID := s.id()
	s.matching[flatID] = &matchingRecord{
		bookID: book.ID,
		item: model.MatchingItem{
			ID:         flatID,
			Text:       "Match the word to its opposite",
			Difficulty: model.DifficultyEasy,
			Pairs: model.PairList{
				{ID: s.id(), MatchKey: "A", LeftItem: "Hot", RightItem: "Cold"},
				{ID: s.id(), MatchKey: "B", LeftItem: "Up", RightItem: "Down"},
			},
		},
	}

	tfID := s.id()
	s.trueFalse[tfID] = &trueFalseRecord{
		bookID: book.ID,
		item: model.TrueFalseItem{
			ID:         tfID,
			Text:       "The sun rises in the west.",
			Difficulty: model.DifficultyEasy,
			IsTrue:     false,
		},
	}

	readingID := s.id()
	s.reading[readingID] = &readingRecord{
		bookID: book.ID,
		item: model.ReadingPassage{
			ID:         readingID,
			Title:      "A Day at the Market",
			Content:    "Sara went to the market early in the morning…",
			Difficulty: model.DifficultyMedium,
			Questions: []model.ReadingSubQuestion{
				{
					Question:      "When did Sara go to the market?",
					Choices:       []string{"Morning", "Noon", "Evening", "Night"},
					CorrectAnswer: "Morning",
				},
			},
		},
	}

	pendingID := s.id()
	s.resets[pendingID] = &model.PasswordResetRequest{
		ID:        pendingID,
		Email:     "forgetful@alc.example",
		ResetLink: "https://console.alc.example/users/reset-password-confirm/42/" + ResetToken + "/",
		CreatedAt: time.Now().Add(-2 * time.Hour),
	}
	handledID := s.id()
	s.resets[handledID] = &model.PasswordResetRequest{
		ID:        handledID,
		Email:     "handled@alc.example",
		ResetLink: "https://console.alc.example/users/reset-password-confirm/7/" + ResetToken + "/",
		CreatedAt: time.Now().Add(-26 * time.Hour),
		IsHandled: true,
	}
}

func (s *State) addAccount(email, password, name string, staff bool) {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	s.accounts[email] = &account{
		user: model.User{ID: s.id(), Email: email, Name: name, IsStaff: staff},
		hash: hash,
	}
}
