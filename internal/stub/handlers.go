package stub

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/alclearn/admin-console/internal/model"
	"github.com/alclearn/admin-console/internal/validator"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (s *State) handleLogin(c *gin.Context) {
	var req loginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid login payload.", "fields": fields})
		return
	}

	s.mu.Lock()
	acct, ok := s.accounts[req.Email]
	s.mu.Unlock()
	if !ok || bcrypt.CompareHashAndPassword(acct.hash, []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password."})
		return
	}

	tokens, err := s.mintTokens(acct.user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not issue tokens."})
		return
	}
	c.JSON(http.StatusOK, model.LoginResponse{User: acct.user, Tokens: tokens})
}

// ─── Books ──────────────────────────────────────────────────────────────────

type bookRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	PriceSAR    float64 `json:"price_sar" binding:"gte=0"`
}

func (s *State) handleListBooks(c *gin.Context) {
	s.mu.Lock()
	books := make([]model.Book, 0, len(s.books))
	for _, b := range s.books {
		books = append(books, *b)
	}
	s.mu.Unlock()
	sort.Slice(books, func(i, j int) bool { return books[i].ID < books[j].ID })
	c.JSON(http.StatusOK, books)
}

func (s *State) handleCreateBook(c *gin.Context) {
	var req bookRequest
	if fields := validator.Bind(c, &req); fields != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid book payload.", "fields": fields})
		return
	}

	s.mu.Lock()
	book := &model.Book{
		ID:          s.id(),
		Title:       req.Title,
		Description: req.Description,
		PriceSAR:    req.PriceSAR,
	}
	s.books[book.ID] = book
	s.mu.Unlock()
	c.JSON(http.StatusCreated, book)
}

func (s *State) handleUpdateBook(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req bookRequest
	if fields := validator.Bind(c, &req); fields != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid book payload.", "fields": fields})
		return
	}

	s.mu.Lock()
	book, found := s.books[id]
	if found {
		book.Title = req.Title
		book.Description = req.Description
		book.PriceSAR = req.PriceSAR
	}
	s.mu.Unlock()

	if !found {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, book)
}

func (s *State) handleDeleteBook(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	s.mu.Lock()
	_, found := s.books[id]
	if found {
		delete(s.books, id)
		for qid, r := range s.mcq {
			if r.bookID == id {
				delete(s.mcq, qid)
			}
		}
		for qid, r := range s.matching {
			if r.bookID == id {
				delete(s.matching, qid)
			}
		}
		for qid, r := range s.trueFalse {
			if r.bookID == id {
				delete(s.trueFalse, qid)
			}
		}
		for qid, r := range s.reading {
			if r.bookID == id {
				delete(s.reading, qid)
			}
		}
	}
	s.mu.Unlock()

	if !found {
		notFound(c)
		return
	}
	c.Status(http.StatusNoContent)
}

// ─── Password reset requests ────────────────────────────────────────────────

func (s *State) handleListResetRequests(c *gin.Context) {
	s.mu.Lock()
	requests := make([]model.PasswordResetRequest, 0, len(s.resets))
	for _, r := range s.resets {
		requests = append(requests, *r)
	}
	s.mu.Unlock()
	sort.Slice(requests, func(i, j int) bool { return requests[i].ID < requests[j].ID })
	c.JSON(http.StatusOK, requests)
}

func (s *State) handlePatchResetRequest(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req struct {
		IsHandled bool `json:"is_handled"`
	}
	if fields := validator.Bind(c, &req); fields != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload.", "fields": fields})
		return
	}

	s.mu.Lock()
	r, found := s.resets[id]
	if found && req.IsHandled {
		r.IsHandled = true
	}
	s.mu.Unlock()

	if !found {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, r)
}

type resetConfirmRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

func (s *State) handleResetConfirm(c *gin.Context) {
	var req resetConfirmRequest
	if fields := validator.Bind(c, &req); fields != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "The password must be at least 8 characters.", "fields": fields})
		return
	}
	if c.Param("token") != ResetToken {
		c.JSON(http.StatusBadRequest, gin.H{"message": "The reset link is invalid or has expired."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated."})
}

// ─── Payments ───────────────────────────────────────────────────────────────

type createPaymentRequest struct {
	Amount        int                 `json:"amount" binding:"required,gt=0"`
	Description   string              `json:"description"`
	CustomerName  string              `json:"customer_name"`
	CustomerEmail string              `json:"customer_email"`
	CustomerPhone string              `json:"customer_phone"`
	Source        model.PaymentSource `json:"source" binding:"required"`
}

func (s *State) handleCreatePayment(c *gin.Context) {
	var req createPaymentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		c.JSON(http.StatusOK, model.PaymentEnvelope{Success: false, Message: "Invalid payment request."})
		return
	}
	if req.Source.Type != "token" || req.Source.Token == "" {
		c.JSON(http.StatusOK, model.PaymentEnvelope{Success: false, Message: "A tokenized card source is required."})
		return
	}

	payment := &model.Payment{
		ID:             uuid.New().String(),
		AmountInRiyals: float64(req.Amount) / 100,
		Status:         "initiated",
		Description:    req.Description,
	}
	s.mu.Lock()
	s.payments[payment.ID] = payment
	s.mu.Unlock()

	c.JSON(http.StatusOK, model.PaymentEnvelope{Success: true, Payment: payment})
}

func (s *State) handlePaymentStatus(c *gin.Context) {
	s.mu.Lock()
	payment, found := s.payments[c.Param("id")]
	s.mu.Unlock()
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"message": "Payment not found."})
		return
	}
	c.JSON(http.StatusOK, model.PaymentEnvelope{Success: true, Payment: payment})
}

// ─── Helpers ────────────────────────────────────────────────────────────────

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		notFound(c)
		return 0, false
	}
	return id, true
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"message": "Not found."})
}
