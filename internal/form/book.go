package form

import (
	"strconv"
	"strings"

	"github.com/alclearn/admin-console/internal/model"
)

// BookDraft is the editable shape of a book. Price is kept as entered text
// until serialization; an empty price means free (0).
type BookDraft struct {
	Title       string
	Description string
	PriceSAR    string
}

// BookToForm converts an API book into its editable draft.
func BookToForm(b model.Book) BookDraft {
	price := ""
	if b.PriceSAR != 0 {
		price = strconv.FormatFloat(b.PriceSAR, 'f', -1, 64)
	}
	return BookDraft{
		Title:       b.Title,
		Description: b.Description,
		PriceSAR:    price,
	}
}

// Validate blocks submission with a user-facing message.
func (d *BookDraft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return ValidationError("The book title is required.")
	}
	if p := strings.TrimSpace(d.PriceSAR); p != "" {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil || v < 0 {
			return ValidationError("The price must be a non-negative number.")
		}
	}
	return nil
}

// ToWire serializes the draft.
func (d BookDraft) ToWire() model.BookPayload {
	price := 0.0
	if p := strings.TrimSpace(d.PriceSAR); p != "" {
		if v, err := strconv.ParseFloat(p, 64); err == nil {
			price = v
		}
	}
	return model.BookPayload{
		Title:       strings.TrimSpace(d.Title),
		Description: strings.TrimSpace(d.Description),
		PriceSAR:    price,
	}
}
