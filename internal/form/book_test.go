package form

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alclearn/admin-console/internal/model"
)

func TestBookValidate(t *testing.T) {
	tests := []struct {
		name    string
		draft   BookDraft
		message string
	}{
		{name: "valid", draft: BookDraft{Title: "Book", PriceSAR: "49.5"}},
		{name: "empty price is free", draft: BookDraft{Title: "Book"}},
		{name: "missing title", draft: BookDraft{PriceSAR: "10"}, message: "The book title is required."},
		{name: "negative price", draft: BookDraft{Title: "Book", PriceSAR: "-1"}, message: "The price must be a non-negative number."},
		{name: "non-numeric price", draft: BookDraft{Title: "Book", PriceSAR: "ten"}, message: "The price must be a non-negative number."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.draft.Validate()
			if tt.message == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.message)
		})
	}
}

func TestBookToWireEmptyPriceMeansFree(t *testing.T) {
	wire := BookDraft{Title: " Book ", Description: " desc "}.ToWire()
	assert.Equal(t, "Book", wire.Title)
	assert.Equal(t, "desc", wire.Description)
	assert.Zero(t, wire.PriceSAR)
}

func TestBookToFormFormatsPrice(t *testing.T) {
	d := BookToForm(model.Book{Title: "B", PriceSAR: 49.5})
	assert.Equal(t, "49.5", d.PriceSAR)

	free := BookToForm(model.Book{Title: "B"})
	assert.Empty(t, free.PriceSAR)
}

func TestResetPasswordValidate(t *testing.T) {
	d := ResetPasswordDraft{Password: "short", Confirm: "short"}
	assert.EqualError(t, d.Validate(), "The password must be at least 8 characters.")

	d = ResetPasswordDraft{Password: "longenough", Confirm: "different"}
	assert.EqualError(t, d.Validate(), "The passwords do not match.")

	d = ResetPasswordDraft{Password: "longenough", Confirm: "longenough"}
	assert.NoError(t, d.Validate())
}
