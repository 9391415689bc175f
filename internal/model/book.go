package model

// Book is a catalog entry as returned by /questions/books/.
type Book struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	PriceSAR    float64 `json:"price_sar"`
}

// BookPayload is the create/update wire shape for a book.
type BookPayload struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	PriceSAR    float64 `json:"price_sar"`
}
