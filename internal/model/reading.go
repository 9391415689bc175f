package model

// ReadingSubQuestion is one question attached to a reading passage.
// CorrectAnswer must equal one of Choices verbatim.
type ReadingSubQuestion struct {
	Question      string   `json:"question"`
	Choices       []string `json:"choices"`
	CorrectAnswer string   `json:"correct_answer"`
}

// ReadingPassage is a reading-comprehension passage with its sub-questions.
type ReadingPassage struct {
	ID         int64                `json:"id"`
	Title      string               `json:"title"`
	Content    string               `json:"content"`
	Difficulty Difficulty           `json:"difficulty"`
	Questions  []ReadingSubQuestion `json:"questions_data"`
}

// ReadingPayload is the create/update wire shape for a reading passage.
type ReadingPayload struct {
	Book       int64                `json:"book"`
	BookTitle  string               `json:"book_title"`
	Title      string               `json:"title"`
	Difficulty Difficulty           `json:"difficulty"`
	Content    string               `json:"content"`
	Questions  []ReadingSubQuestion `json:"questions_data"`
}
