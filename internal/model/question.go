package model

// Difficulty grades a question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Choice is one option of a multiple-choice question.
type Choice struct {
	ID        int64  `json:"id,omitempty"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

// MCQItem is a multiple-choice question. Exactly one choice is correct.
type MCQItem struct {
	ID         int64      `json:"id"`
	Text       string     `json:"text"`
	Difficulty Difficulty `json:"difficulty"`
	Choices    []Choice   `json:"mcq_choices"`
	// CorrectAnswer is computed server-side for display. Never sent back.
	CorrectAnswer string `json:"correct_answer,omitempty"`
}

// MCQPayload is the create/update wire shape for an MCQ.
type MCQPayload struct {
	Book       int64      `json:"book"`
	Difficulty Difficulty `json:"difficulty"`
	Text       string     `json:"text"`
	Choices    []Choice   `json:"mcq_choices"`
}

// TrueFalseItem is a true/false question. The API returns is_true as a
// boolean but expects the literal strings "True"/"False" on writes.
type TrueFalseItem struct {
	ID         int64      `json:"id"`
	Text       string     `json:"text"`
	Difficulty Difficulty `json:"difficulty"`
	IsTrue     bool       `json:"is_true"`
}

// TrueFalsePayload is the create/update wire shape for a true/false question.
type TrueFalsePayload struct {
	Book       int64      `json:"book"`
	Difficulty Difficulty `json:"difficulty"`
	Text       string     `json:"text"`
	IsTrue     string     `json:"is_true"`
}

// QuestionBuckets partitions a book's questions by kind. An item belongs to
// exactly one bucket, determined by the endpoint that created it.
type QuestionBuckets struct {
	MCQ       []MCQItem       `json:"mcq"`
	Matching  []MatchingItem  `json:"matching"`
	TrueFalse []TrueFalseItem `json:"truefalse"`
}

// QuestionBundle is the full response of GET /questions/books/:id/questions/.
type QuestionBundle struct {
	Book            *Book            `json:"book"`
	Questions       QuestionBuckets  `json:"questions"`
	ReadingPassages []ReadingPassage `json:"reading_passages"`
}

// Total counts every question across the four kind-buckets.
func (b *QuestionBundle) Total() int {
	return len(b.Questions.MCQ) +
		len(b.Questions.Matching) +
		len(b.Questions.TrueFalse) +
		len(b.ReadingPassages)
}
