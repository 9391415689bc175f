package stub

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/alclearn/admin-console/internal/model"
	"github.com/alclearn/admin-console/internal/validator"
)

// handleQuestionBundle serves one book's full question set. Matching items
// flagged legacyParallel are rendered in the old two-column array shape so
// clients keep exercising both decoders.
func (s *State) handleQuestionBundle(c *gin.Context) {
	bookID, ok := pathID(c, "id")
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	book, found := s.books[bookID]
	if !found {
		notFound(c)
		return
	}

	mcq := make([]model.MCQItem, 0)
	for _, r := range s.mcq {
		if r.bookID == bookID {
			mcq = append(mcq, r.item)
		}
	}
	sort.Slice(mcq, func(i, j int) bool { return mcq[i].ID < mcq[j].ID })

	matching := make([]gin.H, 0)
	matchIDs := make([]int64, 0)
	for id, r := range s.matching {
		if r.bookID == bookID {
			matchIDs = append(matchIDs, id)
		}
	}
	sort.Slice(matchIDs, func(i, j int) bool { return matchIDs[i] < matchIDs[j] })
	for _, id := range matchIDs {
		r := s.matching[id]
		matching = append(matching, gin.H{
			"id":             r.item.ID,
			"text":           r.item.Text,
			"difficulty":     r.item.Difficulty,
			"matching_pairs": wirePairs(r),
		})
	}

	trueFalse := make([]model.TrueFalseItem, 0)
	for _, r := range s.trueFalse {
		if r.bookID == bookID {
			trueFalse = append(trueFalse, r.item)
		}
	}
	sort.Slice(trueFalse, func(i, j int) bool { return trueFalse[i].ID < trueFalse[j].ID })

	passages := make([]model.ReadingPassage, 0)
	for _, r := range s.reading {
		if r.bookID == bookID {
			passages = append(passages, r.item)
		}
	}
	sort.Slice(passages, func(i, j int) bool { return passages[i].ID < passages[j].ID })

	c.JSON(http.StatusOK, gin.H{
		"book": book,
		"questions": gin.H{
			"mcq":       mcq,
			"matching":  matching,
			"truefalse": trueFalse,
		},
		"reading_passages": passages,
	})
}

// wirePairs renders a record's pairs either flat or as the legacy parallel
// columns.
func wirePairs(r *matchingRecord) interface{} {
	if !r.legacyParallel {
		return r.item.Pairs
	}
	left := make([]string, 0, len(r.item.Pairs))
	right := make([]string, 0, len(r.item.Pairs))
	for _, p := range r.item.Pairs {
		left = append(left, p.LeftItem)
		right = append(right, p.RightItem)
	}
	return []gin.H{{"left_item": left}, {"right_item": right}}
}

// ─── MCQ ────────────────────────────────────────────────────────────────────

type mcqRequest struct {
	Book       int64            `json:"book" binding:"required"`
	Difficulty model.Difficulty `json:"difficulty" binding:"required,oneof=easy medium hard"`
	Text       string           `json:"text" binding:"required"`
	Choices    []model.Choice   `json:"mcq_choices" binding:"required,min=2"`
}

func (s *State) handleCreateMCQ(c *gin.Context) {
	var req mcqRequest
	if fields := validator.Bind(c, &req); fields != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid question payload.", "fields": fields})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, found := s.books[req.Book]; !found {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown book."})
		return
	}
	id := s.id()
	s.mcq[id] = &mcqRecord{bookID: req.Book, item: s.buildMCQ(id, req)}
	c.JSON(http.StatusCreated, s.mcq[id].item)
}

func (s *State) handleUpdateMCQ(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req mcqRequest
	if fields := validator.Bind(c, &req); fields != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid question payload.", "fields": fields})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	r, found := s.mcq[id]
	if !found {
		notFound(c)
		return
	}
	r.bookID = req.Book
	r.item = s.buildMCQ(id, req)
	c.JSON(http.StatusOK, r.item)
}

// buildMCQ assigns IDs to new choices and derives correct_answer. Callers
// hold the lock.
func (s *State) buildMCQ(id int64, req mcqRequest) model.MCQItem {
	item := model.MCQItem{
		ID:         id,
		Text:       req.Text,
		Difficulty: req.Difficulty,
		Choices:    req.Choices,
	}
	for i := range item.Choices {
		if item.Choices[i].ID == 0 {
			item.Choices[i].ID = s.id()
		}
		if item.Choices[i].IsCorrect {
			item.CorrectAnswer = item.Choices[i].Text
		}
	}
	return item
}

func (s *State) handleDeleteMCQ(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	s.mu.Lock()
	_, found := s.mcq[id]
	delete(s.mcq, id)
	s.mu.Unlock()
	if !found {
		notFound(c)
		return
	}
	c.Status(http.StatusNoContent)
}

// ─── Matching ───────────────────────────────────────────────────────────────

type matchingRequest struct {
	Book       int64                `json:"book" binding:"required"`
	Difficulty model.Difficulty     `json:"difficulty" binding:"required,oneof=easy medium hard"`
	Text       string               `json:"text" binding:"required"`
	Pairs      []model.MatchingPair `json:"input_matching_pairs" binding:"required,min=2"`
	PairsCount int                  `json:"pairs_count" binding:"required"`
}

func (s *State) handleCreateMatching(c *gin.Context) {
	var req matchingRequest
	if fields := validator.Bind(c, &req); fields != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid question payload.", "fields": fields})
		return
	}
	if req.PairsCount != len(req.Pairs) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "pairs_count does not match input_matching_pairs."})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, found := s.books[req.Book]; !found {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown book."})
		return
	}
	id := s.id()
	s.matching[id] = &matchingRecord{bookID: req.Book, item: s.buildMatching(id, req)}
	c.JSON(http.StatusCreated, s.matching[id].item)
}

func (s *State) handleUpdateMatching(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req matchingRequest
	if fields := validator.Bind(c, &req); fields != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid question payload.", "fields": fields})
		return
	}
	if req.PairsCount != len(req.Pairs) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "pairs_count does not match input_matching_pairs."})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	r, found := s.matching[id]
	if !found {
		notFound(c)
		return
	}
	r.bookID = req.Book
	r.item = s.buildMatching(id, req)
	// An update rewrites the pairs in the current shape.
	r.legacyParallel = false
	c.JSON(http.StatusOK, r.item)
}

// buildMatching assigns IDs to new pairs. Callers hold the lock.
func (s *State) buildMatching(id int64, req matchingRequest) model.MatchingItem {
	item := model.MatchingItem{
		ID:         id,
		Text:       req.Text,
		Difficulty: req.Difficulty,
		Pairs:      model.PairList(req.Pairs),
	}
	for i := range item.Pairs {
		if item.Pairs[i].ID == 0 {
			item.Pairs[i].ID = s.id()
		}
		if item.Pairs[i].MatchKey == "" {
			item.Pairs[i].MatchKey = model.MatchKeyForIndex(i)
		}
	}
	return item
}

func (s *State) handleDeleteMatching(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	s.mu.Lock()
	_, found := s.matching[id]
	delete(s.matching, id)
	s.mu.Unlock()
	if !found {
		notFound(c)
		return
	}
	c.Status(http.StatusNoContent)
}

// ─── True/false ─────────────────────────────────────────────────────────────

// trueFalseRequest takes is_true as the literal strings the production API
// expects, not a boolean.
type trueFalseRequest struct {
	Book       int64            `json:"book" binding:"required"`
	Difficulty model.Difficulty `json:"difficulty" binding:"required,oneof=easy medium hard"`
	Text       string           `json:"text" binding:"required"`
	IsTrue     string           `json:"is_true" binding:"required,oneof=True False"`
}

func (s *State) handleCreateTrueFalse(c *gin.Context) {
	var req trueFalseRequest
	if fields := validator.Bind(c, &req); fields != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid question payload.", "fields": fields})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, found := s.books[req.Book]; !found {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown book."})
		return
	}
	id := s.id()
	s.trueFalse[id] = &trueFalseRecord{
		bookID: req.Book,
		item: model.TrueFalseItem{
			ID:         id,
			Text:       req.Text,
			Difficulty: req.Difficulty,
			IsTrue:     req.IsTrue == "True",
		},
	}
	c.JSON(http.StatusCreated, s.trueFalse[id].item)
}

func (s *State) handleUpdateTrueFalse(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req trueFalseRequest
	if fields := validator.Bind(c, &req); fields != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid question payload.", "fields": fields})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	r, found := s.trueFalse[id]
	if !found {
		notFound(c)
		return
	}
	r.bookID = req.Book
	r.item = model.TrueFalseItem{
		ID:         id,
		Text:       req.Text,
		Difficulty: req.Difficulty,
		IsTrue:     req.IsTrue == "True",
	}
	c.JSON(http.StatusOK, r.item)
}

func (s *State) handleDeleteTrueFalse(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	s.mu.Lock()
	_, found := s.trueFalse[id]
	delete(s.trueFalse, id)
	s.mu.Unlock()
	if !found {
		notFound(c)
		return
	}
	c.Status(http.StatusNoContent)
}

// ─── Reading comprehension ──────────────────────────────────────────────────

type readingRequest struct {
	Book       int64                      `json:"book" binding:"required"`
	BookTitle  string                     `json:"book_title"`
	Title      string                     `json:"title" binding:"required"`
	Difficulty model.Difficulty           `json:"difficulty" binding:"required,oneof=easy medium hard"`
	Content    string                     `json:"content" binding:"required"`
	Questions  []model.ReadingSubQuestion `json:"questions_data" binding:"required,min=1"`
}

func (s *State) handleCreateReading(c *gin.Context) {
	var req readingRequest
	if fields := validator.Bind(c, &req); fields != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid passage payload.", "fields": fields})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, found := s.books[req.Book]; !found {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown book."})
		return
	}
	id := s.id()
	s.reading[id] = &readingRecord{bookID: req.Book, item: buildReading(id, req)}
	c.JSON(http.StatusCreated, s.reading[id].item)
}

func (s *State) handleUpdateReading(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req readingRequest
	if fields := validator.Bind(c, &req); fields != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid passage payload.", "fields": fields})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	r, found := s.reading[id]
	if !found {
		notFound(c)
		return
	}
	r.bookID = req.Book
	r.item = buildReading(id, req)
	c.JSON(http.StatusOK, r.item)
}

func buildReading(id int64, req readingRequest) model.ReadingPassage {
	return model.ReadingPassage{
		ID:         id,
		Title:      req.Title,
		Content:    req.Content,
		Difficulty: req.Difficulty,
		Questions:  req.Questions,
	}
}

func (s *State) handleDeleteReading(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	s.mu.Lock()
	_, found := s.reading[id]
	delete(s.reading, id)
	s.mu.Unlock()
	if !found {
		notFound(c)
		return
	}
	c.Status(http.StatusNoContent)
}
