package trivia

// QuestionsPerPage is the fixed window size for paginated listings.
const QuestionsPerPage = 10

// Category is a named grouping that questions reference by id.
// Categories are seeded reference data; this service never mutates them.
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// Question is a single trivia item.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// QuestionPage is one window of the paginated listing.
//
// TotalQuestions reports the window size, not the collection size,
// matching the wire contract existing clients depend on.
type QuestionPage struct {
	Questions       []Question     `json:"questions"`
	TotalQuestions  int            `json:"totalQuestions"`
	Categories      map[int]string `json:"categories"`
	CurrentCategory string         `json:"currentCategory"`
}

// QuestionSet is the result of a search or category filter: every
// match, unpaginated, with the first match's category label.
// CurrentCategory is the empty string when there are no matches.
type QuestionSet struct {
	Questions       []Question `json:"questions"`
	TotalQuestions  int        `json:"totalQuestions"`
	CurrentCategory string     `json:"currentCategory"`
}

// CreateQuestionParams carries a create request. Pointer fields
// distinguish an absent field from a zero value; all four are required.
type CreateQuestionParams struct {
	Question   *string
	Answer     *string
	Category   *int
	Difficulty *int
}

// DrawParams selects the next quiz question. PreviousIDs must be
// supplied by the caller (empty means no history yet); a nil Category
// means no category restriction.
type DrawParams struct {
	PreviousIDs []int
	Category    *int
}
