package quiz

// Quiz is the engine's view of a quiz definition. The declared TotalQuestions
// comes from the quiz record and may disagree with the number of questions
// actually fetched; scoring always uses the fetched count.
type Quiz struct {
	ID              uint
	CourseID        uint
	Title           string
	DurationMinutes int
	TotalQuestions  int
}

// Question is a single multiple-choice question with options labeled A-D.
type Question struct {
	ID            uint
	QuizID        uint
	Text          string
	OptionA       string
	OptionB       string
	OptionC       string
	OptionD       string
	CorrectAnswer string
}

// ValidLabel reports whether label is one of the four option labels.
func ValidLabel(label string) bool {
	switch label {
	case "A", "B", "C", "D":
		return true
	}
	return false
}
