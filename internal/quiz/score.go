package quiz

import "math"

// Result is the outcome of a submitted session. Total is the number of
// questions the attempt actually ran against, which is what the percentage is
// computed from; the quiz record's declared count plays no part in scoring.
type Result struct {
	QuizID           uint
	Correct          int
	Wrong            int
	Total            int
	Percent          int
	TimeTakenSeconds int
	Answers          map[uint]string
}

// score counts answers matching each question's correct label. Unanswered
// questions count as wrong.
func score(questions []Question, answers map[uint]string) Result {
	correct := 0
	for _, q := range questions {
		if answers[q.ID] == q.CorrectAnswer {
			correct++
		}
	}
	total := len(questions)

	snapshot := make(map[uint]string, len(answers))
	for id, label := range answers {
		snapshot[id] = label
	}

	return Result{
		Correct: correct,
		Wrong:   total - correct,
		Total:   total,
		Percent: int(math.Round(float64(correct) / float64(total) * 100)),
		Answers: snapshot,
	}
}
