package service

import (
	"strings"

	"github.com/ndmanh/learnhub/internal/dto"
	"github.com/ndmanh/learnhub/internal/model"
)

// ValidateQuiz checks the shape of a quiz creation request before anything is
// persisted. It is a pure function: questions are scanned in order and the
// first violated rule is returned as a *StructuralError carrying the 1-based
// question position. Downstream grading and the progress gate rely on this
// running at write time so they never re-validate shape at read time.
func ValidateQuiz(req dto.QuizCreateDTO) error {
	if len(req.Questions) == 0 {
		return &StructuralError{Code: CodeEmptyQuiz}
	}

	for i, q := range req.Questions {
		pos := i + 1

		if len(q.Answers) == 0 {
			return &StructuralError{Code: CodeEmptyAnswers, Question: pos}
		}

		correct := 0
		for _, a := range q.Answers {
			if a.Correct {
				correct++
			}
		}

		switch q.Type {
		case model.QuestionTypeUnique:
			if len(q.Answers) < 2 || correct != 1 {
				return &StructuralError{Code: CodeInvalidUniqueQuestion, Question: pos}
			}
		case model.QuestionTypeMultiple:
			if len(q.Answers) < 2 || correct < 1 {
				return &StructuralError{Code: CodeInvalidMultipleQuestion, Question: pos}
			}
		case model.QuestionTypeText:
			if len(q.Answers) != 1 || !q.Answers[0].Correct {
				return &StructuralError{Code: CodeInvalidTextQuestion, Question: pos}
			}
		case model.QuestionTypeBool:
			if len(q.Answers) != 2 || correct != 1 || !hasBoolPair(q.Answers) {
				return &StructuralError{Code: CodeInvalidBoolQuestion, Question: pos}
			}
		default:
			return &StructuralError{Code: CodeUnknownQuestionType, Question: pos}
		}
	}
	return nil
}

// hasBoolPair reports whether the lowercased answer texts include both
// "true" and "false", or both "yes" and "no". This is a membership test,
// not strict set equality.
func hasBoolPair(answers []dto.AnswerCreateDTO) bool {
	texts := make(map[string]bool, len(answers))
	for _, a := range answers {
		texts[strings.ToLower(a.Text)] = true
	}
	return (texts["true"] && texts["false"]) || (texts["yes"] && texts["no"])
}
