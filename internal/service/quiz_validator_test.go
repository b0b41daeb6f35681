package service

import (
	"errors"
	"testing"

	"github.com/ndmanh/learnhub/internal/dto"
	"github.com/ndmanh/learnhub/internal/model"
)

func answers(pairs ...dto.AnswerCreateDTO) []dto.AnswerCreateDTO {
	return pairs
}

func a(text string, correct bool) dto.AnswerCreateDTO {
	return dto.AnswerCreateDTO{Text: text, Correct: correct}
}

func assertStructural(t *testing.T, err error, code StructuralCode, question int) {
	t.Helper()
	var sErr *StructuralError
	if !errors.As(err, &sErr) {
		t.Fatalf("expected *StructuralError, got %v", err)
	}
	if sErr.Code != code {
		t.Fatalf("expected code %s, got %s", code, sErr.Code)
	}
	if sErr.Question != question {
		t.Fatalf("expected question position %d, got %d", question, sErr.Question)
	}
}

func TestValidateQuizEmptyQuiz(t *testing.T) {
	err := ValidateQuiz(dto.QuizCreateDTO{Title: "Empty"})
	assertStructural(t, err, CodeEmptyQuiz, 0)
}

func TestValidateQuizEmptyAnswers(t *testing.T) {
	req := dto.QuizCreateDTO{
		Title: "No answers",
		Questions: []dto.QuestionCreateDTO{
			{Text: "Q1", Type: model.QuestionTypeUnique},
		},
	}
	assertStructural(t, ValidateQuiz(req), CodeEmptyAnswers, 1)
}

func TestValidateQuizUnique(t *testing.T) {
	valid := dto.QuizCreateDTO{
		Title: "Unique",
		Questions: []dto.QuestionCreateDTO{
			{Text: "Pick one", Type: model.QuestionTypeUnique, Answers: answers(a("A", true), a("B", false), a("C", false))},
		},
	}
	if err := ValidateQuiz(valid); err != nil {
		t.Fatalf("expected valid UNIQUE question, got %v", err)
	}

	noCorrect := valid
	noCorrect.Questions = []dto.QuestionCreateDTO{
		{Text: "Pick one", Type: model.QuestionTypeUnique, Answers: answers(a("A", false), a("B", false))},
	}
	assertStructural(t, ValidateQuiz(noCorrect), CodeInvalidUniqueQuestion, 1)

	twoCorrect := valid
	twoCorrect.Questions = []dto.QuestionCreateDTO{
		{Text: "Pick one", Type: model.QuestionTypeUnique, Answers: answers(a("A", true), a("B", true))},
	}
	assertStructural(t, ValidateQuiz(twoCorrect), CodeInvalidUniqueQuestion, 1)

	oneAnswer := valid
	oneAnswer.Questions = []dto.QuestionCreateDTO{
		{Text: "Pick one", Type: model.QuestionTypeUnique, Answers: answers(a("A", true))},
	}
	assertStructural(t, ValidateQuiz(oneAnswer), CodeInvalidUniqueQuestion, 1)
}

func TestValidateQuizMultiple(t *testing.T) {
	valid := dto.QuizCreateDTO{
		Title: "Multiple",
		Questions: []dto.QuestionCreateDTO{
			{Text: "Pick all", Type: model.QuestionTypeMultiple, Answers: answers(a("A", true), a("B", true), a("C", false))},
		},
	}
	if err := ValidateQuiz(valid); err != nil {
		t.Fatalf("expected valid MULTIPLE question, got %v", err)
	}

	noCorrect := valid
	noCorrect.Questions = []dto.QuestionCreateDTO{
		{Text: "Pick all", Type: model.QuestionTypeMultiple, Answers: answers(a("A", false), a("B", false))},
	}
	assertStructural(t, ValidateQuiz(noCorrect), CodeInvalidMultipleQuestion, 1)
}

func TestValidateQuizText(t *testing.T) {
	valid := dto.QuizCreateDTO{
		Title: "Text",
		Questions: []dto.QuestionCreateDTO{
			{Text: "Capital of France?", Type: model.QuestionTypeText, Answers: answers(a("Paris", true))},
		},
	}
	if err := ValidateQuiz(valid); err != nil {
		t.Fatalf("expected valid TEXT question, got %v", err)
	}

	incorrectRef := valid
	incorrectRef.Questions = []dto.QuestionCreateDTO{
		{Text: "Capital of France?", Type: model.QuestionTypeText, Answers: answers(a("Paris", false))},
	}
	assertStructural(t, ValidateQuiz(incorrectRef), CodeInvalidTextQuestion, 1)

	twoAnswers := valid
	twoAnswers.Questions = []dto.QuestionCreateDTO{
		{Text: "Capital of France?", Type: model.QuestionTypeText, Answers: answers(a("Paris", true), a("paris", true))},
	}
	assertStructural(t, ValidateQuiz(twoAnswers), CodeInvalidTextQuestion, 1)
}

func TestValidateQuizBool(t *testing.T) {
	cases := []struct {
		name    string
		answers []dto.AnswerCreateDTO
		wantErr bool
	}{
		{"true/false mixed case", answers(a("True", true), a("False", false)), false},
		{"yes/no", answers(a("yes", false), a("no", true)), false},
		{"non-boolean texts", answers(a("Maybe", true), a("No", false)), true},
		{"both correct", answers(a("true", true), a("false", true)), true},
		{"three answers", answers(a("true", true), a("false", false), a("maybe", false)), true},
	}

	for _, tc := range cases {
		req := dto.QuizCreateDTO{
			Title: "Bool",
			Questions: []dto.QuestionCreateDTO{
				{Text: "Is Go compiled?", Type: model.QuestionTypeBool, Answers: tc.answers},
			},
		}
		err := ValidateQuiz(req)
		if tc.wantErr {
			assertStructural(t, err, CodeInvalidBoolQuestion, 1)
		} else if err != nil {
			t.Fatalf("%s: expected valid BOOL question, got %v", tc.name, err)
		}
	}
}

func TestValidateQuizUnknownType(t *testing.T) {
	req := dto.QuizCreateDTO{
		Title: "Odd",
		Questions: []dto.QuestionCreateDTO{
			{Text: "Q1", Type: "ESSAY", Answers: answers(a("A", true), a("B", false))},
		},
	}
	assertStructural(t, ValidateQuiz(req), CodeUnknownQuestionType, 1)
}

// The first invalid question wins, even when later questions are also broken.
func TestValidateQuizFailFastOrdering(t *testing.T) {
	req := dto.QuizCreateDTO{
		Title: "Ordering",
		Questions: []dto.QuestionCreateDTO{
			{Text: "Q1", Type: model.QuestionTypeUnique, Answers: answers(a("A", true), a("B", false))},
			{Text: "Q2", Type: model.QuestionTypeText, Answers: answers(a("Ref", false))},
			{Text: "Q3", Type: "ESSAY", Answers: answers(a("A", true), a("B", false))},
		},
	}
	assertStructural(t, ValidateQuiz(req), CodeInvalidTextQuestion, 2)
}
