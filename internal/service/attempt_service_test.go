package service

import (
	"errors"
	"testing"

	"github.com/ndmanh/learnhub/internal/dto"
	"github.com/ndmanh/learnhub/internal/model"
)

func newAttemptFixture(quiz *model.Quiz) (AttemptService, *fakeAttemptRepo) {
	users := newFakeUserRepo(&model.User{ID: 10, Email: "student@example.com"})
	quizzes := newFakeQuizRepo(quiz)
	attempts := newFakeAttemptRepo()
	return NewAttemptService(quizzes, attempts, users), attempts
}

func gradingQuiz() *model.Quiz {
	return &model.Quiz{
		ID:       20,
		LessonID: 5,
		Title:    "Go basics",
		Questions: []model.Question{
			{
				ID:   1,
				Type: model.QuestionTypeUnique,
				Answers: []model.Answer{
					{ID: 11, Text: "A", Correct: true},
					{ID: 12, Text: "B", Correct: false},
				},
			},
			{
				ID:   2,
				Type: model.QuestionTypeMultiple,
				Answers: []model.Answer{
					{ID: 21, Text: "A", Correct: true},
					{ID: 22, Text: "B", Correct: true},
					{ID: 23, Text: "C", Correct: false},
				},
			},
			{
				ID:   3,
				Type: model.QuestionTypeText,
				Answers: []model.Answer{
					{ID: 31, Text: "Paris", Correct: true},
				},
			},
			{
				ID:   4,
				Type: model.QuestionTypeBool,
				Answers: []model.Answer{
					{ID: 41, Text: "true", Correct: true},
					{ID: 42, Text: "false", Correct: false},
				},
			},
		},
	}
}

func TestSubmitAttemptAllCorrect(t *testing.T) {
	svc, _ := newAttemptFixture(gradingQuiz())
	res, err := svc.SubmitAttempt(20, dto.AttemptSubmitDTO{
		UserID: 10,
		Answers: []dto.QuestionAnswerDTO{
			{QuestionID: 1, AnswerIDs: []uint{11}},
			{QuestionID: 2, AnswerIDs: []uint{22, 21}},
			{QuestionID: 3, Text: "  paris "},
			{QuestionID: 4, AnswerIDs: []uint{41}},
		},
	})
	if err != nil {
		t.Fatalf("SubmitAttempt failed: %v", err)
	}
	if res.Score != 100 {
		t.Fatalf("expected score 100, got %d", res.Score)
	}
	if !res.Passed {
		t.Fatal("expected attempt to pass")
	}
	for _, r := range res.Results {
		if !r.Correct {
			t.Fatalf("expected question %d correct", r.QuestionID)
		}
	}
}

func TestSubmitAttemptPartialCredit(t *testing.T) {
	svc, attempts := newAttemptFixture(gradingQuiz())
	res, err := svc.SubmitAttempt(20, dto.AttemptSubmitDTO{
		UserID: 10,
		Answers: []dto.QuestionAnswerDTO{
			{QuestionID: 1, AnswerIDs: []uint{12}}, // wrong choice
			{QuestionID: 2, AnswerIDs: []uint{21}}, // incomplete set
			{QuestionID: 3, Text: "London"},        // wrong text
			{QuestionID: 4, AnswerIDs: []uint{41}}, // correct
		},
	})
	if err != nil {
		t.Fatalf("SubmitAttempt failed: %v", err)
	}
	if res.Score != 25 {
		t.Fatalf("expected score 25, got %d", res.Score)
	}
	if res.Passed {
		t.Fatal("expected attempt below pass threshold to fail")
	}

	stored, err := attempts.FindLatestByUserAndQuiz(10, 20)
	if err != nil {
		t.Fatalf("expected persisted attempt, got %v", err)
	}
	if stored.Score != 25 || stored.Passed {
		t.Fatalf("persisted attempt diverges from response: %+v", stored)
	}
}

func TestSubmitAttemptUnansweredQuestionsCountWrong(t *testing.T) {
	svc, _ := newAttemptFixture(gradingQuiz())
	res, err := svc.SubmitAttempt(20, dto.AttemptSubmitDTO{
		UserID: 10,
		Answers: []dto.QuestionAnswerDTO{
			{QuestionID: 1, AnswerIDs: []uint{11}},
		},
	})
	if err != nil {
		t.Fatalf("SubmitAttempt failed: %v", err)
	}
	if res.Score != 25 {
		t.Fatalf("expected score 25 with three unanswered questions, got %d", res.Score)
	}
}

func TestSubmitAttemptPassBoundary(t *testing.T) {
	// 3 of 4 correct rounds to 75, just above the pass threshold.
	svc, _ := newAttemptFixture(gradingQuiz())
	res, err := svc.SubmitAttempt(20, dto.AttemptSubmitDTO{
		UserID: 10,
		Answers: []dto.QuestionAnswerDTO{
			{QuestionID: 1, AnswerIDs: []uint{11}},
			{QuestionID: 2, AnswerIDs: []uint{21, 22}},
			{QuestionID: 3, Text: "Paris"},
		},
	})
	if err != nil {
		t.Fatalf("SubmitAttempt failed: %v", err)
	}
	if res.Score != 75 {
		t.Fatalf("expected score 75, got %d", res.Score)
	}
	if !res.Passed {
		t.Fatalf("expected score %d >= %d to pass", res.Score, PassScore)
	}
}

func TestSubmitAttemptMultipleRejectsSuperset(t *testing.T) {
	svc, _ := newAttemptFixture(gradingQuiz())
	res, err := svc.SubmitAttempt(20, dto.AttemptSubmitDTO{
		UserID: 10,
		Answers: []dto.QuestionAnswerDTO{
			{QuestionID: 2, AnswerIDs: []uint{21, 22, 23}},
		},
	})
	if err != nil {
		t.Fatalf("SubmitAttempt failed: %v", err)
	}
	for _, r := range res.Results {
		if r.QuestionID == 2 && r.Correct {
			t.Fatal("expected superset selection to be graded wrong")
		}
	}
}

func TestSubmitAttemptUnknownQuiz(t *testing.T) {
	svc, _ := newAttemptFixture(gradingQuiz())
	if _, err := svc.SubmitAttempt(999, dto.AttemptSubmitDTO{UserID: 10}); !errors.Is(err, ErrQuizNotFound) {
		t.Fatalf("expected ErrQuizNotFound, got %v", err)
	}
}

func TestSubmitAttemptUnknownUser(t *testing.T) {
	svc, _ := newAttemptFixture(gradingQuiz())
	if _, err := svc.SubmitAttempt(20, dto.AttemptSubmitDTO{UserID: 999}); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestGetAttemptsReturnsHistory(t *testing.T) {
	svc, attempts := newAttemptFixture(gradingQuiz())
	attempts.Create(&model.QuizAttempt{UserID: 10, QuizID: 20, Score: 50, Passed: false})
	attempts.Create(&model.QuizAttempt{UserID: 10, QuizID: 20, Score: 100, Passed: true})
	attempts.Create(&model.QuizAttempt{UserID: 11, QuizID: 20, Score: 80, Passed: true})

	history, err := svc.GetAttempts(10, 20)
	if err != nil {
		t.Fatalf("GetAttempts failed: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 attempts for the user, got %d", len(history))
	}
}
