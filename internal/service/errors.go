package service

import (
	"errors"
	"fmt"
)

// Domain errors returned by the service layer. None of them are transient:
// every one stems from invalid input or an unmet business precondition, so
// callers must correct the request rather than retry.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrModuleNotFound     = errors.New("module not found")
	ErrLessonNotFound     = errors.New("lesson not found")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrQuizNotFound       = errors.New("quiz not found")
	ErrReviewNotFound     = errors.New("review not found")

	ErrEmailTaken         = errors.New("email is already in use")
	ErrCategoryNameTaken  = errors.New("category name is already in use")
	ErrAlreadyEnrolled    = errors.New("user is already enrolled in this course")
	ErrAlreadyReviewed    = errors.New("user has already reviewed this course")
	ErrNotEnrolled        = errors.New("user is not enrolled in this course")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// StructuralCode identifies which quiz shape rule a creation request violated.
type StructuralCode string

const (
	CodeEmptyQuiz               StructuralCode = "EMPTY_QUIZ"
	CodeEmptyAnswers            StructuralCode = "EMPTY_ANSWERS"
	CodeInvalidUniqueQuestion   StructuralCode = "INVALID_UNIQUE_QUESTION"
	CodeInvalidMultipleQuestion StructuralCode = "INVALID_MULTIPLE_QUESTION"
	CodeInvalidTextQuestion     StructuralCode = "INVALID_TEXT_QUESTION"
	CodeInvalidBoolQuestion     StructuralCode = "INVALID_BOOL_QUESTION"
	CodeUnknownQuestionType     StructuralCode = "UNKNOWN_QUESTION_TYPE"
)

// StructuralError rejects a quiz creation request whose questions or answers
// have an invalid shape. Question is the 1-based position of the offending
// question; it is 0 for quiz-level violations.
type StructuralError struct {
	Code     StructuralCode
	Question int
}

func (e *StructuralError) Error() string {
	switch e.Code {
	case CodeEmptyQuiz:
		return "quiz must contain at least one question"
	case CodeEmptyAnswers:
		return fmt.Sprintf("question %d must have at least one answer", e.Question)
	case CodeInvalidUniqueQuestion:
		return fmt.Sprintf("question %d: a UNIQUE question requires at least two answers and exactly one marked correct", e.Question)
	case CodeInvalidMultipleQuestion:
		return fmt.Sprintf("question %d: a MULTIPLE question requires at least two answers and at least one marked correct", e.Question)
	case CodeInvalidTextQuestion:
		return fmt.Sprintf("question %d: a TEXT question requires exactly one answer marked correct", e.Question)
	case CodeInvalidBoolQuestion:
		return fmt.Sprintf("question %d: a BOOL question requires exactly two answers (true/false or yes/no) with exactly one marked correct", e.Question)
	case CodeUnknownQuestionType:
		return fmt.Sprintf("question %d has an unknown question type", e.Question)
	}
	return fmt.Sprintf("question %d is structurally invalid", e.Question)
}

// QuizRequirementError blocks a lesson completion because the named quiz has
// no passing attempt by the enrollment's user.
type QuizRequirementError struct {
	QuizTitle string
}

func (e *QuizRequirementError) Error() string {
	return fmt.Sprintf("quiz %q must be passed before this lesson can be completed", e.QuizTitle)
}
