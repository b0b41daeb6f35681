package service

import (
	"errors"
	"math"
	"testing"

	"github.com/ndmanh/learnhub/internal/model"
)

func newProgressFixture() (ProgressService, *fakeQuizRepo, *fakeAttemptRepo, *fakeProgressRepo) {
	enrollments := newFakeEnrollmentRepo(&model.Enrollment{ID: 1, UserID: 10, CourseID: 100})
	lessons := newFakeLessonRepo(&model.Lesson{ID: 5, ModuleID: 1, Title: "Pointers"})
	quizzes := newFakeQuizRepo()
	attempts := newFakeAttemptRepo()
	progress := newFakeProgressRepo()
	svc := NewProgressService(enrollments, lessons, quizzes, attempts, progress)
	return svc, quizzes, attempts, progress
}

func TestUpdateProgressEnrollmentNotFound(t *testing.T) {
	svc, _, _, _ := newProgressFixture()
	if _, err := svc.UpdateProgress(999, 5, model.ProgressInProgress); !errors.Is(err, ErrEnrollmentNotFound) {
		t.Fatalf("expected ErrEnrollmentNotFound, got %v", err)
	}
}

func TestUpdateProgressLessonNotFound(t *testing.T) {
	svc, _, _, _ := newProgressFixture()
	if _, err := svc.UpdateProgress(1, 999, model.ProgressInProgress); !errors.Is(err, ErrLessonNotFound) {
		t.Fatalf("expected ErrLessonNotFound, got %v", err)
	}
}

func TestUpdateProgressCompletionBlockedByUnpassedQuiz(t *testing.T) {
	svc, quizzes, attempts, progress := newProgressFixture()
	quizzes.Create(&model.Quiz{ID: 20, LessonID: 5, Title: "Quiz A"})
	quizzes.Create(&model.Quiz{ID: 21, LessonID: 5, Title: "Quiz B"})
	attempts.Create(&model.QuizAttempt{UserID: 10, QuizID: 20, Score: 90, Passed: true})
	attempts.Create(&model.QuizAttempt{UserID: 10, QuizID: 21, Score: 40, Passed: false})

	_, err := svc.UpdateProgress(1, 5, model.ProgressCompleted)
	var reqErr *QuizRequirementError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected *QuizRequirementError, got %v", err)
	}
	if reqErr.QuizTitle != "Quiz B" {
		t.Fatalf("expected failing quiz %q, got %q", "Quiz B", reqErr.QuizTitle)
	}
	if len(progress.rows) != 0 {
		t.Fatalf("expected no progress row after blocked completion, got %d", len(progress.rows))
	}
}

func TestUpdateProgressCompletionBlockedWithoutAttempt(t *testing.T) {
	svc, quizzes, _, _ := newProgressFixture()
	quizzes.Create(&model.Quiz{ID: 20, LessonID: 5, Title: "Quiz A"})

	_, err := svc.UpdateProgress(1, 5, model.ProgressCompleted)
	var reqErr *QuizRequirementError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected *QuizRequirementError, got %v", err)
	}
}

func TestUpdateProgressLatestAttemptGoverns(t *testing.T) {
	svc, quizzes, attempts, _ := newProgressFixture()
	quizzes.Create(&model.Quiz{ID: 20, LessonID: 5, Title: "Quiz A"})
	attempts.Create(&model.QuizAttempt{UserID: 10, QuizID: 20, Score: 95, Passed: true})
	attempts.Create(&model.QuizAttempt{UserID: 10, QuizID: 20, Score: 30, Passed: false})

	_, err := svc.UpdateProgress(1, 5, model.ProgressCompleted)
	var reqErr *QuizRequirementError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected latest failing attempt to block completion, got %v", err)
	}
}

func TestUpdateProgressCompletionWithoutQuizzes(t *testing.T) {
	svc, _, _, _ := newProgressFixture()
	res, err := svc.UpdateProgress(1, 5, model.ProgressCompleted)
	if err != nil {
		t.Fatalf("expected vacuous completion for quizless lesson, got %v", err)
	}
	if res.Status != model.ProgressCompleted {
		t.Fatalf("expected status %s, got %s", model.ProgressCompleted, res.Status)
	}
	if res.LessonTitle != "Pointers" {
		t.Fatalf("expected lesson title in response, got %q", res.LessonTitle)
	}
}

func TestUpdateProgressInProgressBypassesQuizCheck(t *testing.T) {
	svc, quizzes, _, _ := newProgressFixture()
	quizzes.Create(&model.Quiz{ID: 20, LessonID: 5, Title: "Quiz A"})

	res, err := svc.UpdateProgress(1, 5, model.ProgressInProgress)
	if err != nil {
		t.Fatalf("expected IN_PROGRESS to skip quiz gate, got %v", err)
	}
	if res.Status != model.ProgressInProgress {
		t.Fatalf("expected status %s, got %s", model.ProgressInProgress, res.Status)
	}
}

func TestUpdateProgressUpsertIsIdempotent(t *testing.T) {
	svc, _, _, progress := newProgressFixture()
	if _, err := svc.UpdateProgress(1, 5, model.ProgressInProgress); err != nil {
		t.Fatalf("first update failed: %v", err)
	}
	res, err := svc.UpdateProgress(1, 5, model.ProgressCompleted)
	if err != nil {
		t.Fatalf("second update failed: %v", err)
	}
	if len(progress.rows) != 1 {
		t.Fatalf("expected a single progress row after two updates, got %d", len(progress.rows))
	}
	if res.Status != model.ProgressCompleted {
		t.Fatalf("expected final status %s, got %s", model.ProgressCompleted, res.Status)
	}
}

func TestGetCompletionRateEmpty(t *testing.T) {
	svc, _, _, _ := newProgressFixture()
	res, err := svc.GetCompletionRate(1)
	if err != nil {
		t.Fatalf("GetCompletionRate failed: %v", err)
	}
	if res.Total != 0 || res.Completed != 0 || res.CompletionRate != 0 {
		t.Fatalf("expected all-zero result for empty enrollment, got %+v", res)
	}
}

func TestGetCompletionRateRounds(t *testing.T) {
	svc, _, _, progress := newProgressFixture()
	progress.Save(&model.CourseProgress{EnrollmentID: 1, LessonID: 1, Status: model.ProgressCompleted})
	progress.Save(&model.CourseProgress{EnrollmentID: 1, LessonID: 2, Status: model.ProgressInProgress})
	progress.Save(&model.CourseProgress{EnrollmentID: 1, LessonID: 3, Status: model.ProgressNotStarted})

	res, err := svc.GetCompletionRate(1)
	if err != nil {
		t.Fatalf("GetCompletionRate failed: %v", err)
	}
	if res.Completed != 1 || res.Total != 3 {
		t.Fatalf("expected 1/3 completed, got %d/%d", res.Completed, res.Total)
	}
	if res.CompletionRate != 33 {
		t.Fatalf("expected rate rounded to 33, got %d", res.CompletionRate)
	}
}

func TestGetAnalytics(t *testing.T) {
	svc, _, _, progress := newProgressFixture()
	progress.Save(&model.CourseProgress{EnrollmentID: 1, LessonID: 1, Status: model.ProgressCompleted})
	progress.Save(&model.CourseProgress{EnrollmentID: 1, LessonID: 2, Status: model.ProgressCompleted})
	progress.Save(&model.CourseProgress{EnrollmentID: 2, LessonID: 1, Status: model.ProgressInProgress})

	res, err := svc.GetAnalytics()
	if err != nil {
		t.Fatalf("GetAnalytics failed: %v", err)
	}
	if res.TotalProgress != 3 || res.Completed != 2 {
		t.Fatalf("expected 2/3 completed globally, got %d/%d", res.Completed, res.TotalProgress)
	}
	if math.Abs(res.OverallCompletionRate-200.0/3.0) > 1e-9 {
		t.Fatalf("expected unrounded rate %.6f, got %.6f", 200.0/3.0, res.OverallCompletionRate)
	}
}

func TestGetAnalyticsEmpty(t *testing.T) {
	svc, _, _, _ := newProgressFixture()
	res, err := svc.GetAnalytics()
	if err != nil {
		t.Fatalf("GetAnalytics failed: %v", err)
	}
	if res.TotalProgress != 0 || res.Completed != 0 || res.OverallCompletionRate != 0 {
		t.Fatalf("expected zero analytics, got %+v", res)
	}
}

func TestGetCourseProgressUnknownEnrollment(t *testing.T) {
	svc, _, _, _ := newProgressFixture()
	if _, err := svc.GetCourseProgress(999); !errors.Is(err, ErrEnrollmentNotFound) {
		t.Fatalf("expected ErrEnrollmentNotFound, got %v", err)
	}
}
