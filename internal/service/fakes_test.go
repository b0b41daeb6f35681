package service

import (
	"sort"

	"github.com/ndmanh/learnhub/internal/model"
	"github.com/ndmanh/learnhub/internal/repository"
	"gorm.io/gorm"
)

// In-memory repository fakes. Missing rows are reported the same way the
// real gorm-backed repositories report them, with gorm.ErrRecordNotFound.

type fakeEnrollmentRepo struct {
	enrollments map[uint]*model.Enrollment
}

func newFakeEnrollmentRepo(enrollments ...*model.Enrollment) *fakeEnrollmentRepo {
	r := &fakeEnrollmentRepo{enrollments: make(map[uint]*model.Enrollment)}
	for _, e := range enrollments {
		r.enrollments[e.ID] = e
	}
	return r
}

func (r *fakeEnrollmentRepo) Create(enrollment *model.Enrollment) error {
	r.enrollments[enrollment.ID] = enrollment
	return nil
}

func (r *fakeEnrollmentRepo) FindByID(id uint, withUser bool) (*model.Enrollment, error) {
	e, ok := r.enrollments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (r *fakeEnrollmentRepo) FindByUserAndCourse(userID, courseID uint) (*model.Enrollment, error) {
	for _, e := range r.enrollments {
		if e.UserID == userID && e.CourseID == courseID {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeEnrollmentRepo) FindByUserID(userID uint) ([]model.Enrollment, error) {
	var out []model.Enrollment
	for _, e := range r.enrollments {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakeEnrollmentRepo) FindByCourseID(courseID uint) ([]model.Enrollment, error) {
	var out []model.Enrollment
	for _, e := range r.enrollments {
		if e.CourseID == courseID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakeEnrollmentRepo) Delete(id uint) error {
	delete(r.enrollments, id)
	return nil
}

type fakeLessonRepo struct {
	lessons map[uint]*model.Lesson
}

func newFakeLessonRepo(lessons ...*model.Lesson) *fakeLessonRepo {
	r := &fakeLessonRepo{lessons: make(map[uint]*model.Lesson)}
	for _, l := range lessons {
		r.lessons[l.ID] = l
	}
	return r
}

func (r *fakeLessonRepo) Create(lesson *model.Lesson) error {
	r.lessons[lesson.ID] = lesson
	return nil
}

func (r *fakeLessonRepo) FindByID(id uint) (*model.Lesson, error) {
	l, ok := r.lessons[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return l, nil
}

func (r *fakeLessonRepo) FindByModuleID(moduleID uint) ([]model.Lesson, error) {
	var out []model.Lesson
	for _, l := range r.lessons {
		if l.ModuleID == moduleID {
			out = append(out, *l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderInModule < out[j].OrderInModule })
	return out, nil
}

func (r *fakeLessonRepo) Update(lesson *model.Lesson) error {
	r.lessons[lesson.ID] = lesson
	return nil
}

func (r *fakeLessonRepo) Delete(id uint) error {
	delete(r.lessons, id)
	return nil
}

type fakeQuizRepo struct {
	quizzes []*model.Quiz
}

func newFakeQuizRepo(quizzes ...*model.Quiz) *fakeQuizRepo {
	return &fakeQuizRepo{quizzes: quizzes}
}

func (r *fakeQuizRepo) Create(quiz *model.Quiz) error {
	r.quizzes = append(r.quizzes, quiz)
	return nil
}

func (r *fakeQuizRepo) FindByID(id uint) (*model.Quiz, error) {
	for _, q := range r.quizzes {
		if q.ID == id {
			return q, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeQuizRepo) FindByIDWithQuestions(id uint) (*model.Quiz, error) {
	return r.FindByID(id)
}

func (r *fakeQuizRepo) FindByLessonID(lessonID uint) ([]model.Quiz, error) {
	var out []model.Quiz
	for _, q := range r.quizzes {
		if q.LessonID == lessonID {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (r *fakeQuizRepo) Delete(id uint) error {
	kept := r.quizzes[:0]
	for _, q := range r.quizzes {
		if q.ID != id {
			kept = append(kept, q)
		}
	}
	r.quizzes = kept
	return nil
}

type fakeAttemptRepo struct {
	attempts []model.QuizAttempt
	nextID   uint
}

func newFakeAttemptRepo(attempts ...model.QuizAttempt) *fakeAttemptRepo {
	return &fakeAttemptRepo{attempts: attempts, nextID: 1000}
}

func (r *fakeAttemptRepo) Create(attempt *model.QuizAttempt) error {
	r.nextID++
	attempt.ID = r.nextID
	r.attempts = append(r.attempts, *attempt)
	return nil
}

// FindLatestByUserAndQuiz mirrors the real repository's ordering by returning
// the most recently appended matching attempt.
func (r *fakeAttemptRepo) FindLatestByUserAndQuiz(userID, quizID uint) (*model.QuizAttempt, error) {
	for i := len(r.attempts) - 1; i >= 0; i-- {
		if r.attempts[i].UserID == userID && r.attempts[i].QuizID == quizID {
			attempt := r.attempts[i]
			return &attempt, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAttemptRepo) FindAllByUserAndQuiz(userID, quizID uint) ([]model.QuizAttempt, error) {
	var out []model.QuizAttempt
	for _, a := range r.attempts {
		if a.UserID == userID && a.QuizID == quizID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeProgressRepo struct {
	rows map[[2]uint]*model.CourseProgress
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{rows: make(map[[2]uint]*model.CourseProgress)}
}

func (r *fakeProgressRepo) FindByEnrollmentAndLesson(enrollmentID, lessonID uint) (*model.CourseProgress, error) {
	row, ok := r.rows[[2]uint{enrollmentID, lessonID}]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return row, nil
}

func (r *fakeProgressRepo) FindByEnrollmentID(enrollmentID uint) ([]model.CourseProgress, error) {
	var out []model.CourseProgress
	for _, row := range r.rows {
		if row.EnrollmentID == enrollmentID {
			out = append(out, *row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LessonID < out[j].LessonID })
	return out, nil
}

func (r *fakeProgressRepo) Save(progress *model.CourseProgress) error {
	r.rows[[2]uint{progress.EnrollmentID, progress.LessonID}] = progress
	return nil
}

func (r *fakeProgressRepo) Count(filter repository.ProgressFilter) (int64, error) {
	var n int64
	for _, row := range r.rows {
		if filter.EnrollmentID != 0 && row.EnrollmentID != filter.EnrollmentID {
			continue
		}
		if filter.Status != "" && row.Status != filter.Status {
			continue
		}
		n++
	}
	return n, nil
}

type fakeUserRepo struct {
	users map[uint]*model.User
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[uint]*model.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(user *model.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(id uint) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindAll() ([]model.User, error) {
	var out []model.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(user *model.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(id uint) error {
	delete(r.users, id)
	return nil
}
