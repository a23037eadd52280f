package service

import (
	"testing"

	"github.com/easylearn/easylearn/internal/model"
	"github.com/easylearn/easylearn/internal/quiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeQuizRepo struct {
	quizzes map[uint]model.Quiz
}

func (f *fakeQuizRepo) Create(q *model.Quiz) error { return nil }

func (f *fakeQuizRepo) FindByID(id uint) (*model.Quiz, error) {
	q, ok := f.quizzes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &q, nil
}

func (f *fakeQuizRepo) FindByCourseIDs(courseIDs []uint) ([]model.Quiz, error) {
	allowed := make(map[uint]struct{}, len(courseIDs))
	for _, id := range courseIDs {
		allowed[id] = struct{}{}
	}
	var out []model.Quiz
	for _, q := range f.quizzes {
		if _, ok := allowed[q.CourseID]; ok {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeQuizRepo) FindAllWithCourse() ([]model.Quiz, error) {
	var out []model.Quiz
	for _, q := range f.quizzes {
		out = append(out, q)
	}
	return out, nil
}

func (f *fakeQuizRepo) Delete(id uint) error { return nil }

type fakeQuestionRepo struct {
	byQuiz map[uint][]model.QuizQuestion
}

func (f *fakeQuestionRepo) Create(q *model.QuizQuestion) error { return nil }

func (f *fakeQuestionRepo) FindByQuizID(quizID uint) ([]model.QuizQuestion, error) {
	return f.byQuiz[quizID], nil
}

func (f *fakeQuestionRepo) CountByQuizID(quizID uint) (int64, error) {
	return int64(len(f.byQuiz[quizID])), nil
}

func (f *fakeQuestionRepo) Delete(id uint) error { return nil }

type fakeCourseRepo struct {
	byProgram map[uint][]model.Course
}

func (f *fakeCourseRepo) FindByID(id uint) (*model.Course, error) {
	for _, courses := range f.byProgram {
		for _, c := range courses {
			if c.ID == id {
				return &c, nil
			}
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCourseRepo) FindByProgramID(programID uint) ([]model.Course, error) {
	return f.byProgram[programID], nil
}

func (f *fakeCourseRepo) FindIDsByProgramID(programID uint) ([]uint, error) {
	var ids []uint
	for _, c := range f.byProgram[programID] {
		ids = append(ids, c.ID)
	}
	return ids, nil
}

func (f *fakeCourseRepo) FindAll() ([]model.Course, error) { return nil, nil }

type fakeUserRepo struct {
	users map[uint]model.User
}

func (f *fakeUserRepo) Create(u *model.User) error {
	if u.ID == 0 {
		u.ID = uint(len(f.users) + 1)
	}
	f.users[u.ID] = *u
	return nil
}

func (f *fakeUserRepo) FindByID(id uint) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindByIdentifier(identifier string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == identifier || u.SchoolID == identifier || u.Phone == identifier {
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindAll() ([]model.User, error) { return nil, nil }

func (f *fakeUserRepo) Update(u *model.User) error { return nil }

func newQuizServiceFixture() (QuizService, *fakeSubmissionRepo) {
	quizRepo := &fakeQuizRepo{quizzes: map[uint]model.Quiz{
		7: {ID: 7, CourseID: 3, Title: "Networks Quiz", DurationMinutes: 10, TotalQuestions: 5,
			Course: model.Course{ID: 3, Code: "CPE202", Name: "Computer Networks"}},
		8: {ID: 8, CourseID: 99, Title: "Other Program Quiz", DurationMinutes: 5, TotalQuestions: 3},
		9: {ID: 9, CourseID: 3, Title: "Empty Quiz", DurationMinutes: 5, TotalQuestions: 10},
	}}
	questionRepo := &fakeQuestionRepo{byQuiz: map[uint][]model.QuizQuestion{
		7: {
			{ID: 1, QuizID: 7, QuestionText: "Q1", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d", CorrectAnswer: "B"},
			{ID: 2, QuizID: 7, QuestionText: "Q2", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d", CorrectAnswer: "A"},
		},
	}}
	courseRepo := &fakeCourseRepo{byProgram: map[uint][]model.Course{
		1: {{ID: 3, ProgramID: 1, Code: "CPE202", Name: "Computer Networks"}},
	}}
	userRepo := &fakeUserRepo{users: map[uint]model.User{
		42: {ID: 42, ProgramID: 1, FullName: "Ama Mensah"},
	}}
	subRepo := &fakeSubmissionRepo{}
	return NewQuizService(quizRepo, questionRepo, courseRepo, subRepo, userRepo), subRepo
}

func TestQuizService_LoadQuiz(t *testing.T) {
	svc, _ := newQuizServiceFixture()

	def, questions, err := svc.LoadQuiz(7)
	require.NoError(t, err)
	assert.Equal(t, uint(7), def.ID)
	assert.Equal(t, "Networks Quiz", def.Title)
	assert.Equal(t, 10, def.DurationMinutes)
	require.Len(t, questions, 2)
	assert.Equal(t, "Q1", questions[0].Text)
	assert.Equal(t, "B", questions[0].CorrectAnswer)
	assert.Equal(t, uint(7), questions[1].QuizID)
}

func TestQuizService_LoadQuiz_NotFound(t *testing.T) {
	svc, _ := newQuizServiceFixture()

	_, _, err := svc.LoadQuiz(1234)
	assert.ErrorIs(t, err, quiz.ErrQuizNotFound)
}

func TestQuizService_LoadQuiz_Empty(t *testing.T) {
	svc, _ := newQuizServiceFixture()

	// Quiz 9 exists but has no questions stored.
	_, _, err := svc.LoadQuiz(9)
	assert.ErrorIs(t, err, quiz.ErrNoQuestions)
}

func TestQuizService_GetAvailableQuizzes_ScopedToProgram(t *testing.T) {
	svc, _ := newQuizServiceFixture()

	quizzes, err := svc.GetAvailableQuizzes(42)
	require.NoError(t, err)

	require.Len(t, quizzes, 2, "only quizzes of the user's program courses")
	for _, q := range quizzes {
		assert.Equal(t, uint(3), q.CourseID)
		assert.Equal(t, "CPE202", q.CourseCode)
	}
}

func TestQuizService_GetUserSubmissions_ComputesPercent(t *testing.T) {
	svc, subRepo := newQuizServiceFixture()
	subRepo.created = []model.QuizSubmission{
		{ID: 1, QuizID: 7, UserID: 42, Score: 1, TotalQuestions: 3, TimeTakenSeconds: 80,
			Quiz: model.Quiz{ID: 7, Title: "Networks Quiz"}},
	}

	history, err := svc.GetUserSubmissions(42)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Networks Quiz", history[0].QuizTitle)
	assert.Equal(t, 33, history[0].Percent)
	assert.Equal(t, 80, history[0].TimeTakenSeconds)
}
