package service

import (
	"fmt"

	"github.com/easylearn/easylearn/internal/dto"
	"github.com/easylearn/easylearn/internal/model"
	"github.com/easylearn/easylearn/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// AdminService covers the management screens: quiz and question authoring,
// quiz listing/removal and user administration.
type AdminService interface {
	CreateQuiz(req dto.CreateQuizRequest) (*dto.QuizSummaryDTO, error)
	AddQuestion(quizID uint, req dto.CreateQuestionRequest) (*dto.QuestionAdminDTO, error)
	ListQuizzes() ([]dto.QuizSummaryDTO, error)
	ListQuestions(quizID uint) ([]dto.QuestionAdminDTO, error)
	DeleteQuiz(id uint) error
	DeleteQuestion(id uint) error

	ListCourses() ([]dto.CourseResponse, error)

	ListUsers() ([]dto.UserResponse, error)
	SetAdmin(userID uint, isAdmin bool) (*dto.UserResponse, error)
}

type adminService struct {
	quizRepo     repository.QuizRepository
	questionRepo repository.QuestionRepository
	courseRepo   repository.CourseRepository
	userRepo     repository.UserRepository
}

func NewAdminService(
	quizRepo repository.QuizRepository,
	questionRepo repository.QuestionRepository,
	courseRepo repository.CourseRepository,
	userRepo repository.UserRepository,
) AdminService {
	return &adminService{
		quizRepo:     quizRepo,
		questionRepo: questionRepo,
		courseRepo:   courseRepo,
		userRepo:     userRepo,
	}
}

func (s *adminService) CreateQuiz(req dto.CreateQuizRequest) (*dto.QuizSummaryDTO, error) {
	course, err := s.courseRepo.FindByID(req.CourseID)
	if err != nil {
		return nil, fmt.Errorf("course not found with ID %d: %w", req.CourseID, err)
	}

	quiz := model.Quiz{
		CourseID:        req.CourseID,
		Title:           req.Title,
		DurationMinutes: req.DurationMinutes,
		TotalQuestions:  req.TotalQuestions,
	}
	if err := s.quizRepo.Create(&quiz); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("Failed to create quiz")
		return nil, fmt.Errorf("creating quiz: %w", err)
	}

	var resp dto.QuizSummaryDTO
	if err := copier.Copy(&resp, &quiz); err != nil {
		return nil, fmt.Errorf("error preparing quiz response: %w", err)
	}
	resp.CourseCode = course.Code
	resp.CourseName = course.Name
	return &resp, nil
}

func (s *adminService) AddQuestion(quizID uint, req dto.CreateQuestionRequest) (*dto.QuestionAdminDTO, error) {
	parent, err := s.quizRepo.FindByID(quizID)
	if err != nil {
		return nil, fmt.Errorf("quiz not found with ID %d: %w", quizID, err)
	}

	question := model.QuizQuestion{
		QuizID:        quizID,
		QuestionText:  req.QuestionText,
		OptionA:       req.OptionA,
		OptionB:       req.OptionB,
		OptionC:       req.OptionC,
		OptionD:       req.OptionD,
		CorrectAnswer: req.CorrectAnswer,
	}
	if err := s.questionRepo.Create(&question); err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Msg("Failed to create question")
		return nil, fmt.Errorf("creating question: %w", err)
	}

	// Sessions always run on the stored questions; the declared total is
	// display metadata, so a mismatch is worth flagging but not an error.
	if count, err := s.questionRepo.CountByQuizID(quizID); err == nil && int(count) > parent.TotalQuestions {
		log.Warn().Uint("quizID", quizID).Int64("stored", count).Int("declared", parent.TotalQuestions).
			Msg("Quiz has more questions than its declared total")
	}

	var resp dto.QuestionAdminDTO
	if err := copier.Copy(&resp, &question); err != nil {
		return nil, fmt.Errorf("error preparing question response: %w", err)
	}
	return &resp, nil
}

func (s *adminService) ListQuizzes() ([]dto.QuizSummaryDTO, error) {
	quizzes, err := s.quizRepo.FindAllWithCourse()
	if err != nil {
		return nil, fmt.Errorf("error fetching quizzes: %w", err)
	}
	dtos := make([]dto.QuizSummaryDTO, 0, len(quizzes))
	for _, q := range quizzes {
		var summary dto.QuizSummaryDTO
		if err := copier.Copy(&summary, &q); err != nil {
			continue
		}
		summary.CourseCode = q.Course.Code
		summary.CourseName = q.Course.Name
		dtos = append(dtos, summary)
	}
	return dtos, nil
}

func (s *adminService) ListQuestions(quizID uint) ([]dto.QuestionAdminDTO, error) {
	questions, err := s.questionRepo.FindByQuizID(quizID)
	if err != nil {
		return nil, fmt.Errorf("error fetching questions: %w", err)
	}
	dtos := make([]dto.QuestionAdminDTO, 0, len(questions))
	for _, q := range questions {
		var resp dto.QuestionAdminDTO
		if err := copier.Copy(&resp, &q); err != nil {
			continue
		}
		dtos = append(dtos, resp)
	}
	return dtos, nil
}

func (s *adminService) DeleteQuiz(id uint) error {
	if err := s.quizRepo.Delete(id); err != nil {
		log.Error().Err(err).Uint("quizID", id).Msg("Failed to delete quiz")
		return fmt.Errorf("deleting quiz: %w", err)
	}
	return nil
}

func (s *adminService) DeleteQuestion(id uint) error {
	if err := s.questionRepo.Delete(id); err != nil {
		log.Error().Err(err).Uint("questionID", id).Msg("Failed to delete question")
		return fmt.Errorf("deleting question: %w", err)
	}
	return nil
}

func (s *adminService) ListCourses() ([]dto.CourseResponse, error) {
	courses, err := s.courseRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("error fetching courses: %w", err)
	}
	dtos := make([]dto.CourseResponse, 0, len(courses))
	for _, c := range courses {
		var resp dto.CourseResponse
		if err := copier.Copy(&resp, &c); err != nil {
			continue
		}
		dtos = append(dtos, resp)
	}
	return dtos, nil
}

func (s *adminService) ListUsers() ([]dto.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("error fetching users: %w", err)
	}
	dtos := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		var resp dto.UserResponse
		if err := copier.Copy(&resp, &u); err != nil {
			continue
		}
		resp.ProgramName = u.Program.Name
		dtos = append(dtos, resp)
	}
	return dtos, nil
}

func (s *adminService) SetAdmin(userID uint, isAdmin bool) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, fmt.Errorf("user not found with ID %d: %w", userID, err)
	}
	user.IsAdmin = isAdmin
	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}

	var resp dto.UserResponse
	if err := copier.Copy(&resp, user); err != nil {
		return nil, fmt.Errorf("error preparing user response: %w", err)
	}
	resp.ProgramName = user.Program.Name
	return &resp, nil
}
