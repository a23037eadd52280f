package service

import (
	"errors"
	"fmt"
	"math"

	"github.com/easylearn/easylearn/internal/dto"
	"github.com/easylearn/easylearn/internal/quiz"
	"github.com/easylearn/easylearn/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// QuizService is the read side of the quiz catalog plus the session loader.
type QuizService interface {
	GetAvailableQuizzes(userID uint) ([]dto.QuizSummaryDTO, error)
	LoadQuiz(quizID uint) (quiz.Quiz, []quiz.Question, error)
	GetUserSubmissions(userID uint) ([]dto.SubmissionSummaryDTO, error)
}

type quizService struct {
	quizRepo       repository.QuizRepository
	questionRepo   repository.QuestionRepository
	courseRepo     repository.CourseRepository
	submissionRepo repository.SubmissionRepository
	userRepo       repository.UserRepository
}

func NewQuizService(
	quizRepo repository.QuizRepository,
	questionRepo repository.QuestionRepository,
	courseRepo repository.CourseRepository,
	submissionRepo repository.SubmissionRepository,
	userRepo repository.UserRepository,
) QuizService {
	return &quizService{
		quizRepo:       quizRepo,
		questionRepo:   questionRepo,
		courseRepo:     courseRepo,
		submissionRepo: submissionRepo,
		userRepo:       userRepo,
	}
}

// GetAvailableQuizzes lists quizzes for the courses of the user's program,
// with the course code/name projection the quiz cards display.
func (s *quizService) GetAvailableQuizzes(userID uint) ([]dto.QuizSummaryDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, fmt.Errorf("user not found with ID %d: %w", userID, err)
	}

	courseIDs, err := s.courseRepo.FindIDsByProgramID(user.ProgramID)
	if err != nil {
		log.Error().Err(err).Uint("programID", user.ProgramID).Msg("Failed to fetch course ids for program")
		return nil, fmt.Errorf("error fetching courses: %w", err)
	}

	quizzes, err := s.quizRepo.FindByCourseIDs(courseIDs)
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch quizzes for courses")
		return nil, fmt.Errorf("error fetching quizzes: %w", err)
	}

	dtos := make([]dto.QuizSummaryDTO, 0, len(quizzes))
	for _, q := range quizzes {
		var summary dto.QuizSummaryDTO
		if err := copier.Copy(&summary, &q); err != nil {
			log.Error().Err(err).Uint("quizID", q.ID).Msg("Failed to copy quiz to summary DTO")
			continue
		}
		summary.CourseCode = q.Course.Code
		summary.CourseName = q.Course.Name
		dtos = append(dtos, summary)
	}
	return dtos, nil
}

// LoadQuiz fetches the quiz definition and its full question set for a new
// session. It fails with quiz.ErrQuizNotFound when the id does not resolve
// and quiz.ErrNoQuestions when the quiz is empty; no session may be created
// on either.
func (s *quizService) LoadQuiz(quizID uint) (quiz.Quiz, []quiz.Question, error) {
	record, err := s.quizRepo.FindByID(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return quiz.Quiz{}, nil, fmt.Errorf("quiz %d: %w", quizID, quiz.ErrQuizNotFound)
		}
		return quiz.Quiz{}, nil, fmt.Errorf("fetching quiz %d: %w", quizID, err)
	}

	records, err := s.questionRepo.FindByQuizID(quizID)
	if err != nil {
		return quiz.Quiz{}, nil, fmt.Errorf("fetching questions for quiz %d: %w", quizID, err)
	}
	if len(records) == 0 {
		return quiz.Quiz{}, nil, fmt.Errorf("quiz %d: %w", quizID, quiz.ErrNoQuestions)
	}

	def := quiz.Quiz{
		ID:              record.ID,
		CourseID:        record.CourseID,
		Title:           record.Title,
		DurationMinutes: record.DurationMinutes,
		TotalQuestions:  record.TotalQuestions,
	}
	questions := make([]quiz.Question, len(records))
	for i, r := range records {
		questions[i] = quiz.Question{
			ID:            r.ID,
			QuizID:        r.QuizID,
			Text:          r.QuestionText,
			OptionA:       r.OptionA,
			OptionB:       r.OptionB,
			OptionC:       r.OptionC,
			OptionD:       r.OptionD,
			CorrectAnswer: r.CorrectAnswer,
		}
	}
	return def, questions, nil
}

func (s *quizService) GetUserSubmissions(userID uint) ([]dto.SubmissionSummaryDTO, error) {
	submissions, err := s.submissionRepo.FindByUserID(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to fetch submissions")
		return nil, fmt.Errorf("error fetching submissions: %w", err)
	}

	dtos := make([]dto.SubmissionSummaryDTO, 0, len(submissions))
	for _, sub := range submissions {
		var summary dto.SubmissionSummaryDTO
		if err := copier.Copy(&summary, &sub); err != nil {
			log.Error().Err(err).Uint("submissionID", sub.ID).Msg("Failed to copy submission to summary DTO")
			continue
		}
		summary.QuizTitle = sub.Quiz.Title
		if sub.TotalQuestions > 0 {
			summary.Percent = int(math.Round(float64(sub.Score) / float64(sub.TotalQuestions) * 100))
		}
		dtos = append(dtos, summary)
	}
	return dtos, nil
}
