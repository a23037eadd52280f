package service

import (
	"fmt"

	"github.com/easylearn/easylearn/internal/dto"
	"github.com/easylearn/easylearn/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

const recentItemLimit = 6

// DashboardService aggregates the counters and recent-item lists on the
// student dashboard.
type DashboardService interface {
	GetDashboard(userID uint) (*dto.DashboardDTO, error)
}

type dashboardService struct {
	bookRepo       repository.BookRepository
	resourceRepo   repository.ResourceRepository
	courseRepo     repository.CourseRepository
	submissionRepo repository.SubmissionRepository
	userRepo       repository.UserRepository
}

func NewDashboardService(
	bookRepo repository.BookRepository,
	resourceRepo repository.ResourceRepository,
	courseRepo repository.CourseRepository,
	submissionRepo repository.SubmissionRepository,
	userRepo repository.UserRepository,
) DashboardService {
	return &dashboardService{
		bookRepo:       bookRepo,
		resourceRepo:   resourceRepo,
		courseRepo:     courseRepo,
		submissionRepo: submissionRepo,
		userRepo:       userRepo,
	}
}

func (s *dashboardService) GetDashboard(userID uint) (*dto.DashboardDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, fmt.Errorf("user not found with ID %d: %w", userID, err)
	}

	courseIDs, err := s.courseRepo.FindIDsByProgramID(user.ProgramID)
	if err != nil {
		return nil, fmt.Errorf("error fetching courses: %w", err)
	}

	bookCount, err := s.bookRepo.CountByProgramID(user.ProgramID)
	if err != nil {
		return nil, fmt.Errorf("error counting books: %w", err)
	}
	resourceCount, err := s.resourceRepo.CountByCourseIDs(courseIDs)
	if err != nil {
		return nil, fmt.Errorf("error counting resources: %w", err)
	}
	submissionCount, err := s.submissionRepo.CountByUserID(user.ID)
	if err != nil {
		return nil, fmt.Errorf("error counting submissions: %w", err)
	}

	books, err := s.bookRepo.FindRecentByProgramID(user.ProgramID, recentItemLimit)
	if err != nil {
		log.Error().Err(err).Uint("programID", user.ProgramID).Msg("Failed to fetch recent books")
		books = nil
	}
	resources, err := s.resourceRepo.FindRecentByCourseIDs(courseIDs, recentItemLimit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch recent resources")
		resources = nil
	}

	out := &dto.DashboardDTO{
		Stats: dto.DashboardStatsDTO{
			BookCount:       bookCount,
			ResourceCount:   resourceCount,
			SubmissionCount: submissionCount,
		},
		RecentBooks:     make([]dto.BookResponse, 0, len(books)),
		RecentResources: make([]dto.ResourceResponse, 0, len(resources)),
	}
	for _, b := range books {
		var resp dto.BookResponse
		if err := copier.Copy(&resp, &b); err != nil {
			continue
		}
		out.RecentBooks = append(out.RecentBooks, resp)
	}
	for _, r := range resources {
		out.RecentResources = append(out.RecentResources, resourceResponse(&r))
	}
	return out, nil
}
