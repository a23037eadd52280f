package dto

import "time"

type BookResponse struct {
	ID            uint      `json:"id"`
	ProgramID     uint      `json:"program_id"`
	Title         string    `json:"title"`
	Author        string    `json:"author,omitempty"`
	Description   string    `json:"description,omitempty"`
	FileURL       string    `json:"file_url"`
	CoverImageURL *string   `json:"cover_image_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type CourseResponse struct {
	ID        uint   `json:"id"`
	ProgramID uint   `json:"program_id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	Semester  int    `json:"semester"`
}

type ResourceResponse struct {
	ID         uint      `json:"id"`
	CourseID   uint      `json:"course_id"`
	CourseCode string    `json:"course_code,omitempty"`
	CourseName string    `json:"course_name,omitempty"`
	Title      string    `json:"title"`
	Type       string    `json:"type"`
	FileURL    string    `json:"file_url"`
	CreatedAt  time.Time `json:"created_at"`
}

// DashboardStatsDTO backs the three counters on the student dashboard.
type DashboardStatsDTO struct {
	BookCount       int64 `json:"book_count"`
	ResourceCount   int64 `json:"resource_count"`
	SubmissionCount int64 `json:"submission_count"`
}

type DashboardDTO struct {
	Stats           DashboardStatsDTO  `json:"stats"`
	RecentBooks     []BookResponse     `json:"recent_books"`
	RecentResources []ResourceResponse `json:"recent_resources"`
}
