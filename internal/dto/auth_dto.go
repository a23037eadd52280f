package dto

// SignUpRequest registers a new student account.
type SignUpRequest struct {
	SchoolID  string `json:"school_id" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	FullName  string `json:"full_name" binding:"required"`
	Password  string `json:"password" binding:"required,min=8"`
	ProgramID uint   `json:"program_id" binding:"required"`
	Semester  int    `json:"semester" binding:"required,min=1"`
}

// SignInRequest accepts an email, school ID or phone number as identifier.
type SignInRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type UserResponse struct {
	ID          uint    `json:"id"`
	SchoolID    string  `json:"school_id"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone,omitempty"`
	FullName    string  `json:"full_name"`
	ProgramID   uint    `json:"program_id"`
	ProgramName string  `json:"program_name,omitempty"`
	Semester    int     `json:"semester"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
	IsAdmin     bool    `json:"is_admin"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
