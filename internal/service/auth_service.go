package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/easylearn/easylearn/internal/dto"
	"github.com/easylearn/easylearn/internal/model"
	"github.com/easylearn/easylearn/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
)

// Claims is the JWT payload carried in the Authorization header.
type Claims struct {
	UserID  uint `json:"uid"`
	IsAdmin bool `json:"adm"`
	jwt.RegisteredClaims
}

type AuthService interface {
	SignUp(req dto.SignUpRequest) (*dto.AuthResponse, error)
	SignIn(req dto.SignInRequest) (*dto.AuthResponse, error)
	GetProfile(userID uint) (*dto.UserResponse, error)
	ParseToken(tokenStr string) (*Claims, error)
}

type authService struct {
	userRepo repository.UserRepository
	secret   []byte
}

func NewAuthService(userRepo repository.UserRepository, jwtSecret string) AuthService {
	return &authService{userRepo: userRepo, secret: []byte(jwtSecret)}
}

func (s *authService) SignUp(req dto.SignUpRequest) (*dto.AuthResponse, error) {
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("checking email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := model.User{
		SchoolID:     req.SchoolID,
		Email:        req.Email,
		Phone:        req.Phone,
		FullName:     req.FullName,
		PasswordHash: string(hash),
		ProgramID:    req.ProgramID,
		Semester:     req.Semester,
	}
	if err := s.userRepo.Create(&user); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("SignUp: failed to create user")
		return nil, fmt.Errorf("creating account: %w", err)
	}

	return s.authResponse(&user)
}

// SignIn accepts an email, school ID or phone number; non-email identifiers
// are resolved against the users table first.
func (s *authService) SignIn(req dto.SignInRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByIdentifier(req.Identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return s.authResponse(user)
}

func (s *authService) GetProfile(userID uint) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, fmt.Errorf("user not found with ID %d: %w", userID, err)
	}
	resp := s.userResponse(user)
	return &resp, nil
}

func (s *authService) ParseToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidCredentials
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidCredentials
	}
	return claims, nil
}

func (s *authService) authResponse(user *model.User) (*dto.AuthResponse, error) {
	now := time.Now()
	claims := &Claims{
		UserID:  user.ID,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "easylearn",
			Subject:   fmt.Sprintf("%d", user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("signing token: %w", err)
	}
	return &dto.AuthResponse{Token: token, User: s.userResponse(user)}, nil
}

func (s *authService) userResponse(user *model.User) dto.UserResponse {
	var resp dto.UserResponse
	if err := copier.Copy(&resp, user); err != nil {
		log.Error().Err(err).Msg("Failed to copy user model to response")
	}
	resp.ProgramName = user.Program.Name
	return resp
}
