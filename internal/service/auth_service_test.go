package service

import (
	"testing"

	"github.com/easylearn/easylearn/internal/dto"
	"github.com/easylearn/easylearn/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signUpRequest() dto.SignUpRequest {
	return dto.SignUpRequest{
		SchoolID:  "UG-2024-001",
		Email:     "kofi@example.com",
		Phone:     "+233201234567",
		FullName:  "Kofi Owusu",
		Password:  "correct horse battery",
		ProgramID: 1,
		Semester:  2,
	}
}

func TestAuthService_SignUpAndSignIn(t *testing.T) {
	repo := &fakeUserRepo{users: map[uint]model.User{}}
	svc := NewAuthService(repo, "test-secret")

	created, err := svc.SignUp(signUpRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, created.Token)
	assert.Equal(t, "kofi@example.com", created.User.Email)
	assert.False(t, created.User.IsAdmin)

	// The password hash never appears in the response and is not plaintext.
	stored := repo.users[created.User.ID]
	assert.NotEqual(t, "correct horse battery", stored.PasswordHash)

	// Any of the three identifiers signs in.
	for _, identifier := range []string{"kofi@example.com", "UG-2024-001", "+233201234567"} {
		resp, err := svc.SignIn(dto.SignInRequest{Identifier: identifier, Password: "correct horse battery"})
		require.NoError(t, err, identifier)
		assert.Equal(t, created.User.ID, resp.User.ID)
	}
}

func TestAuthService_SignUpDuplicateEmail(t *testing.T) {
	repo := &fakeUserRepo{users: map[uint]model.User{}}
	svc := NewAuthService(repo, "test-secret")

	_, err := svc.SignUp(signUpRequest())
	require.NoError(t, err)

	req := signUpRequest()
	req.SchoolID = "UG-2024-002"
	_, err = svc.SignUp(req)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_SignInRejectsBadCredentials(t *testing.T) {
	repo := &fakeUserRepo{users: map[uint]model.User{}}
	svc := NewAuthService(repo, "test-secret")

	_, err := svc.SignUp(signUpRequest())
	require.NoError(t, err)

	_, err = svc.SignIn(dto.SignInRequest{Identifier: "kofi@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.SignIn(dto.SignInRequest{Identifier: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_ParseToken(t *testing.T) {
	repo := &fakeUserRepo{users: map[uint]model.User{}}
	svc := NewAuthService(repo, "test-secret")

	resp, err := svc.SignUp(signUpRequest())
	require.NoError(t, err)

	claims, err := svc.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.False(t, claims.IsAdmin)

	_, err = svc.ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// A token signed with a different secret must not parse.
	other := NewAuthService(repo, "other-secret")
	otherResp, err := other.SignIn(dto.SignInRequest{Identifier: "kofi@example.com", Password: "correct horse battery"})
	require.NoError(t, err)
	_, err = svc.ParseToken(otherResp.Token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
