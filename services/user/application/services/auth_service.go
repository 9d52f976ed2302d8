package services

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/wheelhouse/wheelhouse/pkg/auth"
	userdomain "github.com/wheelhouse/wheelhouse/services/user/domain"
	"github.com/wheelhouse/wheelhouse/services/user/domain/models"
	"github.com/wheelhouse/wheelhouse/services/user/domain/repositories"
)

// TokenPair is the credential pair minted at registration and login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthService handles registration, login, and token refresh.
type AuthService struct {
	repo       repositories.UserRepository
	tokens     *auth.TokenManager
	bcryptCost int
}

// NewAuthService returns an AuthService wired with the given repository and
// token manager.
func NewAuthService(repo repositories.UserRepository, tokens *auth.TokenManager, bcryptCost int) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, bcryptCost: bcryptCost}
}

// Register creates an account identified by email or phone and returns the
// user with a fresh token pair. New accounts get a random default nickname.
func (s *AuthService) Register(ctx context.Context, email, phone *string, password string) (*models.User, *TokenPair, error) {
	if isBlank(email) && isBlank(phone) {
		return nil, nil, userdomain.ErrMissingIdentifier
	}
	if err := auth.ValidatePassword(password); err != nil {
		return nil, nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.NewUser(email, phone, hash, defaultNickname())
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, nil, fmt.Errorf("save user: %w", err)
	}

	pair, err := s.issuePair(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Login checks the credential against the stored hash. The caller cannot
// tell whether the account or the password was wrong.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*models.User, *TokenPair, error) {
	user, err := s.repo.GetByIdentifier(ctx, identifier)
	if err != nil {
		return nil, nil, userdomain.ErrInvalidCredentials
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, nil, userdomain.ErrInvalidCredentials
	}

	pair, err := s.issuePair(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Refresh verifies a refresh token and mints a fresh access token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokens.Verify(refreshToken, auth.TokenTypeRefresh)
	if err != nil {
		return "", err
	}

	// The account may have been deleted since the token was issued.
	user, err := s.repo.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	access, err := s.tokens.IssueAccess(user.ID, primaryIdentifier(user))
	if err != nil {
		return "", fmt.Errorf("issue access token: %w", err)
	}
	return access, nil
}

func (s *AuthService) issuePair(user *models.User) (*TokenPair, error) {
	access, refresh, err := s.tokens.IssuePair(user.ID, primaryIdentifier(user))
	if err != nil {
		return nil, fmt.Errorf("issue token pair: %w", err)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func primaryIdentifier(user *models.User) string {
	if user.Email != nil {
		return *user.Email
	}
	if user.Phone != nil {
		return *user.Phone
	}
	return ""
}

func isBlank(s *string) bool {
	return s == nil || *s == ""
}

// defaultNickname generates the throwaway display name new accounts start with.
func defaultNickname() string {
	return fmt.Sprintf("User%03d", rand.IntN(1000))
}
