package service

import (
	"context"
	"errors"
	"fmt"

	"ledgerhub/internal/common"
	"ledgerhub/internal/common/security"
	"ledgerhub/internal/domain/model"
	"ledgerhub/internal/domain/repository"

	"github.com/google/uuid"
)

type AuthService struct {
	userRepo repository.UserRepository
	tokens   *security.TokenService
}

func NewAuthService(userRepo repository.UserRepository, tokens *security.TokenService) *AuthService {
	return &AuthService{userRepo: userRepo, tokens: tokens}
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (s *AuthService) Register(ctx context.Context, req RegisterRequest) error {
	if req.Username == "" || req.Password == "" {
		return common.ErrBadRequest
	}

	if _, err := s.userRepo.FindByUsername(ctx, req.Username); err == nil {
		return fmt.Errorf("username already exists: %w", common.ErrDuplicate)
	} else if !errors.Is(err, common.ErrNotFound) {
		return fmt.Errorf("failed to check username: %w", err)
	}

	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:             uuid.NewString(),
		Username:       req.Username,
		HashedPassword: hashedPassword,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Repo returns common.ErrDuplicate on a concurrent registration.
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Login verifies form credentials and mints a bearer token. Unknown
// username and wrong password are deliberately indistinguishable.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	if username == "" || password == "" {
		return nil, common.ErrBadRequest
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("invalid username or password: %w", common.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !security.CheckPasswordHash(password, user.HashedPassword) {
		return nil, fmt.Errorf("invalid username or password: %w", common.ErrUnauthorized)
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &LoginResponse{AccessToken: token, TokenType: "bearer"}, nil
}
