package user

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"visionx-go/internal/domain/authz"
	"visionx-go/internal/domain/validation"
)

type Service struct {
	repo   Repository
	tokens *TokenIssuer
}

func NewService(repo Repository, tokens *TokenIssuer) *Service {
	return &Service{repo: repo, tokens: tokens}
}

type RegisterInput struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Password  string
	Role      authz.Role
}

// Register creates an account through the open registration endpoint. The
// requested role defaults to SPECTATOR when absent.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*User, error) {
	return s.create(ctx, input)
}

// AdminCreate creates an account on behalf of an administrator. Only the
// capability check differs from Register; role assignment is unrestricted
// either way because the role was already validated upstream.
func (s *Service) AdminCreate(ctx context.Context, p authz.Principal, input RegisterInput) (*User, error) {
	if !authz.CanAdministerUsers(p) {
		return nil, ErrNotAdmin
	}
	return s.create(ctx, input)
}

func (s *Service) create(ctx context.Context, input RegisterInput) (*User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, validation.Errorf("username is required")
	}
	if input.Password == "" {
		return nil, validation.Errorf("password is required")
	}
	role := input.Role
	if role == "" {
		role = authz.RoleSpectator
	}

	taken, err := s.repo.IsUsernameTaken(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        strings.TrimSpace(input.Email),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.repo.Create(ctx, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// Login checks credentials and issues a token pair. Unknown usernames and
// wrong passwords are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, username, password string) (*User, TokenPair, error) {
	account, err := s.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, TokenPair{}, ErrInvalidCredentials
		}
		return nil, TokenPair{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, TokenPair{}, ErrInvalidCredentials
	}

	pair, err := s.tokens.Issue(account)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return account, pair, nil
}

// Refresh exchanges a refresh token for a new access token. The account is
// reloaded so a role change takes effect on the next refresh.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (string, error) {
	principal, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return "", err
	}

	account, err := s.repo.GetByID(ctx, principal.ID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", ErrInvalidToken
		}
		return "", err
	}

	return s.tokens.sign(account, tokenTypeAccess, s.tokens.accessTTL)
}

// Authenticate resolves an access token to the full account behind it.
func (s *Service) Authenticate(ctx context.Context, accessToken string) (*User, error) {
	principal, err := s.tokens.VerifyAccess(accessToken)
	if err != nil {
		return nil, err
	}
	account, err := s.repo.GetByID(ctx, principal.ID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return account, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns every account for admins and an empty set for everyone else.
func (s *Service) List(ctx context.Context, p authz.Principal) ([]User, error) {
	if !authz.CanListUsers(p) {
		return []User{}, nil
	}
	return s.repo.List(ctx)
}
