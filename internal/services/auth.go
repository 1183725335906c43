package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-evault/internal/logger"
	"github.com/sbilibin2017/gw-evault/internal/models"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 6

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	List(ctx context.Context) ([]models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, isAdmin bool) (string, error)
}

// AuthService handles registration, login and profile reads.
type AuthService struct {
	reader      UserReader
	writer      UserWriter
	jwt         JWTGenerator
	adminEmails map[string]struct{}
}

// NewAuthService creates a new AuthService instance.
// Users registering with one of adminEmails get the admin capability.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator, adminEmails []string) *AuthService {
	admins := make(map[string]struct{}, len(adminEmails))
	for _, email := range adminEmails {
		if email = normalizeEmail(email); email != "" {
			admins[email] = struct{}{}
		}
	}

	return &AuthService{
		reader:      reader,
		writer:      writer,
		jwt:         jwt,
		adminEmails: admins,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new user and returns an access token.
func (svc *AuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	name, email = strings.TrimSpace(name), normalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return "", fmt.Errorf("%w: name, email and password are required", ErrValidation)
	}
	if len(password) < MinPasswordLength {
		return "", fmt.Errorf("%w: password must be at least %d characters", ErrValidation, MinPasswordLength)
	}

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return "", err
	}
	if existing != nil {
		logger.Log.Errorw("user already exists", "email", email)
		return "", ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", err
	}

	_, isAdmin := svc.adminEmails[email]
	user := &models.UserDB{
		UserID:       uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		IsAdmin:      isAdmin,
	}
	if err := svc.writer.Save(ctx, user); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return "", err
	}

	return svc.issue(ctx, user)
}

// Login authenticates a user and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := svc.reader.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "email", email)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return "", ErrInvalidCredentials
	}

	return svc.issue(ctx, user)
}

func (svc *AuthService) issue(ctx context.Context, user *models.UserDB) (string, error) {
	token, err := svc.jwt.Generate(ctx, user.UserID, user.IsAdmin)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}
	return token, nil
}

// Profile returns the user's account.
func (svc *AuthService) Profile(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}
	return user, nil
}

// ListUsers returns every registered user. Admin only.
func (svc *AuthService) ListUsers(ctx context.Context, actor models.Principal) ([]models.UserDB, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}
