package auth

import (
	"context"
	"errors"
	"os"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"

	autherrors "github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/auth/errors"
	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/employee"
	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/shared/apperror"
	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/shared/contextutil"
)

type Service interface {
	// Verify checks the credential pair against the store. It fails with
	// ErrUserNotFound when no identity has the username and with
	// ErrPasswordMismatch when the digest differs; on success it returns the
	// identity without ever retaining the raw password.
	Verify(ctx context.Context, username, password string) (*employee.Employee, error)

	Login(ctx context.Context, username, password string) (token string, resp AuthResponse, err error)

	GetMe(ctx context.Context, employeeID uint) (AuthResponse, error)
}

type service struct {
	repo employee.Repository
}

func NewService(repo employee.Repository) Service {
	return &service{repo: repo}
}

func (s *service) Verify(ctx context.Context, username, password string) (*employee.Employee, error) {
	e, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, autherrors.ErrUserNotFound
		}
		return nil, apperror.StorageError(err)
	}

	if !CompareHash(e.PasswordHash, password) {
		return nil, autherrors.ErrPasswordMismatch
	}

	return e, nil
}

func (s *service) Login(ctx context.Context, username, password string) (string, AuthResponse, error) {
	l := contextutil.GetLogger(ctx, nil)

	e, err := s.Verify(ctx, username, password)
	if err != nil {
		l.Info("login rejected", zap.String("username", username), zap.Error(err))
		return "", AuthResponse{}, err
	}

	token, err := s.generateToken(e)
	if err != nil {
		l.Error("failed to sign token", zap.Error(err))
		return "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	l.Info("login accepted",
		zap.Uint("employee_id", e.ID),
		zap.String("role", e.Role),
	)
	return token, mapToResponse(e), nil
}

func (s *service) GetMe(ctx context.Context, employeeID uint) (AuthResponse, error) {
	e, err := s.repo.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AuthResponse{}, autherrors.ErrUserNotFound
		}
		return AuthResponse{}, apperror.StorageError(err)
	}
	return mapToResponse(e), nil
}

// generateToken issues an HS256 token carrying the session identity. No exp
// claim: token-based session expiry is out of scope for this system.
func (s *service) generateToken(e *employee.Employee) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  e.ID,
		"username": e.Username,
		"name":     e.Name,
		"role":     e.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func mapToResponse(e *employee.Employee) AuthResponse {
	return AuthResponse{
		ID:         e.ID,
		Username:   e.Username,
		Name:       e.Name,
		HourlyRate: e.HourlyRate,
		Role:       e.Role,
	}
}
