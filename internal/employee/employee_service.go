package employee

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/domain"
	employeeerrors "github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/employee/errors"
	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/shared/apperror"
	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/shared/contextutil"
)

// PasswordHasher produces the one-way credential digest stored on the
// identity. Implemented by the auth package; wired in at build time.
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

type Service interface {
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id uint) (EmployeeResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, id uint, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo   Repository
	hasher PasswordHasher
}

func NewService(repo Repository, hasher PasswordHasher) Service {
	return &service{repo: repo, hasher: hasher}
}

// GetAll returns the employee roster. Admin identities are never listed:
// they are not payroll subjects.
func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	rows, err := s.repo.FindAllByRole(ctx, domain.RoleEmployee)
	if err != nil {
		return nil, apperror.StorageError(err)
	}

	resp := make([]EmployeeResponse, len(rows))
	for i, e := range rows {
		resp[i] = mapToResponse(e)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (EmployeeResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return EmployeeResponse{}, apperror.StorageError(err)
	}
	return mapToResponse(*e), nil
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	l := contextutil.GetLogger(ctx, nil)

	if req.HourlyRate < 0 {
		return EmployeeResponse{}, employeeerrors.ErrInvalidHourlyRate
	}
	role := req.Role
	if role == "" {
		role = domain.RoleEmployee
	}
	if !domain.ValidRole(role) {
		return EmployeeResponse{}, employeeerrors.ErrInvalidRole
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		l.Error("failed to hash password", zap.Error(err))
		return EmployeeResponse{}, apperror.ErrInternal
	}

	e := &Employee{
		Name:         req.Name,
		Username:     req.Username,
		PasswordHash: hash,
		HourlyRate:   req.HourlyRate,
		Role:         role,
	}

	if err := s.repo.Create(ctx, e); err != nil {
		if IsDuplicate(err) {
			return EmployeeResponse{}, employeeerrors.ErrDuplicateUsername
		}
		l.Error("failed to create employee", zap.Error(err))
		return EmployeeResponse{}, apperror.StorageError(err)
	}

	l.Info("employee created",
		zap.Uint("employee_id", e.ID),
		zap.String("username", e.Username),
	)
	return mapToResponse(*e), nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	l := contextutil.GetLogger(ctx, nil)

	if req.HourlyRate < 0 {
		return EmployeeResponse{}, employeeerrors.ErrInvalidHourlyRate
	}

	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return EmployeeResponse{}, apperror.StorageError(err)
	}

	e.Name = req.Name
	e.Username = req.Username
	e.HourlyRate = req.HourlyRate
	if req.Role != "" {
		if !domain.ValidRole(req.Role) {
			return EmployeeResponse{}, employeeerrors.ErrInvalidRole
		}
		e.Role = req.Role
	}

	// An absent password keeps the stored credential unchanged.
	if req.Password != "" {
		hash, err := s.hasher.Hash(req.Password)
		if err != nil {
			l.Error("failed to hash password", zap.Error(err))
			return EmployeeResponse{}, apperror.ErrInternal
		}
		e.PasswordHash = hash
	}

	if err := s.repo.Update(ctx, e); err != nil {
		if IsDuplicate(err) {
			return EmployeeResponse{}, employeeerrors.ErrDuplicateUsername
		}
		return EmployeeResponse{}, apperror.StorageError(err)
	}

	return mapToResponse(*e), nil
}

// Delete removes the identity only. Attendance rows stay behind as orphaned
// history; see the ledger for the listing behavior.
func (s *service) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return employeeerrors.ErrEmployeeNotFound
		}
		return apperror.StorageError(err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return apperror.StorageError(err)
	}

	contextutil.GetLogger(ctx, nil).Info("employee deleted", zap.Uint("employee_id", id))
	return nil
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		Username:   e.Username,
		HourlyRate: e.HourlyRate,
		Role:       e.Role,
	}
}
