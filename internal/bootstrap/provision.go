package bootstrap

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/attendance"
	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/auth"
	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/domain"
	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/employee"
)

// Default administrator credential, created on first run. Operators are
// expected to change it after the first login.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
)

// Provision ensures the persistent schema exists and that a default
// administrator identity is present. Idempotent: safe to call on every
// startup; a second run finds the admin row and does nothing.
func Provision(ctx context.Context, db *gorm.DB, hasher auth.PasswordHasher, audit AuditLogger) error {
	if err := db.WithContext(ctx).AutoMigrate(&employee.Employee{}, &attendance.Attendance{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}

	repo := employee.NewRepository(db)

	n, err := repo.CountByUsername(ctx, DefaultAdminUsername)
	if err != nil {
		return fmt.Errorf("check default admin: %w", err)
	}
	if n > 0 {
		return nil
	}

	hash, err := hasher.Hash(DefaultAdminPassword)
	if err != nil {
		return fmt.Errorf("hash default admin credential: %w", err)
	}

	admin := &employee.Employee{
		Name:         "Admin",
		Username:     DefaultAdminUsername,
		PasswordHash: hash,
		HourlyRate:   0, // the default administrator is not a payroll subject
		Role:         domain.RoleAdmin,
	}
	if err := repo.Create(ctx, admin); err != nil {
		if employee.IsDuplicate(err) {
			// Lost a first-run race to another process; the admin exists.
			return nil
		}
		return fmt.Errorf("create default admin: %w", err)
	}

	if audit != nil {
		audit.Log(ctx, AuditLog{
			Action:  "DEFAULT_ADMIN_CREATED",
			Message: "Default administrator identity provisioned",
			Meta: map[string]any{
				"username": DefaultAdminUsername,
			},
		})
	}
	return nil
}
