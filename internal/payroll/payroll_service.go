package payroll

import (
	"context"
	"errors"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/attendance"
	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/domain"
	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/employee"
	employeeerrors "github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/employee/errors"
	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/shared/apperror"
)

// TaxRate is the flat tax applied to gross pay.
const TaxRate = 0.10

type Service interface {
	// ComputeForEmployee derives the pay line from the employee's closed
	// attendance intervals within the range. Open sessions never contribute:
	// time is not paid until checked out. Zero qualifying attendance yields
	// an all-zero line, not an error.
	ComputeForEmployee(ctx context.Context, employeeID uint, from, to time.Time) (PayrollLine, error)

	// ComputeForAll returns one line per Employee-role identity, ordered by
	// ID ascending. Admin identities are excluded entirely.
	ComputeForAll(ctx context.Context, from, to time.Time) ([]PayrollLine, error)
}

type service struct {
	employees   employee.Repository
	attendances attendance.Repository
}

func NewService(employees employee.Repository, attendances attendance.Repository) Service {
	return &service{employees: employees, attendances: attendances}
}

func (s *service) ComputeForEmployee(ctx context.Context, employeeID uint, from, to time.Time) (PayrollLine, error) {
	e, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayrollLine{}, employeeerrors.ErrEmployeeNotFound
		}
		return PayrollLine{}, apperror.StorageError(err)
	}

	return s.computeLine(ctx, e, from, to)
}

func (s *service) ComputeForAll(ctx context.Context, from, to time.Time) ([]PayrollLine, error) {
	rows, err := s.employees.FindAllByRole(ctx, domain.RoleEmployee)
	if err != nil {
		return nil, apperror.StorageError(err)
	}

	lines := make([]PayrollLine, 0, len(rows))
	for i := range rows {
		line, err := s.computeLine(ctx, &rows[i], from, to)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (s *service) computeLine(ctx context.Context, e *employee.Employee, from, to time.Time) (PayrollLine, error) {
	start, endExcl := attendance.DayRange(from, to)

	records, err := s.attendances.FindClosedInRange(ctx, e.ID, start, endExcl)
	if err != nil {
		return PayrollLine{}, apperror.StorageError(err)
	}

	// Hours accumulate unrounded; only the monetary results are rounded.
	var totalHours float64
	for _, r := range records {
		totalHours += r.Hours()
	}

	gross := round2(e.HourlyRate * totalHours)
	tax := round2(gross * TaxRate)
	net := round2(gross - tax)

	return PayrollLine{
		EmployeeID: e.ID,
		Name:       e.Name,
		HourlyRate: e.HourlyRate,
		TotalHours: totalHours,
		GrossPay:   gross,
		Tax:        tax,
		NetPay:     net,
	}, nil
}

// round2 rounds to 2 decimal places, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
