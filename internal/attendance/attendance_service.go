package attendance

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	attendanceerrors "github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/attendance/errors"
	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/shared/apperror"
	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/shared/contextutil"
)

type Service interface {
	CheckIn(ctx context.Context, employeeID uint) (AttendanceResponse, error)
	CheckOut(ctx context.Context, employeeID uint) (AttendanceResponse, error)
	IsOpen(ctx context.Context, employeeID uint) (bool, error)
	ListByRange(ctx context.Context, employeeID *uint, from, to time.Time) ([]AttendanceResponse, error)
}

type service struct {
	db   *gorm.DB
	repo Repository
}

func NewService(db *gorm.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

// CheckIn opens a new session. The open-session check and the insert run in
// one transaction so two concurrent check-ins cannot both observe "no open
// session" and create duplicate open records.
func (s *service) CheckIn(ctx context.Context, employeeID uint) (AttendanceResponse, error) {
	var row Attendance

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		_, err := qtx.FindOpen(ctx, employeeID)
		if err == nil {
			return attendanceerrors.ErrAlreadyCheckedIn
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.StorageError(err)
		}

		row = Attendance{
			EmployeeID: employeeID,
			CheckIn:    time.Now(),
		}
		if err := qtx.Create(ctx, &row); err != nil {
			return apperror.StorageError(err)
		}
		return nil
	})
	if err != nil {
		return AttendanceResponse{}, err
	}

	contextutil.GetLogger(ctx, nil).Info("checked in",
		zap.Uint("employee_id", employeeID),
		zap.Uint("attendance_id", row.ID),
	)
	return mapToResponse(row, ""), nil
}

// CheckOut closes the unique open session. The update is conditioned on the
// record still being open, so a racing second check-out fails cleanly
// instead of double-closing.
func (s *service) CheckOut(ctx context.Context, employeeID uint) (AttendanceResponse, error) {
	var row Attendance

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		open, err := qtx.FindOpen(ctx, employeeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return attendanceerrors.ErrNoOpenSession
			}
			return apperror.StorageError(err)
		}

		now := time.Now()
		affected, err := qtx.CloseByID(ctx, open.ID, now)
		if err != nil {
			return apperror.StorageError(err)
		}
		if affected == 0 {
			return attendanceerrors.ErrNoOpenSession
		}

		row = *open
		row.CheckOut = &now
		return nil
	})
	if err != nil {
		return AttendanceResponse{}, err
	}

	contextutil.GetLogger(ctx, nil).Info("checked out",
		zap.Uint("employee_id", employeeID),
		zap.Float64("hours", row.Hours()),
	)
	return mapToResponse(row, ""), nil
}

func (s *service) IsOpen(ctx context.Context, employeeID uint) (bool, error) {
	n, err := s.repo.CountOpen(ctx, employeeID)
	if err != nil {
		return false, apperror.StorageError(err)
	}
	return n > 0, nil
}

// ListByRange returns all records, open or closed, whose check-in falls
// between the start of the from day and the end of the to day, newest first.
// A nil employeeID spans all employees with the display name joined in.
func (s *service) ListByRange(ctx context.Context, employeeID *uint, from, to time.Time) ([]AttendanceResponse, error) {
	start, endExcl := DayRange(from, to)

	rows, err := s.repo.FindAllInRange(ctx, employeeID, start, endExcl)
	if err != nil {
		return nil, apperror.StorageError(err)
	}

	resp := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		resp[i] = mapToResponse(Attendance{
			ID:         r.ID,
			EmployeeID: r.EmployeeID,
			CheckIn:    r.CheckIn,
			CheckOut:   r.CheckOut,
		}, r.EmployeeName)
	}
	return resp, nil
}

// DayRange widens (from, to) to calendar-day bounds in local time: the range
// is inclusive of the from day's start and runs through the end of the to
// day. The upper bound is exclusive.
func DayRange(from, to time.Time) (start, endExcl time.Time) {
	start = startOfDay(from)
	endExcl = startOfDay(to).AddDate(0, 0, 1)
	return start, endExcl
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
