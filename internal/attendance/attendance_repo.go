package attendance

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// RangeRow is a ledger entry joined with the employee display name for the
// cross-employee listing. EmployeeName is empty for orphaned rows whose
// identity has been deleted.
type RangeRow struct {
	ID           uint       `gorm:"column:id"`
	EmployeeID   uint       `gorm:"column:employee_id"`
	EmployeeName string     `gorm:"column:employee_name"`
	CheckIn      time.Time  `gorm:"column:check_in"`
	CheckOut     *time.Time `gorm:"column:check_out"`
}

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, a *Attendance) error
	FindOpen(ctx context.Context, employeeID uint) (*Attendance, error)
	CloseByID(ctx context.Context, id uint, at time.Time) (int64, error)
	CountOpen(ctx context.Context, employeeID uint) (int64, error)
	FindAllInRange(ctx context.Context, employeeID *uint, from, toExcl time.Time) ([]RangeRow, error)
	FindClosedInRange(ctx context.Context, employeeID uint, from, toExcl time.Time) ([]Attendance, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindOpen(ctx context.Context, employeeID uint) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("check_out IS NULL").
		First(&a).Error
	return &a, err
}

// CloseByID stamps the check-out time, conditioned on the record still being
// open so a concurrent close cannot land twice. Returns rows affected.
func (r *repository) CloseByID(ctx context.Context, id uint, at time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&Attendance{}).
		Where("id = ?", id).
		Where("check_out IS NULL").
		Update("check_out", at)
	return res.RowsAffected, res.Error
}

func (r *repository) CountOpen(ctx context.Context, employeeID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Attendance{}).
		Where("employee_id = ?", employeeID).
		Where("check_out IS NULL").
		Count(&n).Error
	return n, err
}

func (r *repository) FindAllInRange(ctx context.Context, employeeID *uint, from, toExcl time.Time) ([]RangeRow, error) {
	q := r.db.WithContext(ctx).
		Table("attendances AS a").
		Select("a.id, a.employee_id, COALESCE(e.name, '') AS employee_name, a.check_in, a.check_out").
		Joins("LEFT JOIN employees e ON e.id = a.employee_id").
		Where("a.check_in >= ? AND a.check_in < ?", from, toExcl).
		Order("a.check_in DESC")
	if employeeID != nil {
		q = q.Where("a.employee_id = ?", *employeeID)
	}

	var rows []RangeRow
	err := q.Scan(&rows).Error
	return rows, err
}

func (r *repository) FindClosedInRange(ctx context.Context, employeeID uint, from, toExcl time.Time) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("check_out IS NOT NULL").
		Where("check_in >= ? AND check_in < ?", from, toExcl).
		Order("check_in ASC").
		Find(&rows).Error
	return rows, err
}
