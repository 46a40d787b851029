package attendance

import (
	"time"
)

// Attendance is one ledger entry. A nil CheckOut means the employee is
// currently clocked in (an "open session"). Rows are append-only except for
// the single CheckOut mutation that closes them; nothing deletes them.
type Attendance struct {
	ID         uint       `gorm:"column:id;primaryKey"`
	EmployeeID uint       `gorm:"column:employee_id;not null;index"`
	CheckIn    time.Time  `gorm:"column:check_in;not null;index"`
	CheckOut   *time.Time `gorm:"column:check_out"`
}

func (Attendance) TableName() string {
	return "attendances"
}

// Hours returns the worked duration in fractional hours for a closed record,
// or 0 while the session is still open.
func (a Attendance) Hours() float64 {
	if a.CheckOut == nil {
		return 0
	}
	return a.CheckOut.Sub(a.CheckIn).Hours()
}
