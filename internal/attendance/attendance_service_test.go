package attendance_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/attendance"
	attendanceerrors "github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/attendance/errors"
	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/domain"
	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/employee"
	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/shared/testutil"
)

func newService(t *testing.T, name string) (attendance.Service, *gorm.DB) {
	t.Helper()
	db := testutil.OpenInMemoryDB(t, name, &employee.Employee{}, &attendance.Attendance{})
	return attendance.NewService(db, attendance.NewRepository(db)), db
}

func seedEmployee(t *testing.T, db *gorm.DB, username string) employee.Employee {
	t.Helper()
	e := employee.Employee{
		Name:       "Worker " + username,
		Username:   username,
		HourlyRate: 100,
		Role:       domain.RoleEmployee,
	}
	require.NoError(t, db.Create(&e).Error)
	return e
}

func TestCheckInCheckOutFlow(t *testing.T) {
	svc, db := newService(t, "attendance_flow")
	e := seedEmployee(t, db, "jane")
	ctx := context.Background()

	open, err := svc.IsOpen(ctx, e.ID)
	require.NoError(t, err)
	assert.False(t, open)

	in, err := svc.CheckIn(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, e.ID, in.EmployeeID)
	assert.Nil(t, in.CheckOut)

	open, err = svc.IsOpen(ctx, e.ID)
	require.NoError(t, err)
	assert.True(t, open)

	out, err := svc.CheckOut(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, in.ID, out.ID)
	require.NotNil(t, out.CheckOut)
	require.NotNil(t, out.Hours)
	assert.GreaterOrEqual(t, *out.Hours, 0.0)

	open, err = svc.IsOpen(ctx, e.ID)
	require.NoError(t, err)
	assert.False(t, open)
}

func TestCheckIn_RejectsSecondOpenSession(t *testing.T) {
	svc, db := newService(t, "attendance_double_in")
	e := seedEmployee(t, db, "jane")
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, e.ID)
	require.NoError(t, err)

	_, err = svc.CheckIn(ctx, e.ID)
	assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyCheckedIn)

	// Still exactly one open record.
	var n int64
	require.NoError(t, db.Model(&attendance.Attendance{}).
		Where("employee_id = ? AND check_out IS NULL", e.ID).
		Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestCheckOut_WithoutOpenSession(t *testing.T) {
	svc, db := newService(t, "attendance_no_open")
	e := seedEmployee(t, db, "jane")
	ctx := context.Background()

	_, err := svc.CheckOut(ctx, e.ID)
	assert.ErrorIs(t, err, attendanceerrors.ErrNoOpenSession)

	// A closed session does not satisfy a second check-out either.
	_, err = svc.CheckIn(ctx, e.ID)
	require.NoError(t, err)
	_, err = svc.CheckOut(ctx, e.ID)
	require.NoError(t, err)
	_, err = svc.CheckOut(ctx, e.ID)
	assert.ErrorIs(t, err, attendanceerrors.ErrNoOpenSession)
}

func TestCheckIn_ScopedPerEmployee(t *testing.T) {
	svc, db := newService(t, "attendance_scoped")
	jane := seedEmployee(t, db, "jane")
	bob := seedEmployee(t, db, "bob")
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, jane.ID)
	require.NoError(t, err)

	// One employee's open session never blocks another's.
	_, err = svc.CheckIn(ctx, bob.ID)
	require.NoError(t, err)
}

func TestListByRange(t *testing.T) {
	svc, db := newService(t, "attendance_range")
	jane := seedEmployee(t, db, "jane")
	bob := seedEmployee(t, db, "bob")
	ctx := context.Background()

	day := func(d int, hour int) time.Time {
		return time.Date(2026, time.March, d, hour, 0, 0, 0, time.Local)
	}
	closedAt := func(t time.Time) *time.Time { return &t }

	rows := []attendance.Attendance{
		{EmployeeID: jane.ID, CheckIn: day(1, 9), CheckOut: closedAt(day(1, 17))},
		{EmployeeID: jane.ID, CheckIn: day(2, 9), CheckOut: closedAt(day(2, 13))},
		{EmployeeID: bob.ID, CheckIn: day(2, 10), CheckOut: closedAt(day(2, 18))},
		{EmployeeID: jane.ID, CheckIn: day(3, 9)}, // open, still listed
		{EmployeeID: jane.ID, CheckIn: day(8, 9), CheckOut: closedAt(day(8, 17))},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}

	t.Run("single employee, day bounds inclusive", func(t *testing.T) {
		got, err := svc.ListByRange(ctx, &jane.ID, day(1, 23), day(3, 0))
		require.NoError(t, err)
		require.Len(t, got, 3)
		// Newest first.
		assert.Equal(t, day(3, 9).Format(time.RFC3339), got[0].CheckIn)
		assert.Nil(t, got[0].CheckOut)
		assert.Equal(t, day(2, 9).Format(time.RFC3339), got[1].CheckIn)
		assert.Equal(t, day(1, 9).Format(time.RFC3339), got[2].CheckIn)
	})

	t.Run("all employees with names", func(t *testing.T) {
		got, err := svc.ListByRange(ctx, nil, day(2, 0), day(2, 0))
		require.NoError(t, err)
		require.Len(t, got, 2)
		names := []string{got[0].EmployeeName, got[1].EmployeeName}
		assert.Contains(t, names, "Worker jane")
		assert.Contains(t, names, "Worker bob")
	})

	t.Run("orphaned rows keep a blank name", func(t *testing.T) {
		require.NoError(t, db.Delete(&employee.Employee{}, bob.ID).Error)

		got, err := svc.ListByRange(ctx, nil, day(2, 0), day(2, 0))
		require.NoError(t, err)
		require.Len(t, got, 2)

		var orphan *attendance.AttendanceResponse
		for i := range got {
			if got[i].EmployeeID == bob.ID {
				orphan = &got[i]
			}
		}
		require.NotNil(t, orphan)
		assert.Empty(t, orphan.EmployeeName)
	})

	t.Run("empty range", func(t *testing.T) {
		got, err := svc.ListByRange(ctx, &jane.ID, day(4, 0), day(5, 0))
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestDayRange(t *testing.T) {
	from := time.Date(2026, time.March, 1, 15, 30, 0, 0, time.Local)
	to := time.Date(2026, time.March, 3, 8, 0, 0, 0, time.Local)

	start, endExcl := attendance.DayRange(from, to)
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2026, time.March, 4, 0, 0, 0, 0, time.Local), endExcl)

	// A single-day range covers that whole day.
	start, endExcl = attendance.DayRange(from, from)
	assert.Equal(t, 24*time.Hour, endExcl.Sub(start))
}
