package attendance

import (
	"math"
	"time"
)

type AttendanceResponse struct {
	ID           uint     `json:"id"`
	EmployeeID   uint     `json:"employee_id"`
	EmployeeName string   `json:"employee_name,omitempty"`
	CheckIn      string   `json:"check_in"`
	CheckOut     *string  `json:"check_out,omitempty"`
	Hours        *float64 `json:"hours,omitempty"`
}

type StatusResponse struct {
	CheckedIn bool `json:"checked_in"`
}

func mapToResponse(a Attendance, employeeName string) AttendanceResponse {
	resp := AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: employeeName,
		CheckIn:      a.CheckIn.Format(time.RFC3339),
	}
	if a.CheckOut != nil {
		v := a.CheckOut.Format(time.RFC3339)
		resp.CheckOut = &v
		h := math.Round(a.Hours()*100) / 100
		resp.Hours = &h
	}
	return resp
}
