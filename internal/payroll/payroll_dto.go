package payroll

// PayrollLine is the computed pay figures for one employee over a date range.
type PayrollLine struct {
	EmployeeID uint    `json:"employee_id"`
	Name       string  `json:"name"`
	HourlyRate float64 `json:"hourly_rate"`
	TotalHours float64 `json:"total_hours"`
	GrossPay   float64 `json:"gross_pay"`
	Tax        float64 `json:"tax"`
	NetPay     float64 `json:"net_pay"`
}
