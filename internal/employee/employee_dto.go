package employee

type CreateEmployeeRequest struct {
	Name       string  `json:"name" binding:"required"`
	Username   string  `json:"username" binding:"required"`
	Password   string  `json:"password" binding:"required"`
	HourlyRate float64 `json:"hourly_rate" binding:"gte=0"`
	Role       string  `json:"role" binding:"omitempty,oneof=Admin Employee"`
}

type UpdateEmployeeRequest struct {
	Name       string  `json:"name" binding:"required"`
	Username   string  `json:"username" binding:"required"`
	Password   string  `json:"password"` // empty keeps the stored credential
	HourlyRate float64 `json:"hourly_rate" binding:"gte=0"`
	Role       string  `json:"role" binding:"omitempty,oneof=Admin Employee"`
}

type EmployeeResponse struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Username   string  `json:"username"`
	HourlyRate float64 `json:"hourly_rate"`
	Role       string  `json:"role"`
}
