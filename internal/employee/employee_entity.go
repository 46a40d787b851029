package employee

// Employee is an identity record: an employee or an administrator. The
// password hash is write-only and never serialized back to callers.
type Employee struct {
	ID           uint    `gorm:"column:id;primaryKey" json:"id"`
	Name         string  `gorm:"column:name;not null" json:"name"`
	Username     string  `gorm:"column:username;uniqueIndex;not null" json:"username"`
	PasswordHash string  `gorm:"column:password_hash;not null" json:"-"`
	HourlyRate   float64 `gorm:"column:hourly_rate;not null;default:0" json:"hourly_rate"`
	Role         string  `gorm:"column:role;not null;default:'Employee'" json:"role"`
}

func (Employee) TableName() string {
	return "employees"
}
