package models

// User represents the users table. Role is free text ("hospital" or
// "paramedic" in practice) and is never checked against allowed operations.
type User struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Username     string  `gorm:"uniqueIndex;not null;size:50" json:"username"`
	PasswordHash string  `gorm:"not null;size:255" json:"-"`
	DisplayName  string  `gorm:"size:100" json:"displayName"`
	Role         string  `gorm:"size:50" json:"role"`
	Phone        string  `gorm:"index;size:50" json:"phone"`
	Affiliation  string  `gorm:"size:255" json:"affiliation"`
	SessionToken *string `gorm:"size:512" json:"-"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}
