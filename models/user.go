package models

// User is read-only from the application's perspective: rows are seeded,
// never created or updated through the API.
type User struct {
	UserID    int64  `gorm:"column:userId;primaryKey" json:"userId"`
	UserEmail string `gorm:"column:userEmail;not null;type:varchar(100)" json:"userEmail"`
	Password  string `gorm:"column:password;not null" json:"-"`
	Name      string `gorm:"column:name;not null;type:varchar(100)" json:"name"`
}

// TableName keeps the legacy table name (user is a reserved word in most engines)
func (User) TableName() string {
	return "user_table"
}

// UserResponse represents the user record returned on login
type UserResponse struct {
	UserID    int64  `json:"userId"`
	UserEmail string `json:"userEmail"`
	Name      string `json:"name"`
}

// ToResponse converts a User model to a UserResponse
func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		UserID:    u.UserID,
		UserEmail: u.UserEmail,
		Name:      u.Name,
	}
}
