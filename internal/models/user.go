package models

// User is an account allowed to authenticate against the API. The password
// column holds a bcrypt hash, never plaintext.
type User struct {
	UUID      string `gorm:"primaryKey;size:36;column:uuid" json:"uuid"`
	Login     string `gorm:"not null;uniqueIndex" json:"login"`
	Password  string `gorm:"not null" json:"-"`
	FirstName string `gorm:"column:first_name;not null" json:"firstName"`
	LastName  string `gorm:"column:last_name;not null" json:"lastName"`
	Email     string `gorm:"default:''" json:"email,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// UserInfo is the public view of a user, safe to return to clients.
type UserInfo struct {
	Login     string `json:"login"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email,omitempty"`
}
