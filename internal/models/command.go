package models

// Command is an auxiliary catalog entity with no associations.
type Command struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Title   string `gorm:"not null" json:"title"`
	Remarks string `gorm:"not null;default:''" json:"remarks"`
}

func (Command) TableName() string {
	return "commands"
}
