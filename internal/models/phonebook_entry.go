package models

// PhonebookEntry maps a display name to a phone number.
type PhonebookEntry struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"not null" json:"name"`
	Number string `gorm:"not null" json:"number"`
}

func (PhonebookEntry) TableName() string {
	return "phonebook"
}
