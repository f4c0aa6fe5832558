package entities

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `json:"name"`
	Phone    string `gorm:"uniqueIndex" json:"phone"`
	Password string `json:"-"`

	Timestamp
}
