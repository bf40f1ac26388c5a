package model

// User: учётная запись владельца секретов.
type User struct {
	ID       string `gorm:"primaryKey;size:24" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	LastName string `gorm:"not null" json:"last_name"`
	Email    string `gorm:"not null;uniqueIndex" json:"email"`
	Password string `gorm:"not null" json:"-"` // bcrypt-хеш
}

// Ключи частичного обновления пользователя; совпадают с колонками и полями документа.
const (
	UserFieldName     = "name"
	UserFieldLastName = "last_name"
	UserFieldEmail    = "email"
	UserFieldPassword = "password"
)
