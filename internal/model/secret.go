package model

// Secret: запись хранилища пользователя. Content хранит ровно один вариант содержимого.
type Secret struct {
	ID          string  `gorm:"primaryKey;size:24" json:"id"`
	OwnerID     string  `gorm:"not null;index;size:24" json:"owner_id"` // ссылка на users.id
	Name        string  `gorm:"not null" json:"name"`
	Description *string `json:"description"`
	Content     Content `gorm:"type:text" json:"content"`
}

// Ключи частичного обновления секрета.
const (
	SecretFieldName        = "name"
	SecretFieldDescription = "description"
	SecretFieldContent     = "content"
)
