package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// NewID выдаёт идентификатор в формате ObjectID (24 hex-символа) для любых хранилищ.
func NewID() string {
	return primitive.NewObjectID().Hex()
}

// ValidID проверяет формат идентификатора.
func ValidID(id string) bool {
	return primitive.IsValidObjectID(id)
}
