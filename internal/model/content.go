package model

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// ContentType: дискриминатор варианта содержимого секрета.
type ContentType string

const (
	ContentLogin      ContentType = "login"
	ContentCreditCard ContentType = "credit_card"
	ContentFile       ContentType = "file"
)

var ErrUnknownContentType = errors.New("unknown content type")

// SecretContent реализуют все варианты содержимого секрета.
type SecretContent interface {
	ContentType() ContentType
}

// LoginContent: учётные данные для сайтов.
type LoginContent struct {
	Email    string   `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Password string   `json:"password,omitempty" bson:"password,omitempty"`
	Sites    []string `json:"sites,omitempty" bson:"sites,omitempty" validate:"omitempty,dive,http_url"`
}

func (*LoginContent) ContentType() ContentType { return ContentLogin }

// CreditCardContent: данные банковской карты.
type CreditCardContent struct {
	FullName     string `json:"full_name,omitempty" bson:"full_name,omitempty"`
	CardNumber   string `json:"card_number,omitempty" bson:"card_number,omitempty"`
	ExpireDate   string `json:"expire_date,omitempty" bson:"expire_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	SecurityCode string `json:"security_code,omitempty" bson:"security_code,omitempty"`
	PinNumber    string `json:"pin_number,omitempty" bson:"pin_number,omitempty"`
}

func (*CreditCardContent) ContentType() ContentType { return ContentCreditCard }

// FileContent: ссылка на файл.
type FileContent struct {
	FilePath string `json:"file_path,omitempty" bson:"file_path,omitempty"`
}

func (*FileContent) ContentType() ContentType { return ContentFile }

// Content: обёртка над вариантом содержимого. В JSON и BSON кодируется объектом
// с полем "type", в SQL JSON-текстом. Пустая обёртка (Data == nil) означает отсутствие содержимого.
type Content struct {
	Data SecretContent
}

// NewContent возвращает пустой вариант для дискриминатора.
func NewContent(t ContentType) (SecretContent, error) {
	switch t {
	case ContentLogin:
		return &LoginContent{}, nil
	case ContentCreditCard:
		return &CreditCardContent{}, nil
	case ContentFile:
		return &FileContent{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownContentType, t)
}

// IsZero сообщает, что содержимое не задано.
func (c Content) IsZero() bool { return c.Data == nil }

// Type возвращает дискриминатор или пустую строку.
func (c Content) Type() ContentType {
	if c.Data == nil {
		return ""
	}
	return c.Data.ContentType()
}

// envelope разворачивает вариант в плоскую структуру с полем type.
func (c Content) envelope() (any, error) {
	switch v := c.Data.(type) {
	case *LoginContent:
		return struct {
			Type         ContentType `json:"type" bson:"type"`
			LoginContent `bson:",inline"`
		}{ContentLogin, *v}, nil
	case *CreditCardContent:
		return struct {
			Type              ContentType `json:"type" bson:"type"`
			CreditCardContent `bson:",inline"`
		}{ContentCreditCard, *v}, nil
	case *FileContent:
		return struct {
			Type        ContentType `json:"type" bson:"type"`
			FileContent `bson:",inline"`
		}{ContentFile, *v}, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnknownContentType, c.Data)
}

func (c Content) MarshalJSON() ([]byte, error) {
	if c.Data == nil {
		return []byte("null"), nil
	}
	env, err := c.envelope()
	if err != nil {
		return nil, err
	}
	return json.Marshal(env)
}

func (c *Content) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		c.Data = nil
		return nil
	}
	var head struct {
		Type ContentType `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}
	v, err := NewContent(head.Type)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return err
	}
	c.Data = v
	return nil
}

func (c Content) MarshalBSON() ([]byte, error) {
	if c.Data == nil {
		return bson.Marshal(bson.D{})
	}
	env, err := c.envelope()
	if err != nil {
		return nil, err
	}
	return bson.Marshal(env)
}

func (c *Content) UnmarshalBSON(data []byte) error {
	var head struct {
		Type ContentType `bson:"type"`
	}
	if err := bson.Unmarshal(data, &head); err != nil {
		return err
	}
	if head.Type == "" {
		c.Data = nil
		return nil
	}
	v, err := NewContent(head.Type)
	if err != nil {
		return err
	}
	if err := bson.Unmarshal(data, v); err != nil {
		return err
	}
	c.Data = v
	return nil
}

// Value хранит содержимое в SQL как JSON-текст.
func (c Content) Value() (driver.Value, error) {
	if c.Data == nil {
		return nil, nil
	}
	b, err := c.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (c *Content) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		c.Data = nil
		return nil
	case []byte:
		return c.UnmarshalJSON(v)
	case string:
		return c.UnmarshalJSON([]byte(v))
	}
	return fmt.Errorf("content: unsupported scan source %T", src)
}
