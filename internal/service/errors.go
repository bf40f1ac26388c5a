package service

import (
	"SecretKeeper/internal/repo"
	"errors"
)

var (
	// ErrInvalidCredentials: неверный email или пароль (без уточнения, что именно).
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken: токен не прошёл проверку или пользователь из токена не найден.
	ErrInvalidToken = errors.New("invalid token")
	// ErrEmailTaken: email уже занят другим пользователем.
	ErrEmailTaken = errors.New("email already registered")

	ErrNotFound  = repo.ErrNotFound
	ErrInvalidID = repo.ErrInvalidID
)
