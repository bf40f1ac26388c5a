// Package storage выбирает реализацию хранилища по строке подключения.
package storage

import (
	"SecretKeeper/internal/repo"
	"SecretKeeper/internal/repo/mongorepo"
	"context"
	"fmt"
	"strings"
)

const (
	BackendMongo = "mongo"
	BackendSQL   = "sql"
)

// Store: набор репозиториев поверх одного подключения.
type Store struct {
	Backend string
	Users   repo.UserRepository
	Secrets repo.SecretRepository

	close func(ctx context.Context) error
}

// IsMongoDSN сообщает, что DSN указывает на MongoDB.
func IsMongoDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "mongodb://") || strings.HasPrefix(dsn, "mongodb+srv://")
}

// Open подключается к хранилищу. dbName используется только для MongoDB.
// Закрыть соединение нужно через Close.
func Open(ctx context.Context, dsn, dbName string) (*Store, error) {
	if IsMongoDSN(dsn) {
		client, db, err := mongorepo.Connect(ctx, dsn, dbName)
		if err != nil {
			return nil, err
		}
		return &Store{
			Backend: BackendMongo,
			Users:   mongorepo.NewUserRepository(db),
			Secrets: mongorepo.NewSecretRepository(db),
			close:   client.Disconnect,
		}, nil
	}

	gormDB, err := repo.InitDB(dsn)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	return &Store{
		Backend: BackendSQL,
		Users:   repo.NewUserRepository(gormDB),
		Secrets: repo.NewSecretRepository(gormDB),
		close:   func(context.Context) error { return sqlDB.Close() },
	}, nil
}

// Close закрывает подключение к хранилищу.
func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}
