package repo

import (
	"SecretKeeper/internal/model"
	"errors"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// InitDB открывает реляционную БД по DSN и выполняет миграции моделей.
//
//	postgres://..., postgresql://..., "host=... dbname=..."   PostgreSQL
//	sqlite:<dsn> или путь к файлу                             SQLite (modernc, без cgo)
func InitDB(dsn string) (*gorm.DB, error) {
	dial, err := Dialector(dsn)
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(dial, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Secret{}); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	return db, nil
}

// Dialector подбирает драйвер gorm по строке подключения.
func Dialector(dsn string) (gorm.Dialector, error) {
	switch {
	case dsn == "":
		return nil, errors.New("empty database dsn")
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"), strings.Contains(dsn, "host="):
		return postgres.Open(dsn), nil
	case strings.HasPrefix(dsn, "sqlite:"):
		return gormsqlite.Dialector{DriverName: "sqlite", DSN: strings.TrimPrefix(dsn, "sqlite:")}, nil
	case strings.Contains(dsn, "://"):
		return nil, fmt.Errorf("unsupported database dsn scheme: %q", dsn)
	}
	return gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}, nil
}

// translate приводит ошибки gorm к ошибкам пакета.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), strings.Contains(err.Error(), "UNIQUE constraint failed"):
		// modernc/sqlite не переводится диалектом gorm, поэтому проверяем текст
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	}
	return err
}
