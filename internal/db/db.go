package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bagdasarian/team-voting/internal/config"
	"github.com/bagdasarian/team-voting/internal/repository/document"
	"github.com/bagdasarian/team-voting/internal/repository/file"
	"github.com/bagdasarian/team-voting/internal/repository/mongodb"
	"github.com/bagdasarian/team-voting/internal/repository/sqldb"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	_ "modernc.org/sqlite"
)

const connectTimeout = 10 * time.Second

func NewPostgres(cfg *config.Config) (*sql.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.DBName,
		cfg.Database.SSLMode,
	)

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

func NewSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// один писатель, иначе SQLITE_BUSY при параллельных запросах
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	return db, nil
}

func NewMongo(ctx context.Context, cfg *config.Config) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return client, nil
}

// OpenBackend открывает хранилище документов по STORAGE_DRIVER.
// Возвращаемую функцию нужно вызвать при остановке.
func OpenBackend(ctx context.Context, cfg *config.Config) (document.Backend, func() error, error) {
	switch cfg.Storage.Driver {
	case config.DriverFile:
		backend, err := file.NewBackend(cfg.Storage.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return backend, func() error { return nil }, nil

	case config.DriverPostgres, config.DriverSQLite:
		var (
			database *sql.DB
			err      error
		)
		if cfg.Storage.Driver == config.DriverPostgres {
			database, err = NewPostgres(cfg)
		} else {
			database, err = NewSQLite(cfg.Storage.SQLitePath)
		}
		if err != nil {
			return nil, nil, err
		}

		backend := sqldb.NewBackend(database)
		if err := backend.CreateSchema(ctx); err != nil {
			database.Close()
			return nil, nil, err
		}
		return backend, database.Close, nil

	case config.DriverMongo:
		client, err := NewMongo(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		backend := mongodb.NewBackend(client.Database(cfg.Mongo.Database))
		return backend, func() error { return client.Disconnect(context.Background()) }, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func MustOpenBackend(ctx context.Context, cfg *config.Config) (document.Backend, func() error) {
	backend, closeFn, err := OpenBackend(ctx, cfg)
	if err != nil {
		panic(fmt.Sprintf("failed to open %s storage: %v", cfg.Storage.Driver, err))
	}
	return backend, closeFn
}
