// Package pgtest starts a disposable PostgreSQL container with the school
// schema for integration tests.
package pgtest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"school/internal/adapters/out/postgres"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database is a migrated database running in a container.
type Database struct {
	Container *tcpostgres.PostgresContainer
	DB        *gorm.DB
}

// Start runs postgres:15-alpine and migrates the schema.
func Start(ctx context.Context) (*Database, error) {
	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(gormpostgres.Open(connStr), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err = postgres.Migrate(ctx, db); err != nil {
		return nil, err
	}

	return &Database{Container: container, DB: db}, nil
}

// Truncate empties every table and resets identity sequences.
func (d *Database) Truncate() error {
	tables := make([]string, 0, len(postgres.Models()))
	for _, model := range postgres.Models() {
		stmt := &gorm.Statement{DB: d.DB}
		if err := stmt.Parse(model); err != nil {
			return err
		}
		tables = append(tables, stmt.Schema.Table)
	}
	return d.DB.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", strings.Join(tables, ", "))).Error
}

// Terminate stops the container.
func (d *Database) Terminate(ctx context.Context) error {
	if d == nil || d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}
