package database

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/daygrid/calendar-backend/internal/config"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies any pending schema migrations. It uses a short-lived
// database/sql connection since goose does not speak the pgx pool directly.
func Migrate() error {
	db, err := sql.Open("pgx", config.PostgresURL())
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}
