package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	schema "trivia-api/database"
	"trivia-api/internal/config"
	"trivia-api/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// RunMigrations applies every pending up migration for driver.
func RunMigrations(db *sqlx.DB, driver string) error {
	if driver == config.DriverOracle {
		return runOracleScripts(context.Background(), db)
	}

	m, err := newMigrator(db, driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run up migrations: %w", err)
	}

	logger.Get().Info("Migrations completed successfully", zap.String("driver", driver))
	return nil
}

// RollbackMigrations reverts the last steps migrations, or all of them when
// steps is zero or negative.
func RollbackMigrations(db *sqlx.DB, driver string, steps int) error {
	if driver == config.DriverOracle {
		return rollbackOracleScripts(context.Background(), db, steps)
	}

	m, err := newMigrator(db, driver)
	if err != nil {
		return err
	}
	if steps > 0 {
		err = m.Steps(-steps)
	} else {
		err = m.Down()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run down migrations: %w", err)
	}

	logger.Get().Info("Rollback completed successfully", zap.String("driver", driver), zap.Int("steps", steps))
	return nil
}

// MigrationVersion reports the applied schema version. Version 0 means no
// migration has been applied.
func MigrationVersion(db *sqlx.DB, driver string) (uint, bool, error) {
	if driver == config.DriverOracle {
		v, err := oracleVersion(context.Background(), db)
		return v, false, err
	}

	m, err := newMigrator(db, driver)
	if err != nil {
		return 0, false, err
	}
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}

// newMigrator wraps the already open connection. The returned instance is
// never closed: Close would also close the shared *sql.DB.
func newMigrator(db *sqlx.DB, driver string) (*migrate.Migrate, error) {
	src, err := iofs.New(schema.Migrations, schema.MigrationsDir(driver))
	if err != nil {
		return nil, fmt.Errorf("could not read migrations for %s: %w", driver, err)
	}

	var target migratedb.Driver
	switch driver {
	case config.DriverPostgres:
		target, err = migratepgx.WithInstance(db.DB, &migratepgx.Config{})
	case config.DriverSQLite:
		target, err = migratesqlite.WithInstance(db.DB, &migratesqlite.Config{})
	default:
		return nil, fmt.Errorf("migrations are not supported for driver %q", driver)
	}
	if err != nil {
		return nil, fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, driver, target)
	if err != nil {
		return nil, fmt.Errorf("could not create migrator: %w", err)
	}
	return m, nil
}

// golang-migrate has no Oracle driver; the scripts are applied directly and
// tracked in a schema_migrations table of the same shape.

type script struct {
	version uint
	up      string
	down    string
}

func loadOracleScripts() ([]script, error) {
	dir := schema.MigrationsDir(config.DriverOracle)
	entries, err := fs.ReadDir(schema.Migrations, dir)
	if err != nil {
		return nil, fmt.Errorf("could not read migrations directory: %w", err)
	}

	byVersion := map[uint]*script{}
	for _, entry := range entries {
		name := entry.Name()
		prefix, _, ok := strings.Cut(name, "_")
		if !ok {
			continue
		}
		v, err := strconv.ParseUint(prefix, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid migration file name %s: %w", name, err)
		}
		content, err := fs.ReadFile(schema.Migrations, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("could not read migration file %s: %w", name, err)
		}

		s, ok := byVersion[uint(v)]
		if !ok {
			s = &script{version: uint(v)}
			byVersion[uint(v)] = s
		}
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			s.up = string(content)
		case strings.HasSuffix(name, ".down.sql"):
			s.down = string(content)
		}
	}

	scripts := make([]script, 0, len(byVersion))
	for _, s := range byVersion {
		scripts = append(scripts, *s)
	}
	sort.Slice(scripts, func(i, j int) bool { return scripts[i].version < scripts[j].version })
	return scripts, nil
}

// statements splits a script on ';' because go-ora executes one statement per call.
func statements(content string) []string {
	var out []string
	for _, stmt := range strings.Split(content, ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}

func ensureOracleVersionTable(ctx context.Context, db *sqlx.DB) error {
	var count int
	err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM user_tables WHERE table_name = 'SCHEMA_MIGRATIONS'`)
	if err != nil {
		return fmt.Errorf("could not check schema_migrations: %w", err)
	}
	if count > 0 {
		return nil
	}
	_, err = db.ExecContext(ctx, `CREATE TABLE schema_migrations (version NUMBER(19) PRIMARY KEY, dirty NUMBER(1) NOT NULL)`)
	if err != nil {
		return fmt.Errorf("could not create schema_migrations: %w", err)
	}
	return nil
}

func oracleVersion(ctx context.Context, db *sqlx.DB) (uint, error) {
	if err := ensureOracleVersionTable(ctx, db); err != nil {
		return 0, err
	}
	var version sql.NullInt64
	if err := db.GetContext(ctx, &version, `SELECT MAX(version) FROM schema_migrations`); err != nil {
		return 0, fmt.Errorf("could not read schema version: %w", err)
	}
	if !version.Valid {
		return 0, nil
	}
	return uint(version.Int64), nil
}

func runOracleScripts(ctx context.Context, db *sqlx.DB) error {
	current, err := oracleVersion(ctx, db)
	if err != nil {
		return err
	}
	scripts, err := loadOracleScripts()
	if err != nil {
		return err
	}

	for _, s := range scripts {
		if s.version <= current {
			continue
		}
		for _, stmt := range statements(s.up) {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("could not execute migration %d: %w", s.version, err)
			}
		}
		if _, err := db.ExecContext(ctx, db.Rebind(`INSERT INTO schema_migrations (version, dirty) VALUES (?, 0)`), s.version); err != nil {
			return fmt.Errorf("could not record migration %d: %w", s.version, err)
		}
		logger.Get().Info("Executed migration", zap.Uint("version", s.version))
	}
	return nil
}

func rollbackOracleScripts(ctx context.Context, db *sqlx.DB, steps int) error {
	current, err := oracleVersion(ctx, db)
	if err != nil {
		return err
	}
	scripts, err := loadOracleScripts()
	if err != nil {
		return err
	}

	reverted := 0
	for i := len(scripts) - 1; i >= 0; i-- {
		s := scripts[i]
		if s.version > current {
			continue
		}
		if steps > 0 && reverted == steps {
			break
		}
		for _, stmt := range statements(s.down) {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("could not revert migration %d: %w", s.version, err)
			}
		}
		if _, err := db.ExecContext(ctx, db.Rebind(`DELETE FROM schema_migrations WHERE version = ?`), s.version); err != nil {
			return fmt.Errorf("could not unrecord migration %d: %w", s.version, err)
		}
		logger.Get().Info("Reverted migration", zap.Uint("version", s.version))
		reverted++
	}
	return nil
}
