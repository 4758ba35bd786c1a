package database

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/PavaniTiago/readiness-survey-api/internal/config"
	"github.com/PavaniTiago/readiness-survey-api/internal/infrastructure/database/migrations"
	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// WAL + synchronous FULL: a commit is on disk before the write returns.
const sqlitePragmas = "_pragma=journal_mode(WAL)&_pragma=synchronous(FULL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"

// SetupDatabase abre o banco configurado, ajusta o pool e aplica as migrações.
// O *gorm.DB retornado é o único handle do processo; feche com Close.
func SetupDatabase(cfg config.Database, log *zap.Logger) (*gorm.DB, error) {
	dialector, err := openDialector(cfg)
	if err != nil {
		return nil, err
	}

	gormConfig := &gorm.Config{
		// Escritas usam transações explícitas no repositório
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
		Logger:                 logger.Default.LogMode(logger.Error),
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	switch cfg.Driver {
	case config.DriverSQLite:
		// Um único escritor por arquivo
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	default:
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(50)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	if err := RegisterCallbacks(db, log); err != nil {
		return nil, fmt.Errorf("failed to register callbacks: %w", err)
	}

	if err := migrations.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := migrations.AddIndexes(db); err != nil {
		return nil, fmt.Errorf("failed to add indexes: %w", err)
	}

	if err := migrations.OptimizePerformanceIndexes(db, log); err != nil {
		return nil, fmt.Errorf("failed to add optimized indexes: %w", err)
	}

	log.Info("database ready", zap.String("driver", cfg.Driver))
	return db, nil
}

// Close libera o handle aberto por SetupDatabase
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func openDialector(cfg config.Database) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return postgres.Open(cfg.URL), nil
	case config.DriverSQLite:
		dsn, err := sqliteDSN(cfg.URL)
		if err != nil {
			return nil, err
		}
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// sqliteDSN garante o diretório do arquivo e acrescenta os pragmas de durabilidade
func sqliteDSN(path string) (string, error) {
	file := path
	if i := strings.IndexByte(path, '?'); i >= 0 {
		file = path[:i]
	}

	if file != ":memory:" && !strings.HasPrefix(file, "file::memory:") {
		if dir := filepath.Dir(file); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return "", fmt.Errorf("failed to create data directory: %w", err)
			}
		}
	}

	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + sqlitePragmas, nil
}
