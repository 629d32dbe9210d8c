package db

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/terraincognita07/showerbuddy/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DefaultURI points at a local Postgres database named "testing".
const DefaultURI = "postgresql:///testing"

const sqlitePragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

type Options struct {
	// URI selects the store: postgres:// and postgresql:// use Postgres,
	// sqlite://path, file:path or a bare path use SQLite.
	URI string
	// Echo logs every statement.
	Echo bool
}

func DefaultOptions() Options {
	return Options{URI: DefaultURI, Echo: true}
}

// Open connects to the store and brings the schema up to date.
func Open(opts Options) (*gorm.DB, error) {
	uri := strings.TrimSpace(opts.URI)
	if uri == "" {
		uri = DefaultURI
	}

	dialector, err := dialectorFor(uri)
	if err != nil {
		return nil, err
	}

	database, err := gorm.Open(dialector, &gorm.Config{
		Logger:               newStatementLogger(opts.Echo),
		FullSaveAssociations: false,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dialector.Name(), err)
	}

	if err := database.AutoMigrate(models.All()...); err != nil {
		_ = Close(database)
		return nil, fmt.Errorf("migrate models: %w", err)
	}
	if err := applyEmbeddedMigrations(database); err != nil {
		_ = Close(database)
		return nil, fmt.Errorf("apply embedded migrations: %w", err)
	}

	return database, nil
}

// Close releases the connection pool behind database.
func Close(database *gorm.DB) error {
	sqlDB, err := database.DB()
	if err != nil {
		return fmt.Errorf("load sql db: %w", err)
	}
	return sqlDB.Close()
}

func dialectorFor(uri string) (gorm.Dialector, error) {
	switch {
	case strings.HasPrefix(uri, "postgres://"), strings.HasPrefix(uri, "postgresql://"):
		return postgres.Open(uri), nil
	case strings.HasPrefix(uri, "sqlite://"):
		return sqliteDialector(strings.TrimPrefix(uri, "sqlite://"))
	case strings.Contains(uri, "://"):
		return nil, fmt.Errorf("unsupported database uri scheme in %q", uri)
	default:
		return sqliteDialector(uri)
	}
}

func sqliteDialector(path string) (gorm.Dialector, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}

	filePath := strings.TrimPrefix(path, "file:")
	if index := strings.Index(filePath, "?"); index >= 0 {
		filePath = filePath[:index]
	}
	if filePath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	separator := "?"
	if strings.Contains(path, "?") {
		separator = "&"
	}
	return sqlite.Open(path + separator + sqlitePragmas), nil
}

func newStatementLogger(echo bool) gormlogger.Interface {
	level := gormlogger.Warn
	if echo {
		level = gormlogger.Info
	}

	return gormlogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}
