package models

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB is the database used by the backend.
var DB *gorm.DB

type FrugalContext string

const (
	DBContextURL FrugalContext = "frugal-backend-url"
)

// Connect opens the database identified by the connection string,
// migrates the schema and configures the connection pool.
//
// Supported connection strings are
//   - sqlite://<path>, a bare file path or :memory:
//   - postgres://… and postgresql://…
//   - mysql://<go-sql-driver DSN>
func Connect(dsn string) error {
	dialector, isSQLite, err := openDialector(dsn)
	if err != nil {
		return err
	}

	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &queryLogger{
			fallback:      log.Logger,
			slowThreshold: slowQueryThreshold,
		},
	}

	db, err := gorm.Open(dialector, config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	if isSQLite {
		// This is done to prevent SQLITE_BUSY errors.
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetMaxOpenConns(1)
	} else {
		// Get new connections after one hour
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	for name, processor := range map[string]interface {
		Register(string, func(*gorm.DB)) error
	}{
		"query":  db.Callback().Query().After("*"),
		"create": db.Callback().Create().After("*"),
		"update": db.Callback().Update().After("*"),
		"delete": db.Callback().Delete().After("*"),
	} {
		err = processor.Register(fmt.Sprintf("frugal:after_%s", name), errorCallback)
		if err != nil {
			return err
		}
	}

	// Set the exported variable
	DB = db

	return nil
}

// openDialector selects the gorm dialector for the connection string.
//
// The second return value is true if the database is SQLite.
func openDialector(dsn string) (gorm.Dialector, bool, error) {
	scheme, rest, found := strings.Cut(dsn, "://")
	if !found {
		return sqliteDialector(dsn)
	}

	switch scheme {
	case "sqlite":
		return sqliteDialector(rest)
	case "postgres", "postgresql":
		return postgres.Open(dsn), false, nil
	case "mysql":
		rest, err := mysqlDSN(rest)
		if err != nil {
			return nil, false, err
		}
		return mysql.Open(rest), false, nil
	}

	return nil, false, fmt.Errorf("%w: %s", ErrUnsupportedDSN, scheme)
}

// mysqlDSN enables parseTime for the go-sql-driver DSN. Without it,
// DATETIME columns cannot be scanned into time.Time.
func mysqlDSN(dsn string) (string, error) {
	_, query, found := strings.Cut(dsn, "?")
	if !found {
		return dsn + "?parseTime=True", nil
	}

	params, err := url.ParseQuery(query)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnsupportedDSN, err)
	}

	if !params.Has("parseTime") {
		return dsn + "&parseTime=True", nil
	}

	if enabled, err := strconv.ParseBool(params.Get("parseTime")); err != nil || !enabled {
		return "", fmt.Errorf("%w: parseTime must be enabled for mysql, got %q", ErrUnsupportedDSN, params.Get("parseTime"))
	}
	return dsn, nil
}

// sqliteDialector creates the data directory for the database file
// and enables foreign keys.
func sqliteDialector(path string) (gorm.Dialector, bool, error) {
	file, _, _ := strings.Cut(path, "?")
	if file == "" {
		return nil, false, fmt.Errorf("%w: empty sqlite path", ErrUnsupportedDSN)
	}

	if file != ":memory:" {
		err := os.MkdirAll(filepath.Dir(file), os.ModePerm)
		if err != nil {
			return nil, false, fmt.Errorf("could not create data directory: %w", err)
		}
	}

	separator := "?"
	if strings.Contains(path, "?") {
		separator = "&"
	}

	return sqlite.Open(fmt.Sprintf("%s%s_pragma=foreign_keys(1)", path, separator)), true, nil
}

// errorCallback replaces errors returned by the database with
// the error sentinels of this package.
//
// Errors we cannot provide the user with a helpful message for are
// logged and replaced with ErrGeneral.
func errorCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// No record => use the resource type in the message
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")
		if db.Statement.Schema != nil {
			name = strings.ToLower(db.Statement.Schema.Name)
		}

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
		return
	}

	if isForeignKeyViolation(db.Error) {
		db.Error = ErrReferenceNotFound
		return
	}

	if isKnownError(db.Error) {
		return
	}

	// "sql: database is closed" is hard-coded in the sql module, see
	// https://cs.opensource.google/go/go/+/master:src/database/sql/sql.go;l=1298;drc=0d018b49e33b1383dc0ae5cc968e800dffeeaf7d
	logger := contextLogger(db.Statement.Context, &log.Logger)
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		logger.Error().Msgf("%T: %v", db.Error, db.Error.Error())
	} else {
		logger.Error().Str("table", db.Statement.Table).Msgf("%T: %v", db.Error, db.Error.Error())
	}

	db.Error = ErrGeneral
}

// knownErrors are reported to the client as they are.
var knownErrors = []error{
	ErrResourceNotFound,
	ErrReferenceNotFound,
	ErrNameEmpty,
	ErrTransactionAmountInvalid,
	ErrTransactionTimeMissing,
	ErrTransactionCategoryMissing,
	ErrTransactionBusinessMissing,
	ErrGeneral,
}

func isKnownError(err error) bool {
	for _, known := range knownErrors {
		if errors.Is(err, known) {
			return true
		}
	}
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// isForeignKeyViolation detects foreign key errors for all supported databases.
func isForeignKeyViolation(err error) bool {
	msg := err.Error()

	return strings.Contains(msg, "FOREIGN KEY constraint failed") || // sqlite
		strings.Contains(msg, "violates foreign key constraint") || // postgres, SQLSTATE 23503
		strings.Contains(msg, "a foreign key constraint fails") // mysql, error 1452
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) (err error) {
	err = db.AutoMigrate(Budget{}, Category{}, Business{}, Transaction{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
