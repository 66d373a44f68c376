package database

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"sync"

	"movie-catalog/config"
	"movie-catalog/internal/domain/movies"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func InitDB() {
	if config.DB_URL == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := Open(config.DB_DRIVER, config.DB_URL)
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	DB = db
	log.Println("✅ Connected and migrated successfully")
}

// Open connects with the named driver ("postgres" or "sqlite"). Constraint
// violations are translated to gorm's portable errors so callers can match
// gorm.ErrDuplicatedKey regardless of the driver.
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres", "":
		dialector = postgres.Open(dsn)
	case "sqlite":
		registerSQLite.Do(func() {
			sql.Register(sqliteDriver, &sqlite3.SQLiteDriver{ConnectHook: unicodeLower})
		})
		dialector = &sqlite.Dialector{DriverName: sqliteDriver, DSN: dsn}
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	return gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
}

// sqliteDriver is mattn/go-sqlite3 with LOWER folding every script, not
// only ASCII, so LOWER(col) LIKE ? matches the way postgres does.
const sqliteDriver = "sqlite3_unicode"

var registerSQLite sync.Once

func unicodeLower(conn *sqlite3.SQLiteConn) error {
	return conn.RegisterFunc("lower", func(v interface{}) interface{} {
		switch s := v.(type) {
		case string:
			return strings.ToLower(s)
		case []byte:
			return strings.ToLower(string(s))
		}
		return v
	}, true)
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&movies.Movie{},
	)
}
