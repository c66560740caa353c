package db

import (
	"log"
	"starwars/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var Instance *gorm.DB

// Init connects to the store selected by the configuration:
// PostgreSQL, then MySQL, then SQLite as the fallback
func Init() {
	db, err := Open(Dialector())
	if err != nil || db == nil {
		panic(err)
	}
	Instance = db
}

func Dialector() gorm.Dialector {
	if config.DATABASE_URL != "" {
		log.Println("Using PostgreSQL database")
		return postgres.Open(config.DATABASE_URL)
	}
	if config.MYSQL_DSN != "" {
		log.Println("Using MySQL database")
		return mysql.Open(config.MYSQL_DSN)
	}
	log.Printf("Using SQLite database: %s", config.SQLITE_FILE)
	return sqlite.Open(config.SQLITE_FILE)
}

func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	return gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
		TranslateError:         true,
	})
}

// InitSQLite points Instance at the given SQLite file, used by tests and
// local runs without any configuration
func InitSQLite(file string) error {
	db, err := Open(sqlite.Open(file))
	if err != nil {
		return err
	}
	Instance = db
	return nil
}

func Close() error {
	if Instance == nil {
		return nil
	}
	sqlDB, err := Instance.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
