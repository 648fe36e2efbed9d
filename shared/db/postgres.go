package db

import (
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type PostgresDB struct {
	ConnectionString string
	DB               *gorm.DB
}

// GetConnectionString prefers a full DATABASE_URL and falls back to the
// individual POSTGRES_* pieces.
func GetConnectionString() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}

	host := os.Getenv("POSTGRES_HOST")
	port := os.Getenv("POSTGRES_PORT")
	user := os.Getenv("POSTGRES_USER")
	password := os.Getenv("POSTGRES_PASSWORD")
	dbname := os.Getenv("POSTGRES_DB")

	return "host=" + host + " port=" + port + " user=" + user + " password=" + password + " dbname=" + dbname + " sslmode=disable"
}

func NewPostgresDB(connectionString string) *PostgresDB {
	if connectionString == "" {
		connectionString = GetConnectionString()
	}
	return &PostgresDB{
		ConnectionString: connectionString,
	}
}

func (db *PostgresDB) Init() error {
	// TranslateError maps backend duplicate-key failures to
	// gorm.ErrDuplicatedKey so callers never inspect vendor error codes.
	gdb, err := gorm.Open(postgres.Open(db.ConnectionString), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return err
	}

	db.DB = gdb
	return nil
}

func (db *PostgresDB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	sqlDB.Close()
	return nil
}

func (db *PostgresDB) Migrate(model interface{}) error {
	err := db.DB.AutoMigrate(model)
	return err
}
