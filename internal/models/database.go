package models

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB is the database used by the backend.
var DB *gorm.DB

// Connect connects to the database and migrates the schema.
//
// By default, a SQLite database at the given path is used. When DB_HOST
// is set, a PostgreSQL connection is opened instead and the path is
// ignored.
func Connect(sqlitePath string) error {
	var err error
	var db *gorm.DB

	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	_, ok := os.LookupEnv("DB_HOST")
	if ok {
		log.Debug().Msg("DB_HOST is set, using postgresql")
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s", os.Getenv("DB_HOST"), os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"))
		db, err = gorm.Open(postgres.Open(dsn), config)
	} else {
		log.Debug().Msg("DB_HOST is not set, using sqlite database")

		err = os.MkdirAll(filepath.Dir(sqlitePath), os.ModePerm)
		if err != nil {
			return fmt.Errorf("could not create database directory: %w", err)
		}
		db, err = gorm.Open(sqlite.Open(fmt.Sprintf("%s?_pragma=foreign_keys(1)", sqlitePath)), config)
	}

	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	if !ok {
		// This is done to prevent SQLITE_BUSY errors.
		// With a single connection, the database serializes all writes,
		// which also enforces the statement uniqueness check.
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetMaxOpenConns(1)
	}

	// Query callbacks
	err = db.Callback().Query().After("*").Register("billfold:after_query", queryCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Query().After("*").Register("billfold:after_query_general", generalCallback)
	if err != nil {
		return err
	}

	// Create callbacks
	err = db.Callback().Create().After("*").Register("billfold:after_create", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Create().After("*").Register("billfold:after_create_general", generalCallback)
	if err != nil {
		return err
	}

	// Update callbacks
	err = db.Callback().Update().After("*").Register("billfold:after_update", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Update().After("*").Register("billfold:after_update_general", generalCallback)
	if err != nil {
		return err
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	// Set the exported variable
	DB = db

	return nil
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		// and replace "_" with "[space]"
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")

		// Replace pluralized "ies" with "y"
		match := regexp.MustCompile("ies$")
		name = match.ReplaceAllString(name, "y")

		// Remove plural "s"
		name = strings.TrimRight(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	msg := db.Error.Error()

	// One statement per user, type and billing period
	if strings.Contains(msg, "statements.user_id, statements.type_id, statements.billing_month, statements.billing_year") ||
		strings.Contains(msg, "statement_period") {
		db.Error = ErrDuplicateStatement
	}

	// Transaction import IDs are unique per statement
	if strings.Contains(msg, "transactions.statement_id, transactions.import_id") ||
		strings.Contains(msg, "statement_import_id") {
		db.Error = ErrTransactionConflict
	}

	// Category names are unique
	if strings.Contains(msg, "categories.name") {
		db.Error = ErrCategoryNameNotUnique
	}

	// One budget per user and category
	if strings.Contains(msg, "budgets.user_id, budgets.category_id") ||
		strings.Contains(msg, "budget_user_category") {
		db.Error = ErrBudgetNotUnique
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in the sql module, see
	// https://cs.opensource.google/go/go/+/master:src/database/sql/sql.go;l=1298;drc=0d018b49e33b1383dc0ae5cc968e800dffeeaf7d
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		// A general error where we cannot provide more useful information to the end user
		// We log the error and provide a general error message so that server admins can debug
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral

		return
	}
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) (err error) {
	err = db.AutoMigrate(User{}, StatementType{}, Statement{}, Transaction{}, Category{}, MatchRule{}, Budget{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
