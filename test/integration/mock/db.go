// Package mock provides in-memory test doubles for integration tests.
package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	once     sync.Once
	instance *Db
)

// Db wraps a shared in-memory SQLite database used by the BDD suite.
type Db struct {
	Conn   *gorm.DB
	models []any
}

// NewDb opens the shared in-memory database and migrates the given models.
// The connection is created once and reused across scenarios; call Reset
// between scenarios to clear state.
func NewDb(models []any) *Db {
	once.Do(func() {
		instance = open(models)
	})
	return instance
}

func open(models []any) *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	// A single connection keeps the in-memory database alive and avoids
	// SQLite lock contention.
	dbSQL.SetMaxOpenConns(1)

	conn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to test database: " + err.Error())
	}

	if err := conn.AutoMigrate(models...); err != nil {
		panic("failed to migrate test database: " + err.Error())
	}

	for _, model := range models {
		if !conn.Migrator().HasTable(model) {
			panic(fmt.Sprintf("table for model %T was not created", model))
		}
	}

	return &Db{
		Conn:   conn,
		models: models,
	}
}

// Reset deletes all rows from every migrated table.
func (d *Db) Reset() error {
	for _, model := range d.models {
		err := d.Conn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error
		if err != nil {
			return err
		}
	}
	return nil
}
