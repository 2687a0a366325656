package client

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/iswarpatel123/braintree-render/internal/model"
)

// InitSqliteClient opens the local reconciliation journal. The journal is a
// single-file embedded database; losing it loses nothing the gateway's own
// transaction log cannot recover.
func InitSqliteClient(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to open reconciliation db:", err)
	}

	if err := db.AutoMigrate(
		&model.ReconciliationRecord{},
	); err != nil {
		log.Fatal(err)
	}

	return db
}
