// database/bootstrap.go
package database

import (
	"fmt"
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"mantrix/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	// Run the lineage cleanup BEFORE AutoMigrate so the JSON serializer
	// never scans the empty-string values left by pre-lineage schemas.
	if err := migrateRoadmapLineage(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.User{},
		&entities.Roadmap{},
		&entities.ModuleProgress{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}

// migrateRoadmapLineage nulls out empty-string lineage columns written by
// versions that predate the json serializer. NULL scans cleanly; '' does not.
func migrateRoadmapLineage(db *gorm.DB) error {
	var tbl string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' AND name='roadmaps'`).Scan(&tbl).Error; err != nil {
		return fmt.Errorf("check table exist: %w", err)
	}
	if tbl == "" {
		// fresh DB, nothing to do
		return nil
	}

	hasCol := func(name string) bool {
		var n int
		db.Raw(`SELECT COUNT(*) FROM pragma_table_info('roadmaps') WHERE name = ?`, name).Scan(&n)
		return n > 0
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if hasCol("merged_from") {
			if err := tx.Exec(`UPDATE roadmaps SET merged_from = NULL WHERE merged_from = ''`).Error; err != nil {
				return err
			}
		}
		if hasCol("customized_from") {
			if err := tx.Exec(`UPDATE roadmaps SET customized_from = NULL WHERE customized_from = ''`).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
