package repository

import (
	"gorm.io/gorm"
)

// OwnerScope returns a GORM scope that restricts a query to one tenant.
// It must be applied to every query on a tenant-owned table.
func OwnerScope(userID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if userID == "" {
			// Fail-safe: no owner means no rows, never all rows
			return db.Where("1 = 0")
		}
		return db.Where("user_id = ?", userID)
	}
}
