package db

import "gorm.io/gorm"

// WhereIf applies the condition only when apply is true. Used to compose
// optional list filters.
//
//	db.Scopes(WhereIf(status != "", "t.status = ?", status))
func WhereIf(apply bool, query string, args ...any) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if !apply {
			return db
		}
		return db.Where(query, args...)
	}
}
