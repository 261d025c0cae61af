// file: internals/seeds/runner.go
package seeds

import (
	tags "schoolhub_backend/internals/seeds/tags"
	users "schoolhub_backend/internals/seeds/users"

	"gorm.io/gorm"
)

// RunAllSeeds loads bootstrap data for a fresh database. Every seeder
// is idempotent, so running it against an existing database is safe.
func RunAllSeeds(db *gorm.DB) {
	users.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")
	tags.SeedTagsFromJSON(db, "internals/seeds/tags/data_tags.json")
}
