// file: internals/seeds/tags/seed_tags.go
package tags

import (
	"encoding/json"
	"log"
	"os"

	"schoolhub_backend/internals/features/school/student_services/model"
	"schoolhub_backend/internals/features/school/student_services/service"

	"gorm.io/gorm"
)

type TagSeed struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// SeedTagsFromJSON inserts district-wide tags (nil school id) into the
// special needs tag library, skipping codes that already exist.
func SeedTagsFromJSON(db *gorm.DB, filePath string) {
	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("[WARN] seed tags: read %s: %v", filePath, err)
		return
	}

	var inputs []TagSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Printf("[ERROR] seed tags: decode %s: %v", filePath, err)
		return
	}

	for _, data := range inputs {
		code := service.DeriveTagCode(data.Name)

		var existing model.SpecialNeedsTagModel
		err := db.
			Where("special_needs_tag_code = ? AND special_needs_tag_school_id IS NULL", code).
			First(&existing).Error
		if err == nil {
			log.Printf("[INFO] seed tags: %s already exists, skipped", code)
			continue
		}

		tag := model.SpecialNeedsTagModel{
			SpecialNeedsTagName:        data.Name,
			SpecialNeedsTagCode:        code,
			SpecialNeedsTagDescription: data.Description,
			SpecialNeedsTagIsActive:    true,
		}
		if err := db.Create(&tag).Error; err != nil {
			log.Printf("[ERROR] seed tags: insert %s: %v", code, err)
		} else {
			log.Printf("[INFO] seed tags: inserted %s", code)
		}
	}
}
