// file: internals/seeds/users/seed_users.go
package users

import (
	"encoding/json"
	"log"
	"os"

	"schoolhub_backend/internals/features/users/user/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserSeed struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// SeedUsersFromJSON inserts bootstrap accounts, skipping emails that
// already exist.
func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("[WARN] seed users: read %s: %v", filePath, err)
		return
	}

	var inputs []UserSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Printf("[ERROR] seed users: decode %s: %v", filePath, err)
		return
	}

	for _, data := range inputs {
		var existing model.UserModel
		if err := db.Where("user_email = ?", data.Email).First(&existing).Error; err == nil {
			log.Printf("[INFO] seed users: %s already exists, skipped", data.Email)
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("[ERROR] seed users: hash password for %s: %v", data.Email, err)
			continue
		}

		newUser := model.UserModel{
			UserEmail:     data.Email,
			UserPassword:  string(hashed),
			UserFirstName: data.FirstName,
			UserLastName:  data.LastName,
			UserIsActive:  true,
		}
		if err := db.Create(&newUser).Error; err != nil {
			log.Printf("[ERROR] seed users: insert %s: %v", data.Email, err)
		} else {
			log.Printf("[INFO] seed users: inserted %s", data.Email)
		}
	}
}
