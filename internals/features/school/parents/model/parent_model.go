// file: internals/features/school/parents/model/parent_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// One parent profile per user account.
type ParentModel struct {
	ParentID uuid.UUID `gorm:"column:parent_id;type:uuid;default:gen_random_uuid();primaryKey" json:"parent_id"`

	ParentUserID uuid.UUID `gorm:"column:parent_user_id;type:uuid;not null;uniqueIndex" json:"parent_user_id"`

	// "MOTHER", "FATHER", "GUARDIAN", "GRANDPARENT"
	ParentRelationshipType string `gorm:"column:parent_relationship_type;type:varchar(20);not null" json:"parent_relationship_type"`

	ParentEmergencyContact bool `gorm:"column:parent_emergency_contact;not null;default:true" json:"parent_emergency_contact"`
	ParentPickupAuthorized bool `gorm:"column:parent_pickup_authorized;not null;default:true" json:"parent_pickup_authorized"`

	// "EMAIL", "PHONE", "TEXT"
	ParentPreferredContactMethod string `gorm:"column:parent_preferred_contact_method;type:varchar(20);not null;default:EMAIL" json:"parent_preferred_contact_method"`

	ParentCreatedAt time.Time      `gorm:"column:parent_created_at;autoCreateTime" json:"parent_created_at"`
	ParentUpdatedAt time.Time      `gorm:"column:parent_updated_at;autoUpdateTime" json:"parent_updated_at"`
	ParentDeletedAt gorm.DeletedAt `gorm:"column:parent_deleted_at;index" json:"-"`
}

func (ParentModel) TableName() string { return "parents" }
