// file: internals/features/admins/model/admin_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Admin struct {
	AdminID           uuid.UUID `gorm:"column:admin_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"admin_id"`
	AdminEmail        string    `gorm:"column:admin_email;type:varchar(120);not null;uniqueIndex" json:"admin_email"`
	AdminPasswordHash string    `gorm:"column:admin_password_hash;type:varchar(100);not null" json:"-"`

	AdminCreatedAt time.Time `gorm:"column:admin_created_at;type:timestamptz;not null;default:now()" json:"admin_created_at"`
	AdminUpdatedAt time.Time `gorm:"column:admin_updated_at;type:timestamptz;not null;default:now()" json:"admin_updated_at"`
}

func (Admin) TableName() string { return "admins" }

func (m *Admin) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.AdminCreatedAt.IsZero() {
		m.AdminCreatedAt = now
	}
	m.AdminUpdatedAt = now
	return nil
}
