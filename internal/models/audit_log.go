package models

import (
	"time"

	"gorm.io/datatypes"
)

type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Action   string `gorm:"size:50;not null;index" json:"action"`
	Entity   string `gorm:"size:50;index" json:"entity"`
	EntityID *uint  `json:"entityId"`

	Metadata datatypes.JSON `json:"metadata"`

	CreatedAt time.Time `json:"createdAt"`
}
