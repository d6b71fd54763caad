package audit

import (
	"context"
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/6laercio/saude-integrada-api/internal/models"
)

type Event struct {
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Logger persists events to audit_logs.
type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	var meta datatypes.JSON
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			meta = datatypes.JSON(b)
		}
	}

	row := models.AuditLog{
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: meta,
	}

	return l.db.WithContext(ctx).Create(&row).Error
}
