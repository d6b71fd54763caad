package audit

import (
	"context"
	"time"

	"github.com/6laercio/saude-integrada-api/internal/models"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

type Query struct {
	Action   string
	Entity   string
	EntityID *uint
	From     *time.Time
	To       *time.Time

	Page  int
	Limit int
}

type Page struct {
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int64             `json:"total"`
	Logs  []models.AuditLog `json:"logs"`
}

func (q *Query) normalize() {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 || q.Limit > MaxLimit {
		q.Limit = DefaultLimit
	}
}

// List pages through audit_logs, newest first.
func (l *Logger) List(ctx context.Context, q Query) (*Page, error) {
	q.normalize()

	tx := l.db.WithContext(ctx).Model(&models.AuditLog{})

	if q.Action != "" {
		tx = tx.Where("action = ?", q.Action)
	}
	if q.Entity != "" {
		tx = tx.Where("entity = ?", q.Entity)
	}
	if q.EntityID != nil {
		tx = tx.Where("entity_id = ?", *q.EntityID)
	}
	if q.From != nil {
		tx = tx.Where("created_at >= ?", *q.From)
	}
	if q.To != nil {
		tx = tx.Where("created_at <= ?", *q.To)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, err
	}

	logs := []models.AuditLog{}
	if err := tx.
		Order("created_at DESC, id DESC").
		Limit(q.Limit).
		Offset((q.Page - 1) * q.Limit).
		Find(&logs).Error; err != nil {
		return nil, err
	}

	return &Page{Page: q.Page, Limit: q.Limit, Total: total, Logs: logs}, nil
}
