package models

import "time"

type Doctor struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name      string `gorm:"size:100;not null" json:"nome"`
	License   string `gorm:"size:20;uniqueIndex;not null" json:"crm"`
	Specialty string `gorm:"size:50;not null" json:"especialidade"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
