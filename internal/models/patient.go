package models

import "time"

type Patient struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string  `gorm:"size:100;not null" json:"nome"`
	Phone string  `gorm:"size:15;uniqueIndex;not null" json:"telefone"`
	Email *string `gorm:"size:255" json:"email"`

	BirthDate       *time.Time `json:"dataNascimento"`
	InsurancePlan   *string    `gorm:"size:50" json:"convenio"`
	InsuranceNumber *string    `gorm:"size:50" json:"numeroConvenio"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
