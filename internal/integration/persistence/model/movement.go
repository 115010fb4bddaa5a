// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hotel-ops/backend/internal/domain/entity"
)

// MovementModel represents the movements table in the database.
type MovementModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Type        string          `gorm:"type:varchar(20);not null;index"`
	Currency    string          `gorm:"type:varchar(3);not null;index"`
	PaymentType string          `gorm:"type:varchar(20);not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	OccurredAt  time.Time       `gorm:"not null;index"`
	Shift       *int            `gorm:"index"`
	UserName    string          `gorm:"type:varchar(120)"`
	Reference   string          `gorm:"type:varchar(60)"`
	Concept     string          `gorm:"type:varchar(255)"`
	BookingName string          `gorm:"type:varchar(120)"`
	GuestName   string          `gorm:"type:varchar(120)"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the MovementModel.
func (MovementModel) TableName() string {
	return "movements"
}

// ToEntity converts a MovementModel to a domain Movement entity.
func (m *MovementModel) ToEntity() entity.Movement {
	return entity.Movement{
		ID:          m.ID,
		Type:        entity.MovementType(m.Type),
		Currency:    entity.Currency(m.Currency),
		PaymentType: entity.PaymentType(m.PaymentType),
		Amount:      m.Amount,
		OccurredAt:  m.OccurredAt,
		Shift:       m.Shift,
		UserName:    m.UserName,
		Reference:   m.Reference,
		Concept:     m.Concept,
		BookingName: m.BookingName,
		GuestName:   m.GuestName,
	}
}

// FromMovementEntity converts a domain Movement entity to a MovementModel.
func FromMovementEntity(movement *entity.Movement) *MovementModel {
	return &MovementModel{
		ID:          movement.ID,
		Type:        string(movement.Type),
		Currency:    string(movement.Currency),
		PaymentType: string(movement.PaymentType),
		Amount:      movement.Amount,
		OccurredAt:  movement.OccurredAt,
		Shift:       movement.Shift,
		UserName:    movement.UserName,
		Reference:   movement.Reference,
		Concept:     movement.Concept,
		BookingName: movement.BookingName,
		GuestName:   movement.GuestName,
	}
}
