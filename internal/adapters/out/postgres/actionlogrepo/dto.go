// Package actionlogrepo stores the audit trail of facade actions.
package actionlogrepo

import (
	"time"

	"school/internal/core/ports"

	"github.com/google/uuid"
)

// ActionLogDTO represents one audited facade action.
type ActionLogDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Facade     string    `gorm:"type:varchar(64);not null;index:idx_action_logs_facade_action"`
	Action     string    `gorm:"type:varchar(64);not null;index:idx_action_logs_facade_action"`
	CommandID  string    `gorm:"type:varchar(128);not null"`
	State      string    `gorm:"type:varchar(16);not null"`
	Outcome    string    `gorm:"type:varchar(16);not null;index"`
	Payload    string    `gorm:"type:jsonb"`
	Error      string    `gorm:"type:text"`
	StartedAt  time.Time `gorm:"not null;index"`
	FinishedAt time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming convention.
func (ActionLogDTO) TableName() string {
	return "action_logs"
}

func fromRecord(record ports.ActionRecord) ActionLogDTO {
	payload := string(record.Payload)
	if payload == "" {
		payload = "null"
	}
	return ActionLogDTO{
		ID:         record.ID,
		Facade:     record.Facade,
		Action:     record.Action,
		CommandID:  record.CommandID,
		State:      record.State,
		Outcome:    string(record.Outcome),
		Payload:    payload,
		Error:      record.Error,
		StartedAt:  record.StartedAt,
		FinishedAt: record.FinishedAt,
	}
}

func toRecord(dto ActionLogDTO) ports.ActionRecord {
	return ports.ActionRecord{
		ID:         dto.ID,
		Facade:     dto.Facade,
		Action:     dto.Action,
		CommandID:  dto.CommandID,
		State:      dto.State,
		Outcome:    ports.ActionOutcome(dto.Outcome),
		Payload:    []byte(dto.Payload),
		Error:      dto.Error,
		StartedAt:  dto.StartedAt,
		FinishedAt: dto.FinishedAt,
	}
}
