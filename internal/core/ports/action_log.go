package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ActionOutcome tells whether an audited action was committed or rolled back.
type ActionOutcome string

const (
	ActionCommitted  ActionOutcome = "COMMITTED"
	ActionRolledBack ActionOutcome = "ROLLED_BACK"
)

// ActionRecord is one audit entry written for every facade action.
type ActionRecord struct {
	ID         uuid.UUID
	Facade     string
	Action     string
	CommandID  string
	State      string
	Outcome    ActionOutcome
	Payload    []byte
	Error      string
	StartedAt  time.Time
	FinishedAt time.Time
}

// ActionLogRepository stores audit entries.
type ActionLogRepository interface {
	// Append persists record. Records are immutable once written.
	Append(ctx context.Context, record ActionRecord) error
}
