package commands

import (
	"context"
	"log/slog"

	"school/internal/core/domain/model/profile"
	"school/internal/core/ports"
	"school/internal/pkg/command"
)

const (
	CreateOrUpdateProfileID = "profile.createOrUpdate"
	DeleteProfileID         = "profile.delete"
	FindProfileID           = "profile.findById"
)

// NewCreateOrUpdateProfileCommand expects a *profile.Profile input.
func NewCreateOrUpdateProfileCommand(profiles ports.ProfileRepository, tx ports.TxScope, logger *slog.Logger) *command.Leaf {
	return command.NewLeaf(newSaveOperation(CreateOrUpdateProfileID, profile.EntityKind, profiles), tx, logger)
}

// NewDeleteProfileCommand expects a kernel.ID input. Profiles still used by a
// person or a student are not deleted.
func NewDeleteProfileCommand(profiles ports.ProfileRepository, tx ports.TxScope, logger *slog.Logger) *command.Leaf {
	deletable := func(ctx context.Context, p *profile.Profile) error {
		references, err := profiles.CountReferences(ctx, p.ID())
		if err != nil {
			return err
		}
		return p.CheckDeletable(references)
	}
	return command.NewLeaf(newDeleteOperation(DeleteProfileID, profile.EntityKind, profiles, deletable), tx, logger)
}

// NewFindProfileCommand expects a kernel.ID input.
func NewFindProfileCommand(profiles ports.ProfileRepository, logger *slog.Logger) *command.Leaf {
	return command.NewLeaf(newFindOperation(FindProfileID, profile.EntityKind, profiles), nil, logger)
}
