package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lanefields/credit-extractor/gen/ent"
	"github.com/lanefields/credit-extractor/gen/ent/profile"
)

// ProfileRepository manages the owning profile rows that jobs and
// items hang off.
type ProfileRepository interface {
	EnsureByID(ctx context.Context, profileID uuid.UUID) (uuid.UUID, error)
}

type profileRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewProfileRepository(entc *ent.Client, log *slog.Logger) ProfileRepository {
	if log == nil {
		log = slog.Default()
	}
	return &profileRepo{ent: entc, log: log}
}

// EnsureByID returns the given profile id, creating the row if it does
// not exist yet.
func (r *profileRepo) EnsureByID(ctx context.Context, profileID uuid.UUID) (uuid.UUID, error) {
	exists, err := r.ent.Profile.Query().Where(profile.ID(profileID)).Exist(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	if exists {
		return profileID, nil
	}
	row, err := r.ent.Profile.Create().SetID(profileID).Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return profileID, nil
		}
		r.log.Error("profile create failed", "profile_id", profileID, "err", err)
		return uuid.Nil, err
	}
	r.log.Info("profile created", "profile_id", row.ID)
	return row.ID, nil
}
