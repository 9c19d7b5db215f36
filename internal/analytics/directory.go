package analytics

import (
	"github.com/alumniconnect/portal-api/internal/models"
	apperrors "github.com/alumniconnect/portal-api/pkg/errors"
	"github.com/google/uuid"
)

// Directory resolves user ids to records for report naming
type Directory map[uuid.UUID]models.UserRecord

// NewDirectory indexes users by id
func NewDirectory(users []models.UserRecord) Directory {
	dir := make(Directory, len(users))
	for _, u := range users {
		dir[u.ID] = u
	}
	return dir
}

// Lookup returns the user with the given id. A missing user means the snapshot
// violates referential integrity and is reported as a missing-reference error.
func (d Directory) Lookup(kind string, id uuid.UUID) (models.UserRecord, error) {
	u, ok := d[id]
	if !ok {
		return models.UserRecord{}, apperrors.MissingReferenceError(kind, id.String())
	}
	return u, nil
}
