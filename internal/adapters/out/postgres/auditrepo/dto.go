// Package auditrepo persists the order audit trail. Entries are append-only
// rows; there is no update or delete path.
package auditrepo

import (
	"time"

	"comanda/internal/core/domain/model/audit"
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// EntryDTO represents one audit trail row. The from_status column is null
// for the creation entry; statuses are stored as their lowercase wire names.
type EntryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	FromStatus *string
	ToStatus   string
	ActorID    uuid.UUID `gorm:"type:uuid"`
	Note       string
	At         time.Time
}

// TableName specifies the database table name for audit entries.
func (EntryDTO) TableName() string {
	return "audit_entries"
}

// fromDomain converts an audit entry to its database representation.
func fromDomain(entry *audit.Entry) EntryDTO {
	var fromStatus *string
	if from := entry.From(); from != nil {
		s := from.String()
		fromStatus = &s
	}

	return EntryDTO{
		ID:         entry.ID().Bytes(),
		OrderID:    entry.OrderID().Bytes(),
		FromStatus: fromStatus,
		ToStatus:   entry.To().String(),
		ActorID:    entry.ActorID().Bytes(),
		Note:       entry.Note(),
		At:         entry.At(),
	}
}

// toDomain converts a database DTO to an audit entry.
func toDomain(dto EntryDTO) (*audit.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var from *order.Status
	if dto.FromStatus != nil {
		status, statusErr := order.StatusFromString(*dto.FromStatus)
		if statusErr != nil {
			return nil, statusErr
		}
		from = &status
	}

	to, err := order.StatusFromString(dto.ToStatus)
	if err != nil {
		return nil, err
	}

	actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
	if err != nil {
		return nil, err
	}

	return audit.RestoreEntry(id, orderID, from, to, actorID, dto.Note, dto.At)
}
