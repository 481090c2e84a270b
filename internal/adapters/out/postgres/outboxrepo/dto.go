// Package outboxrepo stores outbox messages with GORM.
package outboxrepo

import (
	"time"

	"studel/internal/core/domain/model/kernel"
	"studel/internal/core/ports"

	"github.com/google/uuid"
)

// MessageDTO is one row of outbox_messages. Pending rows have no PublishedAt.
type MessageDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Type        string     `gorm:"not null"`
	Key         string     `gorm:"not null"`
	Payload     []byte     `gorm:"type:jsonb;not null"`
	OccurredAt  time.Time  `gorm:"index;not null"`
	PublishedAt *time.Time `gorm:"index"`
}

func (MessageDTO) TableName() string {
	return "outbox_messages"
}

func fromDomain(m ports.OutboxMessage) MessageDTO {
	return MessageDTO{
		ID:          m.ID.Bytes(),
		Type:        m.Type,
		Key:         m.Key,
		Payload:     m.Payload,
		OccurredAt:  m.OccurredAt,
		PublishedAt: m.PublishedAt,
	}
}

func toDomain(dto MessageDTO) (ports.OutboxMessage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}
	return ports.OutboxMessage{
		ID:          id,
		Type:        dto.Type,
		Key:         dto.Key,
		Payload:     dto.Payload,
		OccurredAt:  dto.OccurredAt,
		PublishedAt: dto.PublishedAt,
	}, nil
}
