package unitofwork

import (
	"context"

	"ai-bankassist-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ChannelRepository() contract.ChannelRepository
	ChannelDetailRepository() contract.ChannelDetailRepository
	ChannelSequenceRepository() contract.ChannelSequenceRepository
	AuditEventRepository() contract.AuditEventRepository
	KbDocRepository() contract.KbDocRepository
	KbChunkRepository() contract.KbChunkRepository
}
