package implementation

import (
	"context"

	"ai-bankassist-be/internal/repository/contract"

	"gorm.io/gorm"
)

type ChannelSequenceRepositoryImpl struct {
	db *gorm.DB
}

func NewChannelSequenceRepository(db *gorm.DB) contract.ChannelSequenceRepository {
	return &ChannelSequenceRepositoryImpl{db: db}
}

// Next increments and returns the counter for (tenant, seqDate) in a single
// statement. The upsert keeps concurrent callers from reading the same value,
// which a count-then-insert approach cannot guarantee.
func (r *ChannelSequenceRepositoryImpl) Next(ctx context.Context, tenant string, seqDate string) (int64, error) {
	var counter int64
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO channel_sequences (tenant, seq_date, counter)
		VALUES (?, ?, 1)
		ON CONFLICT (tenant, seq_date)
		DO UPDATE SET counter = channel_sequences.counter + 1
		RETURNING counter`,
		tenant, seqDate,
	).Scan(&counter).Error
	if err != nil {
		return 0, err
	}
	return counter, nil
}
