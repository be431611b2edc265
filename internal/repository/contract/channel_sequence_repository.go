package contract

import "context"

// ChannelSequenceRepository hands out per-(tenant, day) sequence numbers.
// Next must be safe under concurrent callers: two simultaneous requests for
// the same tenant and day must never observe the same counter value.
type ChannelSequenceRepository interface {
	Next(ctx context.Context, tenant string, seqDate string) (int64, error)
}
