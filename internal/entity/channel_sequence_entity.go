package entity

// ChannelSequence is the per-(tenant, day) counter backing channel ID
// generation. Incremented atomically by the repository.
type ChannelSequence struct {
	Tenant  string
	SeqDate string // yyyymmdd
	Counter int
}
