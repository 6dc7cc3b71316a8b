package model

// Channel is a read-only snapshot of a chat channel.
// MemberIDs may contain duplicates and may or may not contain the sender.
type Channel struct {
	ID        string
	MemberIDs []string
}
