package model

const (
	DataKeyChannelID = "channelId"
	DataKeyMessageID = "messageId"
	DataKeySenderID  = "senderId"
)

// NotificationPayload is the push built for a single recipient.
type NotificationPayload struct {
	Title  string
	Body   string
	Target string
	Data   map[string]string
	Sound  string
}
