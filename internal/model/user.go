package model

// UserProfile is a read-only snapshot of a user document.
type UserProfile struct {
	ID          string
	DisplayName string
	UserName    string
	PushToken   string
}
