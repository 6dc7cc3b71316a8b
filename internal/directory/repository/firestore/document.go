package firestore

import "chat-notification-srv/internal/model"

type channelDoc struct {
	MemberIDs []string `firestore:"memberIds"`
}

type userDoc struct {
	DisplayName string `firestore:"displayName"`
	UserName    string `firestore:"userName"`
	FCMToken    string `firestore:"fcmToken"`
}

func (d channelDoc) toModel(id string) model.Channel {
	return model.Channel{
		ID:        id,
		MemberIDs: d.MemberIDs,
	}
}

func (d userDoc) toModel(id string) model.UserProfile {
	return model.UserProfile{
		ID:          id,
		DisplayName: d.DisplayName,
		UserName:    d.UserName,
		PushToken:   d.FCMToken,
	}
}
