package http

import (
	"chat-notification-srv/internal/fanout"
	"chat-notification-srv/internal/model"
)

type messageCreatedReq struct {
	ChannelID string `json:"channel_id"`
	MessageID string `json:"message_id"`
	SenderID  string `json:"sender_id"`
	Text      string `json:"text"`
}

func (r messageCreatedReq) toInput() fanout.ProcessMessageInput {
	return fanout.ProcessMessageInput{
		Event: model.MessageEvent{
			ChannelID: r.ChannelID,
			MessageID: r.MessageID,
			SenderID:  r.SenderID,
			Text:      r.Text,
		},
		Source: fanout.SourceHTTP,
	}
}

type outcomeCounts struct {
	Sent               int `json:"sent"`
	SkippedNoToken     int `json:"skipped_no_token"`
	SkippedUnknownUser int `json:"skipped_unknown_user"`
	Failed             int `json:"failed"`
}

type messageCreatedResp struct {
	SenderName string                  `json:"sender_name"`
	Recipients int                     `json:"recipients"`
	Counts     outcomeCounts           `json:"counts"`
	Outcomes   []model.DispatchOutcome `json:"outcomes"`
}

func newMessageCreatedResp(out fanout.ProcessMessageOutput) messageCreatedResp {
	counts := out.Counts()
	outcomes := out.Outcomes
	if outcomes == nil {
		outcomes = []model.DispatchOutcome{}
	}
	return messageCreatedResp{
		SenderName: out.SenderName,
		Recipients: len(out.Recipients),
		Counts: outcomeCounts{
			Sent:               counts[model.OutcomeSent],
			SkippedNoToken:     counts[model.OutcomeSkippedNoToken],
			SkippedUnknownUser: counts[model.OutcomeSkippedUnknownUser],
			Failed:             counts[model.OutcomeFailed],
		},
		Outcomes: outcomes,
	}
}
