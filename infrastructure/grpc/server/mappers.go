package server

import (
	"teammate-chat/domain/chat"
	"teammate-chat/domain/event"
	pb "teammate-chat/proto/chat/v1"
	"teammate-chat/session"

	"github.com/samber/lo"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func toConversation(c chat.Conversation) *pb.Conversation {
	return &pb.Conversation{
		Id:        string(c.ID),
		IsGroup:   c.IsGroup,
		Title:     lo.FromPtr(c.Title),
		Members:   lo.Map(c.Members, func(p chat.ParticipantID, _ int) string { return string(p) }),
		CreatedAt: timestamppb.New(c.CreatedAt),
	}
}

func toConversations(conversations []chat.Conversation) []*pb.Conversation {
	return lo.Map(conversations, func(c chat.Conversation, _ int) *pb.Conversation {
		return toConversation(c)
	})
}

func toMessage(m chat.Message) *pb.Message {
	return &pb.Message{
		Id:             m.ID.String(),
		ConversationId: string(m.ConversationID),
		Sender:         string(m.Sender),
		Content:        m.Content,
		CreatedAt:      timestamppb.New(m.CreatedAt),
	}
}

func toMessages(messages []chat.Message) []*pb.Message {
	return lo.Map(messages, func(m chat.Message, _ int) *pb.Message {
		return toMessage(m)
	})
}

func toTypingEvent(e event.TypingChanged) *pb.TypingEvent {
	return &pb.TypingEvent{
		ConversationId: string(e.ConversationID),
		ParticipantId:  string(e.Participant),
		IsTyping:       e.IsTyping,
		ExpiresAt:      timestamppb.New(e.ExpiresAt),
	}
}

func toNotification(n chat.Notification) *pb.Notification {
	return &pb.Notification{
		Id:             n.ID.String(),
		Recipient:      string(n.Recipient),
		Kind:           string(n.Kind),
		ConversationId: string(n.Payload.ConversationID),
		Sender:         string(n.Payload.Sender),
		ContentPreview: n.Payload.ContentPreview,
		Read:           n.Read,
		CreatedAt:      timestamppb.New(n.CreatedAt),
	}
}

func toNotifications(notifications []chat.Notification) []*pb.Notification {
	return lo.Map(notifications, func(n chat.Notification, _ int) *pb.Notification {
		return toNotification(n)
	})
}

func toSessionView(v session.View) *pb.SessionView {
	res := &pb.SessionView{
		Participant:   string(v.Participant),
		State:         v.State.String(),
		Conversations: toConversations(v.Conversations),
		Messages:      toMessages(v.Messages),
		Typing: lo.Map(v.TypingParticipants(), func(p chat.ParticipantID, _ int) string {
			return string(p)
		}),
		DisplayNames: lo.MapEntries(v.DisplayNames, func(p chat.ParticipantID, name string) (string, string) {
			return string(p), name
		}),
		Input: v.Input,
	}
	if v.Active != nil {
		res.ActiveConversation = toConversation(*v.Active)
	}
	if v.Err != nil {
		res.Error = v.Err.Error()
	}
	return res
}
