package server

import (
	"context"
	"fmt"
	"log/slog"
	"teammate-chat/auth"
	"teammate-chat/contract"
	"teammate-chat/domain/chat"
	"teammate-chat/domain/event"
	"teammate-chat/errors"
	pb "teammate-chat/proto/chat/v1"
	"teammate-chat/services"
	"teammate-chat/sink"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type ChatServer struct {
	pb.UnimplementedChatServiceServer
	log                  *slog.Logger
	conversations        services.IConversationService
	messages             services.IMessageService
	notifications        services.INotificationService
	bus                  contract.IEventBus
	sessions             *SessionHost
	connectionBufferSize int
}

func NewChatServer(log *slog.Logger,
	conversations services.IConversationService,
	messages services.IMessageService,
	notifications services.INotificationService,
	bus contract.IEventBus,
	sessions *SessionHost,
	connectionBufferSize int) *ChatServer {
	return &ChatServer{
		log:                  log,
		conversations:        conversations,
		messages:             messages,
		notifications:        notifications,
		bus:                  bus,
		sessions:             sessions,
		connectionBufferSize: connectionBufferSize,
	}
}

// ResolveDirect returns the unique direct conversation between the caller
// and the peer, creating it on first contact.
func (s *ChatServer) ResolveDirect(ctx context.Context, req *pb.ResolveDirectRequest) (*pb.ResolveDirectResponse, error) {
	sc, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	conv, err := s.conversations.ResolveOrCreateDirect(ctx, sc.Participant, chat.ParticipantID(req.PeerId))
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.ResolveDirectResponse{Conversation: toConversation(conv)}, nil
}

func (s *ChatServer) ListConversations(ctx context.Context, _ *pb.ListConversationsRequest) (*pb.ListConversationsResponse, error) {
	sc, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	conversations, err := s.conversations.ListConversations(ctx, sc.Participant)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.ListConversationsResponse{Conversations: toConversations(conversations)}, nil
}

// GetHistory is restricted to members of the conversation.
func (s *ChatServer) GetHistory(ctx context.Context, req *pb.GetHistoryRequest) (*pb.GetHistoryResponse, error) {
	sc, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	id := chat.ConversationID(req.ConversationId)
	if err := s.requireMember(ctx, id, sc.Participant); err != nil {
		return nil, err
	}
	messages, err := s.messages.History(ctx, id)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.GetHistoryResponse{Messages: toMessages(messages)}, nil
}

// PostMessage appends on behalf of the caller. The sender also receives
// the message through its own subscription, like every other member.
func (s *ChatServer) PostMessage(ctx context.Context, req *pb.PostMessageRequest) (*pb.PostMessageResponse, error) {
	sc, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	msg, err := s.messages.Append(ctx, chat.PostMessageCommand{
		ConversationID: chat.ConversationID(req.ConversationId),
		Sender:         sc.Participant,
		Content:        req.Content,
	})
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.PostMessageResponse{Message: toMessage(msg)}, nil
}

// SendDirect resolves the conversation with the recipient then appends.
func (s *ChatServer) SendDirect(ctx context.Context, req *pb.SendDirectRequest) (*pb.SendDirectResponse, error) {
	sc, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	conv, err := s.conversations.ResolveOrCreateDirect(ctx, sc.Participant, chat.ParticipantID(req.RecipientId))
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	msg, err := s.messages.Append(ctx, chat.PostMessageCommand{
		ConversationID: conv.ID,
		Sender:         sc.Participant,
		Content:        req.Content,
	})
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.SendDirectResponse{Conversation: toConversation(conv), Message: toMessage(msg)}, nil
}

func (s *ChatServer) ListNotifications(ctx context.Context, req *pb.ListNotificationsRequest) (*pb.ListNotificationsResponse, error) {
	sc, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	notifications, err := s.notifications.List(ctx, sc.Participant, req.UnreadOnly)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.ListNotificationsResponse{Notifications: toNotifications(notifications)}, nil
}

func (s *ChatServer) MarkNotificationsRead(ctx context.Context, req *pb.MarkNotificationsReadRequest) (*pb.MarkNotificationsReadResponse, error) {
	sc, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(req.Ids))
	for _, raw := range req.Ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.MapToGRPCError(fmt.Errorf("%w: notification id %q", errors.ErrValidation, raw))
		}
		ids = append(ids, id)
	}
	updated, err := s.notifications.MarkRead(ctx, sc.Participant, ids)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.MarkNotificationsReadResponse{Updated: int32(updated)}, nil
}

// Subscribe streams the events of one conversation until the client leaves.
// A client that falls behind gets Unavailable and must subscribe again,
// then reload the history.
func (s *ChatServer) Subscribe(req *pb.SubscribeRequest, stream pb.ChatService_SubscribeServer) error {
	ctx := stream.Context()
	sc, err := sessionFrom(ctx)
	if err != nil {
		return err
	}
	id := chat.ConversationID(req.ConversationId)
	if err := s.requireMember(ctx, id, sc.Participant); err != nil {
		return err
	}
	return s.forward(ctx, event.ConversationTopic(id), sc.Participant, func(e event.DomainEvent) error {
		evt, ok := toConversationEvent(e)
		if !ok {
			return nil
		}
		return stream.Send(evt)
	})
}

// WatchNotifications streams the notifications created for the caller.
func (s *ChatServer) WatchNotifications(_ *pb.WatchNotificationsRequest, stream pb.ChatService_WatchNotificationsServer) error {
	ctx := stream.Context()
	sc, err := sessionFrom(ctx)
	if err != nil {
		return err
	}
	return s.forward(ctx, event.InboxTopic(sc.Participant), sc.Participant, func(e event.DomainEvent) error {
		created, ok := e.(event.NotificationCreated)
		if !ok {
			return nil
		}
		return stream.Send(&pb.NotificationEvent{Notification: toNotification(created.Notification)})
	})
}

// Session hosts one session controller for the lifetime of the stream.
func (s *ChatServer) Session(stream pb.ChatService_SessionServer) error {
	sc, err := sessionFrom(stream.Context())
	if err != nil {
		return err
	}
	return s.sessions.Serve(stream, sc)
}

func (s *ChatServer) forward(ctx context.Context, topic event.Topic, participant chat.ParticipantID,
	send func(e event.DomainEvent) error) error {
	channelSink := sink.NewChannelSink(s.connectionBufferSize)
	id := s.bus.Subscribe(topic, channelSink)
	defer s.bus.Unsubscribe(id)

	for {
		select {
		case <-ctx.Done():
			s.log.Debug("Client disconnected", "participant", participant, "topic", topic)
			return nil
		case <-channelSink.Lost():
			s.log.Warn("Subscriber lost", "participant", participant, "topic", topic)
			return status.Error(codes.Unavailable, errors.ErrSubscriberLost.Error())
		case e := <-channelSink.Events():
			if err := send(e); err != nil {
				s.log.Error("failed to push event to stream",
					"participant", participant,
					"topic", topic,
					"error", err)
				return err
			}
		}
	}
}

func (s *ChatServer) requireMember(ctx context.Context, id chat.ConversationID, p chat.ParticipantID) error {
	ok, err := s.conversations.IsMember(ctx, id, p)
	if err != nil {
		return errors.MapToGRPCError(err)
	}
	if !ok {
		return errors.MapToGRPCError(fmt.Errorf("%w: %s is not a member of %s", errors.ErrNotAuthorized, p, id))
	}
	return nil
}

func sessionFrom(ctx context.Context) (chat.SessionContext, error) {
	sc, ok := auth.SessionFromContext(ctx)
	if !ok {
		return chat.SessionContext{}, status.Error(codes.Unauthenticated, "no session bound to the call")
	}
	return sc, nil
}

func toConversationEvent(e event.DomainEvent) (*pb.ConversationEvent, bool) {
	switch e := e.(type) {
	case event.MessageAppended:
		return &pb.ConversationEvent{
			Event: &pb.ConversationEvent_Message{Message: toMessage(e.Message)},
		}, true
	case event.TypingChanged:
		return &pb.ConversationEvent{
			Event: &pb.ConversationEvent_Typing{Typing: toTypingEvent(e)},
		}, true
	default:
		return nil, false
	}
}
