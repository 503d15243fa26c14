package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"teammate-chat/contract"
	"teammate-chat/domain/chat"
	"teammate-chat/domain/event"
	"teammate-chat/errors"
	"teammate-chat/infrastructure/storage"
)

type IMessageService interface {
	Append(ctx context.Context, cmd chat.PostMessageCommand) (chat.Message, error)
	History(ctx context.Context, id chat.ConversationID) ([]chat.Message, error)
}

// DirectNotifier is told about every message appended to a direct
// conversation.
type DirectNotifier interface {
	NotifyDirect(conv chat.Conversation, msg chat.Message)
}

// MessageService appends to the per-conversation log and publishes the
// result. Append and publish run under the same per-conversation lock, so
// bus order and store order never diverge.
type MessageService struct {
	log              *slog.Logger
	conversations    storage.IConversationRepository
	messages         storage.IMessageRepository
	bus              contract.IEventBus
	notifier         DirectNotifier
	maxContentLength int
	locks            sync.Map // chat.ConversationID -> *sync.Mutex
}

func NewMessageService(log *slog.Logger, conversations storage.IConversationRepository,
	messages storage.IMessageRepository, bus contract.IEventBus,
	notifier DirectNotifier, maxContentLength int) *MessageService {
	return &MessageService{
		log:              log,
		conversations:    conversations,
		messages:         messages,
		bus:              bus,
		notifier:         notifier,
		maxContentLength: maxContentLength,
	}
}

// Append stores the message and broadcasts MessageAppended. Nothing is
// stored or published when validation, lookup or membership fails.
func (s *MessageService) Append(ctx context.Context, cmd chat.PostMessageCommand) (chat.Message, error) {
	if err := ctx.Err(); err != nil {
		return chat.Message{}, err
	}
	cmd = cmd.Normalize()
	if err := cmd.Validate(s.maxContentLength); err != nil {
		return chat.Message{}, fmt.Errorf("%w: %v", errors.ErrValidation, err)
	}

	unlock := s.lock(cmd.ConversationID)
	defer unlock()

	conv, err := s.conversations.GetConversation(cmd.ConversationID)
	if errors.Is(err, errors.ErrNotFound) {
		return chat.Message{}, err
	}
	if err != nil {
		return chat.Message{}, transient(err)
	}
	if !conv.HasMember(cmd.Sender) {
		return chat.Message{}, fmt.Errorf("%w: %s is not a member of %s",
			errors.ErrNotAuthorized, cmd.Sender, cmd.ConversationID)
	}

	msg, err := s.messages.AppendMessage(chat.Message{
		ConversationID: cmd.ConversationID,
		Sender:         cmd.Sender,
		Content:        cmd.Content,
	})
	if err != nil {
		return chat.Message{}, transient(err)
	}

	// The message is durable from here on. A publish failure only delays
	// subscribers until they reconcile from history.
	if err := s.bus.Publish(ctx, event.MessageAppended{Message: msg}); err != nil {
		s.log.Warn("Message stored but not broadcast",
			"conversation_id", msg.ConversationID, "message_id", msg.ID, "error", err)
	}

	if s.notifier != nil && conv.IsDirect() {
		s.notifier.NotifyDirect(conv, msg)
	}
	return msg, nil
}

// History is the full log of a conversation, oldest first.
func (s *MessageService) History(ctx context.Context, id chat.ConversationID) ([]chat.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := s.conversations.GetConversation(id); err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return nil, err
		}
		return nil, transient(err)
	}
	messages, err := s.messages.GetMessages(id)
	if err != nil {
		return nil, transient(err)
	}
	return messages, nil
}

func (s *MessageService) lock(id chat.ConversationID) func() {
	value, _ := s.locks.LoadOrStore(id, &sync.Mutex{})
	mu := value.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
