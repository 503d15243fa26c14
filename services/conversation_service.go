package services

import (
	"context"
	"fmt"
	"log/slog"
	"teammate-chat/domain/chat"
	"teammate-chat/errors"
	"teammate-chat/infrastructure/storage"
	"time"
)

type IConversationService interface {
	ResolveOrCreateDirect(ctx context.Context, a, b chat.ParticipantID) (chat.Conversation, error)
	CreateGroup(ctx context.Context, cmd chat.CreateGroupCommand) (chat.Conversation, error)
	ListConversations(ctx context.Context, p chat.ParticipantID) ([]chat.Conversation, error)
	Get(ctx context.Context, id chat.ConversationID) (chat.Conversation, error)
	IsMember(ctx context.Context, id chat.ConversationID, p chat.ParticipantID) (bool, error)
}

// ConversationService resolves direct conversations. The repository holds
// the pair uniqueness constraint, this service only validates and maps
// errors.
type ConversationService struct {
	log        *slog.Logger
	repository storage.IConversationRepository
	clock      func() time.Time
}

func NewConversationService(log *slog.Logger, repository storage.IConversationRepository) *ConversationService {
	return &ConversationService{log: log, repository: repository, clock: time.Now}
}

// ResolveOrCreateDirect returns the unique direct conversation between a
// and b, creating it when absent. Calls with (a,b) and (b,a) return the
// same conversation.
func (s *ConversationService) ResolveOrCreateDirect(ctx context.Context, a, b chat.ParticipantID) (chat.Conversation, error) {
	if err := ctx.Err(); err != nil {
		return chat.Conversation{}, err
	}
	cmd := chat.ResolveDirectCommand{Initiator: a, Peer: b}
	if err := cmd.Validate(); err != nil {
		return chat.Conversation{}, fmt.Errorf("%w: %v", errors.ErrValidation, err)
	}

	pair := chat.NewPairKey(a, b)
	conv, err := s.repository.FindDirect(pair)
	if err == nil {
		return conv, nil
	}
	if !errors.Is(err, errors.ErrNotFound) {
		return chat.Conversation{}, transient(err)
	}

	conv, created, err := s.repository.CreateDirect(pair, s.clock())
	if err != nil {
		return chat.Conversation{}, transient(err)
	}
	if created {
		s.log.Debug("Direct conversation created", "conversation_id", conv.ID, "low", pair.Low, "high", pair.High)
	}
	return conv, nil
}

func (s *ConversationService) CreateGroup(ctx context.Context, cmd chat.CreateGroupCommand) (chat.Conversation, error) {
	if err := ctx.Err(); err != nil {
		return chat.Conversation{}, err
	}
	if err := cmd.Validate(); err != nil {
		return chat.Conversation{}, fmt.Errorf("%w: %v", errors.ErrValidation, err)
	}
	conv, err := s.repository.CreateGroup(cmd.Title, cmd.Members, s.clock())
	if err != nil {
		return chat.Conversation{}, transient(err)
	}
	return conv, nil
}

// ListConversations is the chat list of p, oldest conversation first.
func (s *ConversationService) ListConversations(ctx context.Context, p chat.ParticipantID) ([]chat.Conversation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p.IsZero() {
		return nil, fmt.Errorf("%w: participant is required", errors.ErrValidation)
	}
	conversations, err := s.repository.ListForParticipant(p)
	if err != nil {
		return nil, transient(err)
	}
	return conversations, nil
}

func (s *ConversationService) Get(ctx context.Context, id chat.ConversationID) (chat.Conversation, error) {
	if err := ctx.Err(); err != nil {
		return chat.Conversation{}, err
	}
	conv, err := s.repository.GetConversation(id)
	if errors.Is(err, errors.ErrNotFound) {
		return chat.Conversation{}, err
	}
	if err != nil {
		return chat.Conversation{}, transient(err)
	}
	return conv, nil
}

func (s *ConversationService) IsMember(ctx context.Context, id chat.ConversationID, p chat.ParticipantID) (bool, error) {
	conv, err := s.Get(ctx, id)
	if err != nil {
		return false, err
	}
	return conv.HasMember(p), nil
}

// transient tags a store failure so callers can tell it from a domain error.
func transient(err error) error {
	if errors.Is(err, errors.ErrTransientIO) {
		return err
	}
	return fmt.Errorf("%w: %v", errors.ErrTransientIO, err)
}
