package services

import (
	"context"
	"log/slog"
	"sync"
	"teammate-chat/contract"
	"teammate-chat/domain/chat"
	"teammate-chat/domain/event"
	"teammate-chat/infrastructure/storage"
	"time"

	"github.com/samber/lo"
)

// IPresenceService is best-effort by contract: no operation reports an
// error, failures are logged.
type IPresenceService interface {
	SetTyping(ctx context.Context, id chat.ConversationID, p chat.ParticipantID)
	ClearTyping(ctx context.Context, id chat.ConversationID, p chat.ParticipantID)
	Typing(ctx context.Context, id chat.ConversationID) []chat.TypingSignal
	Expire(ctx context.Context, now time.Time) int
}

type typingKey struct {
	conversationID chat.ConversationID
	participant    chat.ParticipantID
}

// PresenceService owns the typing signals. A signal lives for one window
// after its last refresh; observers apply the same window locally. Signals
// are mirrored in the store with a TTL; the in-memory index decides which
// clears are real so a clear of an absent signal publishes nothing.
type PresenceService struct {
	mu         sync.Mutex
	log        *slog.Logger
	repository storage.ITypingRepository
	bus        contract.IEventBus
	window     time.Duration
	clock      func() time.Time
	live       map[typingKey]time.Time
}

func NewPresenceService(log *slog.Logger, repository storage.ITypingRepository,
	bus contract.IEventBus, window time.Duration) *PresenceService {
	return &PresenceService{
		log:        log,
		repository: repository,
		bus:        bus,
		window:     window,
		clock:      time.Now,
		live:       make(map[typingKey]time.Time),
	}
}

// SetTyping writes or refreshes the signal. Every call publishes, so
// observers can push their local expiry forward.
func (s *PresenceService) SetTyping(ctx context.Context, id chat.ConversationID, p chat.ParticipantID) {
	expiresAt := s.clock().Add(s.window)

	s.mu.Lock()
	s.live[typingKey{id, p}] = expiresAt
	s.mu.Unlock()

	signal := chat.TypingSignal{ConversationID: id, Participant: p, ExpiresAt: expiresAt}
	if err := s.repository.PutTyping(signal); err != nil {
		s.log.Warn("Typing signal not stored", "conversation_id", id, "participant", p, "error", err)
	}
	s.publish(ctx, event.TypingChanged{
		ConversationID: id,
		Participant:    p,
		IsTyping:       true,
		ExpiresAt:      expiresAt,
	})
}

// ClearTyping removes the signal. Clearing an absent signal is a no-op.
func (s *PresenceService) ClearTyping(ctx context.Context, id chat.ConversationID, p chat.ParticipantID) {
	s.mu.Lock()
	_, existed := s.live[typingKey{id, p}]
	delete(s.live, typingKey{id, p})
	s.mu.Unlock()

	stored, err := s.repository.DeleteTyping(id, p)
	if err != nil {
		s.log.Warn("Typing signal not deleted", "conversation_id", id, "participant", p, "error", err)
	}
	if !existed && !stored {
		return
	}
	s.publish(ctx, event.TypingChanged{ConversationID: id, Participant: p, IsTyping: false})
}

// Typing lists the live typers of a conversation.
func (s *PresenceService) Typing(_ context.Context, id chat.ConversationID) []chat.TypingSignal {
	now := s.clock()
	signals, err := s.repository.ListTyping(id, now)
	if err == nil {
		return signals
	}
	s.log.Warn("Typing signals not listed, using memory", "conversation_id", id, "error", err)

	s.mu.Lock()
	defer s.mu.Unlock()
	var res []chat.TypingSignal
	for key, expiresAt := range s.live {
		if key.conversationID == id && expiresAt.After(now) {
			res = append(res, chat.TypingSignal{ConversationID: id, Participant: key.participant, ExpiresAt: expiresAt})
		}
	}
	return res
}

// Expire drops the signals whose owner stopped refreshing them and
// publishes a clear for each. It returns how many were dropped.
func (s *PresenceService) Expire(ctx context.Context, now time.Time) int {
	s.mu.Lock()
	expired := lo.Filter(lo.Keys(s.live), func(key typingKey, _ int) bool {
		return !s.live[key].After(now)
	})
	for _, key := range expired {
		delete(s.live, key)
	}
	s.mu.Unlock()

	for _, key := range expired {
		if _, err := s.repository.DeleteTyping(key.conversationID, key.participant); err != nil {
			s.log.Debug("Expired typing signal not deleted", "conversation_id", key.conversationID, "error", err)
		}
		s.publish(ctx, event.TypingChanged{
			ConversationID: key.conversationID,
			Participant:    key.participant,
			IsTyping:       false,
		})
	}
	return len(expired)
}

func (s *PresenceService) publish(ctx context.Context, e event.TypingChanged) {
	if err := s.bus.Publish(ctx, e); err != nil {
		s.log.Debug("Typing change not broadcast", "conversation_id", e.ConversationID, "error", err)
	}
}
