package e2e

import (
	"context"
	"teammate-chat/domain/chat"
	pb "teammate-chat/proto/chat/v1"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type testDirectChatSuite struct {
	BaseGrpcSuite
}

func TestDirectChatSuite(t *testing.T) {
	suite.Run(t, &testDirectChatSuite{})
}

func (s *testDirectChatSuite) TestDirectMessageFlow() {
	// Fresh participants so the scenario can run against a long-lived master
	alice := chat.ParticipantID("alice-" + uuid.NewString()[:8])
	bob := chat.ParticipantID("bob-" + uuid.NewString()[:8])
	var conversationID string

	s.Run("Step 1: Both sides resolve the same conversation", func() {
		s.WithMaster("Alice resolves", alice, func(ctx context.Context, client pb.ChatServiceClient) {
			res, err := client.ResolveDirect(ctx, &pb.ResolveDirectRequest{PeerId: string(bob)})
			s.Require().NoError(err)
			conversationID = res.Conversation.Id
		})
		s.WithMaster("Bob resolves", bob, func(ctx context.Context, client pb.ChatServiceClient) {
			res, err := client.ResolveDirect(ctx, &pb.ResolveDirectRequest{PeerId: string(alice)})
			s.Require().NoError(err)
			s.Require().Equal(conversationID, res.Conversation.Id)
		})
	})

	s.Run("Step 2: Bob receives alice's message live and gets notified", func() {
		s.WithMaster("Bob subscribes", bob, func(ctx context.Context, client pb.ChatServiceClient) {
			stream, err := client.Subscribe(ctx, &pb.SubscribeRequest{ConversationId: conversationID})
			s.Require().NoError(err)
			inbox, err := client.WatchNotifications(ctx, &pb.WatchNotificationsRequest{})
			s.Require().NoError(err)
			// Streams are registered asynchronously on the master
			time.Sleep(200 * time.Millisecond)

			var posted *pb.Message
			s.WithMaster("Alice posts", alice, func(ctx context.Context, client pb.ChatServiceClient) {
				res, err := client.PostMessage(ctx, &pb.PostMessageRequest{ConversationId: conversationID, Content: "hello bob"})
				s.Require().NoError(err)
				posted = res.Message
			})

			evt, err := stream.Recv()
			s.Require().NoError(err)
			s.Require().NotNil(evt.GetMessage())
			s.Require().Equal(posted.Id, evt.GetMessage().GetId())

			notification, err := inbox.Recv()
			s.Require().NoError(err)
			s.Require().Equal(string(alice), notification.Notification.Sender)
		})
	})

	s.Run("Step 3: History and unread notifications", func() {
		s.WithMaster("Bob reads", bob, func(ctx context.Context, client pb.ChatServiceClient) {
			history, err := client.GetHistory(ctx, &pb.GetHistoryRequest{ConversationId: conversationID})
			s.Require().NoError(err)
			s.Require().Len(history.Messages, 1)

			updated, err := client.MarkNotificationsRead(ctx, &pb.MarkNotificationsReadRequest{})
			s.Require().NoError(err)
			s.Require().EqualValues(1, updated.Updated)
		})
	})
}
