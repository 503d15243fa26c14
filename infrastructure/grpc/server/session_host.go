package server

import (
	"io"
	"log/slog"
	"teammate-chat/auth"
	"teammate-chat/domain/chat"
	"teammate-chat/errors"
	pb "teammate-chat/proto/chat/v1"
	"teammate-chat/session"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// SessionHost runs one session.Controller per Session stream. Frames
// received from the client become controller intents and every published
// view is pushed back.
type SessionHost struct {
	log          *slog.Logger
	interceptor  *auth.Interceptor
	config       session.Config
	dependencies session.Dependencies
}

func NewSessionHost(log *slog.Logger, interceptor *auth.Interceptor,
	config session.Config, dependencies session.Dependencies) *SessionHost {
	return &SessionHost{
		log:          log,
		interceptor:  interceptor,
		config:       config,
		dependencies: dependencies,
	}
}

// Serve returns once the controller is gone. The receive loop is not part
// of the group since Recv only unblocks when the handler has returned.
func (h *SessionHost) Serve(stream pb.ChatService_SessionServer, sc chat.SessionContext) error {
	controller := session.NewController(h.log.With("participant", sc.Participant), h.config, h.dependencies, sc)
	recvErr := make(chan error, 1)

	go func() {
		defer controller.Close()
		for {
			frame, err := stream.Recv()
			if err == io.EOF {
				return
			}
			if err != nil {
				if status.Code(err) != codes.Canceled {
					recvErr <- err
				}
				return
			}
			if err := h.dispatch(controller, frame); err != nil {
				if !errors.Is(err, errors.ErrSessionClosed) {
					recvErr <- err
				}
				return
			}
		}
	}()

	g, gCtx := errgroup.WithContext(stream.Context())
	g.Go(func() error {
		return controller.Run(gCtx)
	})
	g.Go(func() error {
		for {
			select {
			case <-controller.Done():
				return nil
			case view := <-controller.Views():
				if err := stream.Send(toSessionView(view)); err != nil {
					h.log.Debug("Session stream closed", "error", err)
					controller.Close()
					return nil
				}
			}
		}
	})
	if err := g.Wait(); err != nil {
		return err
	}

	select {
	case err := <-recvErr:
		return err
	default:
		return nil
	}
}

// dispatch translates a frame into a controller intent.
func (h *SessionHost) dispatch(controller *session.Controller, frame *pb.SessionFrame) error {
	switch f := frame.GetFrame().(type) {
	case *pb.SessionFrame_Select:
		return controller.SelectConversation(chat.ConversationID(f.Select.GetConversationId()))
	case *pb.SessionFrame_OpenDirect:
		return controller.OpenDirect(chat.ParticipantID(f.OpenDirect.GetPeerId()))
	case *pb.SessionFrame_Input:
		return controller.OnInputChange(f.Input.GetText())
	case *pb.SessionFrame_Send:
		return controller.SendMessage(f.Send.GetText())
	case *pb.SessionFrame_Rebind:
		sc, err := h.interceptor.Authenticate(f.Rebind.GetToken())
		if err != nil {
			return err
		}
		return controller.Rebind(sc)
	default:
		return status.Error(codes.InvalidArgument, "empty session frame")
	}
}
