package e2e

import (
	"context"
	"fmt"
	"strings"
	"teammate-chat/auth"
	"teammate-chat/domain/chat"
	pb "teammate-chat/proto/chat/v1"
	"testing"
	"time"

	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

type BaseGrpcSuite struct {
	suite.Suite
	Config Config
	tokens *auth.TokenManager
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseGrpcSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.MasterAddr == "" {
		s.T().Skip("MASTER_ADDR is not set")
	}
	s.Require().NotEmpty(s.Config.JWTSecret, "JWT_SECRET is required to mint tokens")
	s.tokens = auth.NewTokenManager(s.Config.JWTSecret, time.Hour)
}

// GrpcConn initializes a gRPC connection with logging, colors, and JSON debugging
func (s *BaseGrpcSuite) GrpcConn(t *testing.T, name string, addr string) *grpc.ClientConn {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)

	marshaler := protojson.MarshalOptions{
		UseProtoNames:   true,
		Multiline:       true,
		EmitUnpopulated: true,
	}

	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
			start := time.Now()
			err := invoker(ctx, method, req, reply, cc, opts...)

			logBuilder := strings.Builder{}
			fmt.Fprintf(&logBuilder, "GRPC %s [%s] in %v", method, status.Code(err), time.Since(start))

			// Log full JSON request/response bodies if E2E_DEBUG_JSON is enabled
			if s.Config.DebugJSON {
				fmt.Fprintln(&logBuilder, "\nREQUEST:")
				fmt.Fprintln(&logBuilder, marshaler.Format(req.(proto.Message)))
				if err != nil {
					fmt.Fprintln(&logBuilder, "ERROR:", err)
				} else {
					fmt.Fprintln(&logBuilder, "RESPONSE:")
					fmt.Fprintln(&logBuilder, marshaler.Format(reply.(proto.Message)))
				}
			}
			t.Log(logBuilder.String())
			return err
		}),
	)
	s.Require().NoError(err, "Failed to connect to gRPC server at "+addr)
	return conn
}

// WithMaster provides a chat client acting as participant within a contextual test step
func (s *BaseGrpcSuite) WithMaster(name string, participant chat.ParticipantID, fn func(ctx context.Context, client pb.ChatServiceClient)) {
	conn := s.GrpcConn(s.T(), name, s.Config.MasterAddr)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(s.As(participant), s.Config.Timeout)
	defer cancel()

	fn(ctx, pb.NewChatServiceClient(conn))
}

// As returns a context carrying the bearer token of participant.
func (s *BaseGrpcSuite) As(participant chat.ParticipantID) context.Context {
	token, err := s.tokens.GenerateToken(participant, nil)
	s.Require().NoError(err)
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+token)
}
