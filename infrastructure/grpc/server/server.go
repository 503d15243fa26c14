package server

import (
	"log/slog"
	"teammate-chat/auth"
	pb "teammate-chat/proto/chat/v1"

	grpc3 "github.com/mama165/sdk-go/grpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// PublicMethods can be called without a bearer token.
var PublicMethods = []string{
	healthpb.Health_Check_FullMethodName,
	healthpb.Health_Watch_FullMethodName,
}

// NewGrpcServer builds the server with logging and authentication in front
// of every call and registers the chat and health services.
func NewGrpcServer(log *slog.Logger, interceptor *auth.Interceptor, chatServer *ChatServer) (*grpc.Server, *health.Server) {
	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc3.UnaryLoggingInterceptor(log),
			interceptor.Unary(),
		),
		grpc.ChainStreamInterceptor(
			interceptor.Stream(),
		))

	healthServer := health.NewServer()
	pb.RegisterChatServiceServer(s, chatServer)
	healthpb.RegisterHealthServer(s, healthServer)
	healthServer.SetServingStatus(pb.ChatService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	return s, healthServer
}
