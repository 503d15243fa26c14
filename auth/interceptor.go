package auth

import (
	"context"
	"strings"
	"teammate-chat/domain/chat"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type contextKey string

const sessionKey contextKey = "session"

// WithSession stores the authenticated session in ctx.
func WithSession(ctx context.Context, sc chat.SessionContext) context.Context {
	return context.WithValue(ctx, sessionKey, sc)
}

// SessionFromContext returns the session injected by the interceptors.
func SessionFromContext(ctx context.Context) (chat.SessionContext, bool) {
	sc, ok := ctx.Value(sessionKey).(chat.SessionContext)
	return sc, ok && sc.Authenticated()
}

// Interceptor validates the bearer token of every call, except for the
// public methods, and injects the resulting SessionContext.
type Interceptor struct {
	tokens        *TokenManager
	publicMethods map[string]struct{}
}

func NewInterceptor(tokens *TokenManager, publicMethods ...string) *Interceptor {
	public := make(map[string]struct{}, len(publicMethods))
	for _, m := range publicMethods {
		public[m] = struct{}{}
	}
	return &Interceptor{tokens: tokens, publicMethods: public}
}

func (i *Interceptor) Unary() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if i.isPublic(info.FullMethod) {
			return handler(ctx, req)
		}
		authCtx, err := i.authenticate(ctx)
		if err != nil {
			return nil, err
		}
		return handler(authCtx, req)
	}
}

func (i *Interceptor) Stream() grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if i.isPublic(info.FullMethod) {
			return handler(srv, ss)
		}
		authCtx, err := i.authenticate(ss.Context())
		if err != nil {
			return err
		}
		return handler(srv, &authenticatedStream{ServerStream: ss, ctx: authCtx})
	}
}

// Authenticate validates a raw token, used by the session rebind frame.
func (i *Interceptor) Authenticate(token string) (chat.SessionContext, error) {
	sc, err := i.tokens.ValidateToken(strings.TrimPrefix(token, "Bearer "))
	if err != nil {
		return chat.SessionContext{}, status.Error(codes.Unauthenticated, "invalid or expired token")
	}
	return sc, nil
}

func (i *Interceptor) authenticate(ctx context.Context) (context.Context, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "metadata is missing")
	}

	// Expecting the standard "Bearer <token>" format
	values := md.Get("authorization")
	if len(values) == 0 {
		return nil, status.Error(codes.Unauthenticated, "authorization token is missing")
	}

	sc, err := i.Authenticate(values[0])
	if err != nil {
		return nil, err
	}
	return WithSession(ctx, sc), nil
}

func (i *Interceptor) isPublic(method string) bool {
	_, ok := i.publicMethods[method]
	return ok
}

type authenticatedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *authenticatedStream) Context() context.Context {
	return s.ctx
}
