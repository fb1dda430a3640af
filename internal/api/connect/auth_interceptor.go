package connect

import (
	"context"
	"crypto/subtle"

	"connectrpc.com/connect"
	"github.com/cockroachdb/errors"
)

const (
	// RemoteTokenHeader is the header name for the remote token.
	RemoteTokenHeader = "X-Remote-Token"
)

var errInvalidToken = errors.New("invalid remote token")

// NewTokenInterceptor creates an interceptor that validates the remote token
// on unary calls. An empty token disables the check.
func NewTokenInterceptor(token string) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if !ValidToken(token, req.Header().Get(RemoteTokenHeader)) {
				return nil, connect.NewError(connect.CodeUnauthenticated, errInvalidToken)
			}
			return next(ctx, req)
		}
	}
}

// ValidToken reports whether got matches the configured token.
func ValidToken(token, got string) bool {
	if token == "" {
		return true
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(got)) == 1
}

// NewClientTokenInterceptor creates a client interceptor that attaches the
// remote token to unary calls.
func NewClientTokenInterceptor(token string) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if token != "" && req.Spec().IsClient {
				req.Header().Set(RemoteTokenHeader, token)
			}
			return next(ctx, req)
		}
	}
}
