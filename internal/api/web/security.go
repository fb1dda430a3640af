package web

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"net/http"

	zlog "github.com/rs/zerolog/log"
)

type contextKey string

const nonceKey contextKey = "csp-nonce"

// Origins the embedded player loads from.
const (
	youtubeScripts = "https://www.youtube.com https://s.ytimg.com"
	youtubeFrames  = "https://www.youtube.com https://www.youtube-nocookie.com"
	youtubeImages  = "https://i.ytimg.com"
)

func generateNonce() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		zlog.Error().Msgf("failed to generate CSP nonce: %v", err)
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(b)
}

func nonceFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(nonceKey).(string); ok {
		return v
	}
	return ""
}

func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nonce := generateNonce()
		ctx := context.WithValue(r.Context(), nonceKey, nonce)

		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "SAMEORIGIN")

		csp := fmt.Sprintf(
			"default-src 'self'; img-src 'self' data: %s; script-src 'self' 'nonce-%s' %s; style-src 'self' 'nonce-%s'; frame-src %s; connect-src 'self'; frame-ancestors 'self';",
			youtubeImages, nonce, youtubeScripts, nonce, youtubeFrames,
		)
		w.Header().Set("Content-Security-Policy", csp)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
