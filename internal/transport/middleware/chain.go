package middleware

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/pet-health-journal/internal/config"
)

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes middleware so that the first one runs outermost:
// Chain(a, b)(h) is a(b(h)). Nil entries are skipped.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			if mws[i] == nil {
				continue
			}
			final = mws[i](final)
		}
		return final
	}
}

// Stack is the journal API middleware in serving order. Recovery sits
// outermost so a panic anywhere below still yields a JSON 500 that carries
// the request id. The write limiter sits innermost so rejected writes are
// logged and answered with CORS headers. A nil limiter or a non-positive
// limit disables write limiting.
func Stack(logger *slog.Logger, cors config.CORSConfig, limiter *RateLimiter, writesPerMinute int) Middleware {
	var limit Middleware
	if limiter != nil && writesPerMinute > 0 {
		limit = limiter.LimitWrites(writesPerMinute)
	}
	return Chain(
		Recovery(logger),
		RequestID(),
		Logger(logger),
		CORS(cors),
		limit,
	)
}
