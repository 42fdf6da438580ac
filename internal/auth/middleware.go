package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/osse101/HarvestCodex_Go/internal/domain"
	"github.com/osse101/HarvestCodex_Go/internal/logger"
)

// TokenFromRequest extracts the bearer token from the Authorization header,
// falling back to the access_token query parameter.
// found is false when the request carries no credentials at all.
func TokenFromRequest(r *http.Request) (token string, found bool) {
	if header := r.Header.Get(HeaderAuthorization); header != "" {
		if len(header) < len(BearerPrefix) || !strings.EqualFold(header[:len(BearerPrefix)], BearerPrefix) {
			return "", true
		}
		return strings.TrimSpace(header[len(BearerPrefix):]), true
	}
	if q := r.URL.Query().Get(QueryAccessToken); q != "" {
		return q, true
	}
	return "", false
}

// Middleware authenticates requests that carry a token. Requests without
// credentials continue anonymously; invalid credentials get 401 and
// onFailure is called, if set.
func Middleware(v *Verifier, onFailure func(r *http.Request)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, found := TokenFromRequest(r)
			if !found {
				next.ServeHTTP(w, r)
				return
			}

			user, err := v.Verify(token)
			if err != nil {
				logger.FromContext(r.Context()).Warn(LogMsgTokenRejected,
					"path", r.URL.Path,
					"error", err)
				if onFailure != nil {
					onFailure(r)
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": domain.ErrMsgInvalidToken})
				return
			}

			ctx := WithUser(r.Context(), user)
			ctx = logger.WithUserID(ctx, user.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
