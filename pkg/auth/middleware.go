package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/propdesk/credit-auction/pkg/utils"
)

type ContextKey string

const BrokerIDKey ContextKey = "brokerID"

func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		jwtService := &JWTService{}
		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), BrokerIDKey, claims.BrokerID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
