package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	jwt "github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"mindfullearner/internal/apperr"
	"mindfullearner/internal/respond"
)

type ctxKey int

const userIDKey ctxKey = iota

const (
	UserIDHeader = "User-Id"
	UserIDQuery  = "userId"
)

// UserChecker reports whether a user id exists.
type UserChecker interface {
	UserExists(ctx context.Context, id int64) (bool, error)
}

type AuthMiddleware struct {
	jwtSecret   []byte
	users       UserChecker
	allowHeader bool
	logger      *zap.Logger
}

// NewAuthMiddleware builds the identity gate. With allowHeader set, callers
// without a bearer token may name themselves via the User-Id header or the
// userId query parameter.
func NewAuthMiddleware(secret []byte, users UserChecker, allowHeader bool, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{jwtSecret: secret, users: users, allowHeader: allowHeader, logger: logger}
}

// RequireUser resolves the caller to an existing user or answers 401.
func (m *AuthMiddleware) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := m.resolve(r)
		if err != nil {
			respond.Error(w, m.logger, err)
			return
		}

		ok, err := m.users.UserExists(r.Context(), userID)
		if err != nil {
			respond.Error(w, m.logger, err)
			return
		}
		if !ok {
			respond.Error(w, m.logger, apperr.Unauthenticated("unknown_user"))
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

func (m *AuthMiddleware) resolve(r *http.Request) (int64, error) {
	if authz := r.Header.Get("Authorization"); strings.HasPrefix(authz, "Bearer ") {
		return m.parseToken(strings.TrimPrefix(authz, "Bearer "))
	}

	if m.allowHeader {
		raw := r.Header.Get(UserIDHeader)
		if raw == "" {
			raw = r.URL.Query().Get(UserIDQuery)
		}
		if raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || id <= 0 {
				return 0, apperr.Unauthenticated("invalid_user_id")
			}
			return id, nil
		}
	}

	return 0, apperr.Unauthenticated("missing_identity")
}

func (m *AuthMiddleware) parseToken(tokenStr string) (int64, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return 0, apperr.Unauthenticated("invalid_token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, apperr.Unauthenticated("invalid_claims")
	}
	sub, ok := claims["sub"].(float64)
	if !ok || sub <= 0 {
		return 0, apperr.Unauthenticated("invalid_subject")
	}
	return int64(sub), nil
}

func WithUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFrom returns the id stored by RequireUser.
func UserIDFrom(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}
