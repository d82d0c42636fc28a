package v1handler

import (
	"crypto/rsa"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/lufutu/scrumsan-sub003/internal/config"
	"github.com/lufutu/scrumsan-sub003/pkg/domain"
)

const userIDKey = "v1handler.userID"

// SecHandlerOptions configures bearer-token verification.
type SecHandlerOptions struct {
	// PublicKeyPEM is the PEM-encoded RSA public key tokens are verified
	// against.
	PublicKeyPEM string
}

// NewSecHandlerOptions extracts the security handler configuration from the
// application configuration.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKeyPEM: cfg.JWT.PublicKey}
}

// SecHandler verifies RS256 bearer tokens and stores the authenticated user
// ID in the request context.
type SecHandler struct {
	publicKey *rsa.PublicKey
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKeyPEM))
	if err != nil {
		return nil, err
	}

	return &SecHandler{publicKey: key}, nil
}

// Middleware rejects requests without a valid bearer token.
func (s *SecHandler) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Error: "missing authorization header"})

			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Error: "authorization header must use the Bearer scheme"})

			return
		}

		claims := &jwt.RegisteredClaims{}
		_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
			return s.publicKey, nil
		}, jwt.WithValidMethods([]string{"RS256"}))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Error: "invalid token"})

			return
		}

		sub, err := uuid.Parse(claims.Subject)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Error: "invalid token subject"})

			return
		}

		c.Set(userIDKey, domain.UserID(sub))
		c.Next()
	}
}

// userID returns the authenticated caller. The auth middleware guarantees it
// is set on every route registered through Register.
func userID(c *gin.Context) domain.UserID {
	return c.MustGet(userIDKey).(domain.UserID)
}
