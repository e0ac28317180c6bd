package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/starwars-api/internal/application"
	"github.com/oksasatya/starwars-api/pkg/response"
)

const CtxIdentityKey = "identity"

// TokenVerifier resolves a bearer token to its identity claim.
type TokenVerifier interface {
	VerifyToken(token string) (string, error)
}

// BearerAuth reads the Authorization header, validates the token and stores
// the identity claim in the context. Failures abort with 401 before the
// handler runs.
func BearerAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			response.Error(c, http.StatusUnauthorized, "missing access token")
			return
		}
		identity, err := verifier.VerifyToken(token)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, application.Message(err, "invalid access token"))
			return
		}
		c.Set(CtxIdentityKey, identity)
		c.Next()
	}
}

// Identity returns the identity claim set by BearerAuth.
func Identity(c *gin.Context) string {
	return c.GetString(CtxIdentityKey)
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
