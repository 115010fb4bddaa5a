// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ContextKey is a type for context keys.
type ContextKey string

// OperatorKey is the context key for the resolved operator display name.
const OperatorKey ContextKey = "operator"

// DefaultOperator labels reports generated without an identified caller.
const DefaultOperator = "sistema"

// operatorClaims carries the display name claim of the hotel backend's tokens.
type operatorClaims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// OperatorIdentity resolves the caller's display name for the report's
// "generated by" label. It is not an authentication gate: a missing or
// invalid token falls back to the X-Operator header and then to the
// system default rather than rejecting the request.
type OperatorIdentity struct {
	secret []byte
}

// NewOperatorIdentity creates a new operator-identity middleware instance.
func NewOperatorIdentity(secret string) *OperatorIdentity {
	return &OperatorIdentity{secret: []byte(secret)}
}

// Resolve returns a Gin middleware handler that stores the operator name in
// the request context.
func (m *OperatorIdentity) Resolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(OperatorKey), m.operatorName(c))
		c.Next()
	}
}

func (m *OperatorIdentity) operatorName(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		token := authHeader[7:]
		claims := &operatorClaims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
			return m.secret, nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err == nil && parsed.Valid && claims.Name != "" {
			return claims.Name
		}
	}

	if header := c.GetHeader("X-Operator"); header != "" {
		return header
	}

	return DefaultOperator
}

// GetOperatorFromContext returns the operator name stored by Resolve.
func GetOperatorFromContext(c *gin.Context) string {
	if value, ok := c.Get(string(OperatorKey)); ok {
		if name, ok := value.(string); ok && name != "" {
			return name
		}
	}
	return DefaultOperator
}
