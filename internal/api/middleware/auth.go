// internal/api/middleware/auth.go
package middleware

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"jobboard/internal/models"
	"jobboard/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	authorizationHeader = "Authorization"
	claimsCtx           = "sessionClaims" // Key to store session claims in context
	currentUserCtx      = "currentUser"   // Key to store the loaded user row in context
)

// SessionClaims are the identity-provider claims carried in the session
// token. Subject is the provider's stable user identifier.
type SessionClaims struct {
	Email           string       `json:"email"`
	FirstName       *string      `json:"firstName,omitempty"`
	LastName        *string      `json:"lastName,omitempty"`
	ProfileImageURL *string      `json:"profileImageUrl,omitempty"`
	Role            *models.Role `json:"role,omitempty"`
	jwt.RegisteredClaims
}

func parseSessionToken(tokenString, secret string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	if claims.Subject == "" {
		return nil, errors.New("token subject missing")
	}
	return claims, nil
}

// SessionAuth creates a Gin middleware that requires a valid session token.
// Requests without one are rejected with 401 before any handler runs.
func SessionAuth(sessionSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(authorizationHeader)
		if authHeader == "" {
			log.Println("Auth middleware: Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
			log.Println("Auth middleware: Invalid Authorization header format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		claims, err := parseSessionToken(headerParts[1], sessionSecret)
		if err != nil {
			log.Printf("Auth middleware: Error parsing token: %v", err)
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Session expired"})
			} else {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			}
			return
		}

		c.Set(claimsCtx, claims)
		c.Next()
	}
}

// OptionalSessionAuth parses the session token when present but never
// rejects the request. Used on routes that personalize their response for
// logged-in viewers.
func OptionalSessionAuth(sessionSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(authorizationHeader)
		if authHeader == "" {
			c.Next()
			return
		}

		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
			c.Next()
			return
		}

		claims, err := parseSessionToken(headerParts[1], sessionSecret)
		if err != nil {
			log.Printf("Auth middleware: Ignoring invalid optional token: %v", err)
			c.Next()
			return
		}

		c.Set(claimsCtx, claims)
		c.Next()
	}
}

// RequireRole loads the caller's user row and rejects the request with 403
// unless the stored role matches. Runs after SessionAuth. The handler can
// read the loaded user via GetCurrentUser without another lookup.
func RequireRole(userService services.UserService, role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := GetSessionClaims(c)
		if err != nil {
			log.Printf("Auth middleware: RequireRole without session claims: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		user, err := userService.GetUser(c.Request.Context(), claims.Subject)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
				return
			}
			log.Printf("Auth middleware: Error loading user %s: %v", claims.Subject, err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}

		if user.Role != role {
			log.Printf("Auth middleware: User %s with role %s denied access to %s route", user.ID, user.Role, role)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
			return
		}

		c.Set(currentUserCtx, user)
		c.Next()
	}
}

// GetSessionClaims returns the parsed session claims stored by SessionAuth
// or OptionalSessionAuth.
func GetSessionClaims(c *gin.Context) (*SessionClaims, error) {
	claimsAny, exists := c.Get(claimsCtx)
	if !exists {
		return nil, errors.New("session claims not found in context")
	}

	claims, ok := claimsAny.(*SessionClaims)
	if !ok {
		return nil, errors.New("session claims in context are of invalid type")
	}

	return claims, nil
}

// GetCurrentUser returns the user row loaded by RequireRole.
func GetCurrentUser(c *gin.Context) (*models.User, error) {
	userAny, exists := c.Get(currentUserCtx)
	if !exists {
		return nil, errors.New("current user not found in context")
	}

	user, ok := userAny.(*models.User)
	if !ok {
		return nil, errors.New("current user in context is of invalid type")
	}

	return user, nil
}

// SessionUserID returns the token subject for the current request, or the
// empty string when the request carries no session.
func SessionUserID(c *gin.Context) string {
	claims, err := GetSessionClaims(c)
	if err != nil {
		return ""
	}
	return claims.Subject
}
