package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"gestao_backoffice/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ctxActorID   = "actor_id"
	ctxActorName = "actor_name"
)

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid Authorization header", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized)
)

// ActorClaims identifies who is acting. Sub is the user id.
type ActorClaims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// RequireActor validates an HS256 bearer token signed with secret and stores the
// actor it names in the gin context.
func RequireActor(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			log.Printf("[http][auth] missing token path=%s", c.FullPath())
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		claims, err := parseActor(strings.TrimSpace(token), key)
		if err != nil {
			log.Printf("[http][auth] invalid token path=%s err=%v", c.FullPath(), err)
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		c.Set(ctxActorID, claims.Subject)
		c.Set(ctxActorName, claims.Name)
		c.Next()
	}
}

func parseActor(token string, key []byte) (*ActorClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &ActorClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*ActorClaims)
	if !ok || !parsed.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return nil, errors.New("token without subject")
	}
	return claims, nil
}

// Actor returns the authenticated actor, if RequireActor ran for this request.
func Actor(c *gin.Context) (id, name string, ok bool) {
	id = c.GetString(ctxActorID)
	if id == "" {
		return "", "", false
	}
	return id, c.GetString(ctxActorName), true
}
