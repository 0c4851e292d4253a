package middleware

import (
	"errors"
	"net/http"
	"strings"

	"NestorAI/app/common/consts/biz"
	"NestorAI/app/common/util"

	"github.com/golang-jwt/jwt/v4"
	"github.com/zeromicro/go-zero/rest/httpx"
)

type identityClaims struct {
	Uid   string `json:"uid"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// AuthMiddleware verifies the bearer identity token on protected routes and
// injects the caller identity into the request context.
type AuthMiddleware struct {
	secret string
}

func NewAuthMiddleware(secret string) *AuthMiddleware {
	return &AuthMiddleware{secret: secret}
}

func (m *AuthMiddleware) Handle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(biz.AUTH_HEADER)
		token := strings.TrimPrefix(header, biz.BEARER_PREFIX)
		if header == "" || token == header {
			httpx.WriteJson(w, http.StatusUnauthorized, map[string]string{"error": "Missing token"})
			return
		}

		claims, err := parseIdentityToken(token, m.secret)
		if err != nil {
			httpx.WriteJson(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
			return
		}

		util.InjectIdentity2Ctx(r, util.Identity{Uid: claims.Uid, Email: claims.Email})
		next(w, r)
	}
}

func parseIdentityToken(tokenStr, secret string) (*identityClaims, error) {
	if secret == "" {
		return nil, errors.New("identity secret is empty")
	}

	token, err := jwt.ParseWithClaims(tokenStr, &identityClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*identityClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	if claims.Uid == "" {
		return nil, errors.New("token has no uid claim")
	}

	return claims, nil
}
