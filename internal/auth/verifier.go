package auth

import (
	"careertrack/internal/domain"

	jw "github.com/golang-jwt/jwt/v5"
)

// Verifier is the identity collaborator: given a bearer credential it
// returns the verified subject id, or ErrUnauthorized. Handlers reject
// the request before any storage access when verification fails.
type Verifier interface {
	Verify(token string) (string, error)
}

// JWTVerifier validates HS256-signed tokens issued by the auth service.
type JWTVerifier struct {
	secret []byte
}

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

func (v *JWTVerifier) Verify(token string) (string, error) {
	t, err := jw.Parse(token, func(t *jw.Token) (interface{}, error) {
		return v.secret, nil
	}, jw.WithValidMethods([]string{"HS256"}))
	if err != nil || !t.Valid {
		return "", domain.ErrUnauthorized
	}
	mc, ok := t.Claims.(jw.MapClaims)
	if !ok {
		return "", domain.ErrUnauthorized
	}
	sub, _ := mc["sub"].(string)
	if sub == "" {
		return "", domain.ErrUnauthorized
	}
	return sub, nil
}
