package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

type Service interface {
	GenerateAccessToken(userID string, role string) (token string, expiresAt int64, err error)
	GenerateServiceToken() (token string, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey                  string
	accessTokenExpirationTime  string
	serviceTokenExpirationTime string
	tokenAuth                  *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string, serviceTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                  secretKey,
		accessTokenExpirationTime:  accessTokenExpirationTime,
		serviceTokenExpirationTime: serviceTokenExpirationTime,
		tokenAuth:                  jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(userID string, role string) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"jti":     uuid.NewString(),
		"user_id": userID,
		"role":    role,
		"type":    "access",
		"exp":     expiresAt,
	})
	return tokenString, expiresAt, err
}

// GenerateServiceToken issues a short-lived token for service-to-service
// calls to the sibling HR services behind the gateway.
func (j *JWTService) GenerateServiceToken() (token string, err error) {
	expDuration, err := time.ParseDuration(j.serviceTokenExpirationTime)
	if err != nil {
		return "", err
	}

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"jti":     uuid.NewString(),
		"service": "hr3-backoffice",
		"type":    "service",
		"exp":     time.Now().Add(expDuration).Unix(),
	})
	return tokenString, err
}
