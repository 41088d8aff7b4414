package security

import (
	"context"
	"fmt"
	"log"
	"media-share-server/config"
	"media-share-server/internal/util"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const (
	OwnerContextKey contextKey = "owner"
	// AnonymousOwner : метка владельца для загрузок без токена
	AnonymousOwner = "anonymous"
)

// Claims : токен несёт только метку владельца — аккаунтов и сессий в системе нет
type Claims struct {
	OwnerUUID string `json:"owner_uuid"`
	IsAdmin   bool   `json:"is_admin,omitempty"`
	jwt.RegisteredClaims
}

type JWTService struct {
	*config.JWTConfig
}

func NewJWTService(cfg *config.JWTConfig) *JWTService {
	return &JWTService{cfg}
}

// GenerateOwnerToken : выпускает токен с меткой владельца
func (service *JWTService) GenerateOwnerToken(ownerUUID string) (string, error) {
	timeDuration, err := time.ParseDuration(service.AccessTokenTTL)
	if err != nil {
		return "", util.LogError("ошибка парсинга access_token_ttl", err)
	}

	claims := Claims{
		OwnerUUID: ownerUUID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(timeDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "Media-share-server",
		},
	}

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	accessToken, err := jwtToken.SignedString([]byte(service.SecretKey))
	if err != nil {
		return "", util.LogError("ошибка подписи токена", err)
	}

	return accessToken, nil
}

func (service *JWTService) ValidateJWT(jwtTokenStr string, secretKey []byte) (*Claims, error) {
	var claims = &Claims{}

	jwtToken, err := jwt.ParseWithClaims(jwtTokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Header["alg"] != jwt.SigningMethodHS512.Alg() {
			return nil, fmt.Errorf("неверный способ подписи токена: %v", token.Header["alg"])
		}
		return secretKey, nil
	})

	if err != nil || jwtToken.Valid == false {
		return nil, util.LogError("невалидный токен", err)
	}

	return claims, nil
}

// OwnerMiddleware : необязательная авторизация — share-ссылки публичны по
// построению. Запрос без заголовка Authorization помечается владельцем
// "anonymous", предъявленный токен обязан быть валидным.
func OwnerMiddleware(secretKey []byte, jwtService *JWTService, adminToken string) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authorizationHeader := request.Header.Get("Authorization")
			if authorizationHeader == "" {
				anonymousClaims := &Claims{OwnerUUID: AnonymousOwner}
				req := request.WithContext(context.WithValue(request.Context(), OwnerContextKey, anonymousClaims))
				next.ServeHTTP(writer, req)
				return
			}

			if !strings.HasPrefix(authorizationHeader, "Bearer ") {
				http.Error(writer, "unauthorized", http.StatusUnauthorized)
				return
			}

			token := strings.TrimPrefix(authorizationHeader, "Bearer ")

			if adminToken != "" && token == adminToken {
				adminClaims := &Claims{
					OwnerUUID: "admin",
					IsAdmin:   true,
				}
				req := request.WithContext(context.WithValue(request.Context(), OwnerContextKey, adminClaims))
				next.ServeHTTP(writer, req)
				return
			}

			claims, err := jwtService.ValidateJWT(token, secretKey)
			if err != nil {
				log.Printf("невалидный токен: %v", err)
				http.Error(writer, "невалидный токен", http.StatusUnauthorized)
				return
			}

			req := request.WithContext(context.WithValue(request.Context(), OwnerContextKey, claims))
			next.ServeHTTP(writer, req)
		})
	}
}

func GetClaimsFromContext(ctx context.Context) (*Claims, error) {
	claims, ok := ctx.Value(OwnerContextKey).(*Claims)
	if !ok || claims == nil {
		return nil, fmt.Errorf("владелец не определён")
	}
	return claims, nil
}
