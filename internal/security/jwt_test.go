package security_test

import (
	"media-share-server/config"
	"media-share-server/internal/security"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecretKey = "test-secret-key"

func newTestJWTService() *security.JWTService {
	return security.NewJWTService(&config.JWTConfig{
		SecretKey:      testSecretKey,
		AccessTokenTTL: "15m",
	})
}

func TestGenerateAndValidateOwnerToken(t *testing.T) {
	service := newTestJWTService()

	token, err := service.GenerateOwnerToken("owner-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateJWT(token, []byte(testSecretKey))
	require.NoError(t, err)
	assert.Equal(t, "owner-1", claims.OwnerUUID)
	assert.False(t, claims.IsAdmin)
	assert.Equal(t, "Media-share-server", claims.Issuer)
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	service := newTestJWTService()

	token, err := service.GenerateOwnerToken("owner-1")
	require.NoError(t, err)

	_, err = service.ValidateJWT(token, []byte("другой-секрет"))
	assert.Error(t, err)
}

func TestValidateJWT_Garbage(t *testing.T) {
	service := newTestJWTService()

	_, err := service.ValidateJWT("не.jwt.вообще", []byte(testSecretKey))
	assert.Error(t, err)
}

// middlewareRecorder : хэндлер, запоминающий claims из контекста запроса
func middlewareRecorder(claims **security.Claims) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		got, err := security.GetClaimsFromContext(request.Context())
		if err == nil {
			*claims = got
		}
		writer.WriteHeader(http.StatusOK)
	})
}

func TestOwnerMiddleware_NoHeaderMeansAnonymous(t *testing.T) {
	service := newTestJWTService()

	var claims *security.Claims
	handler := security.OwnerMiddleware([]byte(testSecretKey), service, "admin-token")(middlewareRecorder(&claims))

	request := httptest.NewRequest(http.MethodPost, "/api/media", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	require.NotNil(t, claims)
	assert.Equal(t, security.AnonymousOwner, claims.OwnerUUID)
	assert.False(t, claims.IsAdmin)
}

func TestOwnerMiddleware_ValidBearerToken(t *testing.T) {
	service := newTestJWTService()

	token, err := service.GenerateOwnerToken("owner-1")
	require.NoError(t, err)

	var claims *security.Claims
	handler := security.OwnerMiddleware([]byte(testSecretKey), service, "admin-token")(middlewareRecorder(&claims))

	request := httptest.NewRequest(http.MethodPost, "/api/media", nil)
	request.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	require.NotNil(t, claims)
	assert.Equal(t, "owner-1", claims.OwnerUUID)
}

func TestOwnerMiddleware_AdminToken(t *testing.T) {
	service := newTestJWTService()

	var claims *security.Claims
	handler := security.OwnerMiddleware([]byte(testSecretKey), service, "admin-token")(middlewareRecorder(&claims))

	request := httptest.NewRequest(http.MethodDelete, "/api/media/x", nil)
	request.Header.Set("Authorization", "Bearer admin-token")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	require.NotNil(t, claims)
	assert.True(t, claims.IsAdmin)
}

func TestOwnerMiddleware_InvalidTokenRejected(t *testing.T) {
	service := newTestJWTService()

	var claims *security.Claims
	handler := security.OwnerMiddleware([]byte(testSecretKey), service, "admin-token")(middlewareRecorder(&claims))

	request := httptest.NewRequest(http.MethodPost, "/api/media", nil)
	request.Header.Set("Authorization", "Bearer испорченный-токен")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Nil(t, claims)
}

func TestOwnerMiddleware_NonBearerSchemeRejected(t *testing.T) {
	service := newTestJWTService()

	var claims *security.Claims
	handler := security.OwnerMiddleware([]byte(testSecretKey), service, "")(middlewareRecorder(&claims))

	request := httptest.NewRequest(http.MethodPost, "/api/media", nil)
	request.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Nil(t, claims)
}
