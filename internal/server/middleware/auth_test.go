package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeValidator struct {
	userID uuid.UUID
	err    error
}

type fakeClaims struct{ userID uuid.UUID }

func (c *fakeClaims) GetUserID() uuid.UUID { return c.userID }

func (v *fakeValidator) ValidateToken(_ string) (UserIDGetter, error) {
	if v.err != nil {
		return nil, v.err
	}
	return &fakeClaims{userID: v.userID}, nil
}

func protectedHandler(t *testing.T, expected uuid.UUID) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := GetUserID(r)
		require.NoError(t, err)
		assert.Equal(t, expected, userID)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuth_ValidToken(t *testing.T) {
	userID := uuid.New()
	handler := Auth(&fakeValidator{userID: userID})(protectedHandler(t, userID))

	req := httptest.NewRequest(http.MethodPost, "/v1/generate", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuth_MissingHeader(t *testing.T) {
	handler := Auth(&fakeValidator{userID: uuid.New()})(protectedHandler(t, uuid.Nil))

	req := httptest.NewRequest(http.MethodPost, "/v1/generate", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Unauthorized")
}

func TestAuth_MalformedHeader(t *testing.T) {
	handler := Auth(&fakeValidator{userID: uuid.New()})(protectedHandler(t, uuid.Nil))

	req := httptest.NewRequest(http.MethodPost, "/v1/generate", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_InvalidToken(t *testing.T) {
	handler := Auth(&fakeValidator{err: fmt.Errorf("expired")})(protectedHandler(t, uuid.Nil))

	req := httptest.NewRequest(http.MethodPost, "/v1/generate", nil)
	req.Header.Set("Authorization", "bearer bad-token")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetUserID_MissingFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := GetUserID(req)
	assert.Error(t, err)
}
