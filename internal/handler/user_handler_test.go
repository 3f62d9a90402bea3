package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"medical-transport-backend/internal/models"
	"medical-transport-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupDuplicateUsername(t *testing.T) {
	env := newTestEnv(t)

	env.signup(t, "medic01", "paramedic", "010-1234-5678", "A")

	w := env.request(t, http.MethodPost, "/user/signup", "", gin.H{
		"username": "medic01",
		"password": "other-password",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSignupWritesAuditLog(t *testing.T) {
	env := newTestEnv(t)

	env.signup(t, "medic01", "paramedic", "010-1234-5678", "A")

	var count int64
	require.NoError(t, env.db.Model(&models.AuditLog{}).
		Where("action = ?", "user_signup").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestLoginIssuesVerifiableTokenAndStoresIt(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "medic01", "paramedic", "010-1234-5678", "A")

	token := env.login(t, "medic01")

	claims, err := utils.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "medic01", claims.Username)

	var user models.User
	require.NoError(t, env.db.Where("username = ?", "medic01").First(&user).Error)
	require.NotNil(t, user.SessionToken)
	assert.Equal(t, token, *user.SessionToken)
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "medic01", "paramedic", "010-1234-5678", "A")

	w := env.request(t, http.MethodPost, "/user/login", "", gin.H{
		"username": "medic01",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginUnknownUsername(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPost, "/user/login", "", gin.H{
		"username": "nobody",
		"password": "pass1234",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProfileOmitsCredentialFields(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "staff01", "hospital", "02-123-4567", "서울병원")
	token := env.login(t, "staff01")

	w := env.request(t, http.MethodGet, "/user/info", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var profile map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "staff01", profile["username"])
	assert.Equal(t, "hospital", profile["role"])
	assert.Equal(t, "서울병원", profile["affiliation"])
	assert.NotContains(t, profile, "passwordHash")
	assert.NotContains(t, profile, "sessionToken")
	assert.NotContains(t, w.Body.String(), token)
}

func TestProfileRequiresToken(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodGet, "/user/info", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.request(t, http.MethodGet, "/user/info", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateProfileOverwritesAllFields(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "medic01", "paramedic", "010-1234-5678", "A")
	token := env.login(t, "medic01")

	// Absent fields are overwritten with empty values, no partial merge
	w := env.request(t, http.MethodPatch, "/user/info", token, gin.H{
		"displayName": "박구급",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var user models.User
	require.NoError(t, env.db.Where("username = ?", "medic01").First(&user).Error)
	assert.Equal(t, "박구급", user.DisplayName)
	assert.Empty(t, user.Phone)
	assert.Empty(t, user.Affiliation)
}

func TestLogoutClearsStoredToken(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "medic01", "paramedic", "010-1234-5678", "A")
	token := env.login(t, "medic01")

	w := env.request(t, http.MethodPost, "/user/logout", token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	var user models.User
	require.NoError(t, env.db.Where("username = ?", "medic01").First(&user).Error)
	assert.Nil(t, user.SessionToken)
}

func TestResponsesCarryRequestID(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPost, "/user/login", "", gin.H{
		"username": "nobody",
		"password": "pass1234",
	})
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
