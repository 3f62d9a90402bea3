package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medical-transport-backend/internal/database"
	"medical-transport-backend/internal/middleware"
	"medical-transport-backend/internal/repository"
	"medical-transport-backend/internal/service"
	"medical-transport-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv wires the full handler stack against an in-memory database,
// mirroring the route table in cmd/server/main.go.
type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	utils.InitJWT("test-secret", time.Hour)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Every pooled connection to :memory: gets its own database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	userRepo := repository.NewUserRepo(db)
	feedRepo := repository.NewFeedRepo(db)
	auditRepo := repository.NewAuditRepo(db)

	userService := service.NewUserService(userRepo, auditRepo)
	feedService := service.NewFeedService(feedRepo, userRepo, auditRepo)

	userHandler := NewUserHandler(userService)
	feedHandler := NewFeedHandler(feedService)

	r := gin.New()
	r.Use(middleware.RequestID())

	user := r.Group("/user")
	{
		user.POST("/signup", userHandler.Signup)
		user.POST("/login", userHandler.Login)

		authed := user.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.GET("/info", userHandler.GetInfo)
			authed.PATCH("/info", userHandler.UpdateInfo)
			authed.POST("/logout", userHandler.Logout)
		}
	}

	feed := r.Group("/feed")
	feed.Use(middleware.AuthMiddleware())
	{
		feed.GET("", feedHandler.List)
		feed.PATCH("", feedHandler.UpdateState)
		feed.POST("/post", feedHandler.Create)
	}

	return &testEnv{router: r, db: db}
}

func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) signup(t *testing.T, username, role, phone, affiliation string) {
	t.Helper()
	w := e.request(t, http.MethodPost, "/user/signup", "", gin.H{
		"username":    username,
		"password":    "pass1234",
		"displayName": username,
		"role":        role,
		"phone":       phone,
		"affiliation": affiliation,
	})
	require.Equal(t, http.StatusCreated, w.Code)
}

func (e *testEnv) login(t *testing.T, username string) string {
	t.Helper()
	w := e.request(t, http.MethodPost, "/user/login", "", gin.H{
		"username": username,
		"password": "pass1234",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.AccessToken)
	return body.AccessToken
}
