package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeMailer struct {
	to      string
	subject string
	body    string
	err     error
}

func (m *fakeMailer) Send(to, subject, body string) error {
	m.to = to
	m.subject = subject
	m.body = body
	return m.err
}

func TestChangePasswordForwardsBearer(t *testing.T) {
	var gotAuth, gotPath, gotMethod string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"updated":true}`))
	}))
	defer backend.Close()

	server := NewServer(Config{BackendURL: backend.URL, Mailer: &fakeMailer{}})

	payload, _ := json.Marshal(map[string]string{
		"user_id":      "u-1",
		"new_password": "correct-horse-battery",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/change-password", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer tok-123")
	res := httptest.NewRecorder()

	server.Router().ServeHTTP(res, req)

	assert.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "/api/v1/users/u-1/password", gotPath)
	assert.Equal(t, http.MethodPut, gotMethod)
}

func TestChangePasswordRequiresAuthorization(t *testing.T) {
	server := NewServer(Config{BackendURL: "http://backend.invalid"})

	payload, _ := json.Marshal(map[string]string{
		"user_id":      "u-1",
		"new_password": "correct-horse-battery",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/change-password", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()

	server.Router().ServeHTTP(res, req)

	assert.Equal(t, http.StatusUnauthorized, res.Code)
}

func TestChangePasswordValidatesBody(t *testing.T) {
	server := NewServer(Config{BackendURL: "http://backend.invalid"})

	payload, _ := json.Marshal(map[string]string{
		"user_id":      "u-1",
		"new_password": "short",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/change-password", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer tok-123")
	res := httptest.NewRecorder()

	server.Router().ServeHTTP(res, req)

	assert.Equal(t, http.StatusBadRequest, res.Code)
}

func TestSendCredentialsDeliversEmail(t *testing.T) {
	mailer := &fakeMailer{}
	server := NewServer(Config{BackendURL: "http://backend.invalid", Mailer: mailer})

	payload, _ := json.Marshal(map[string]string{
		"email":    "new@example.com",
		"name":     "New Operator",
		"password": "initial-pass",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/send-credentials", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()

	server.Router().ServeHTTP(res, req)

	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "new@example.com", mailer.to)
	assert.Contains(t, mailer.body, "New Operator")
	assert.Contains(t, mailer.body, "initial-pass")
}

func TestSendCredentialsRejectsBadEmail(t *testing.T) {
	server := NewServer(Config{BackendURL: "http://backend.invalid", Mailer: &fakeMailer{}})

	payload, _ := json.Marshal(map[string]string{
		"email":    "not-an-email",
		"password": "initial-pass",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/send-credentials", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()

	server.Router().ServeHTTP(res, req)

	assert.Equal(t, http.StatusBadRequest, res.Code)
}
