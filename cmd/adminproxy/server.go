package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/smtp"

	"github.com/gin-gonic/gin"
)

// Config carries the proxy's collaborators.
type Config struct {
	BackendURL string
	HTTPClient *http.Client
	Mailer     Mailer
}

// Mailer delivers credential emails to newly invited operators.
type Mailer interface {
	Send(to, subject, body string) error
}

// Server hosts the pass-through handlers.
type Server struct {
	cfg    Config
	router *gin.Engine
}

// NewServer builds the gin router with both handlers registered.
func NewServer(cfg Config) *Server {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}

	s := &Server{cfg: cfg}

	router := gin.Default()
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.POST("/api/change-password", s.changePassword)
	router.POST("/api/send-credentials", s.sendCredentials)

	s.router = router
	return s
}

// Router exposes the underlying gin engine.
func (s *Server) Router() *gin.Engine {
	return s.router
}

type changePasswordRequest struct {
	UserID      string `json:"user_id" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// changePassword forwards the password change to the backend with the
// caller's bearer token attached. The proxy adds nothing but the hop; the
// backend stays the single authority on credentials.
func (s *Server) changePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	authorization := c.GetHeader("Authorization")
	if authorization == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
		return
	}

	payload, err := json.Marshal(map[string]string{
		"new_password": req.NewPassword,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	target := fmt.Sprintf("%s/api/v1/users/%s/password", s.cfg.BackendURL, req.UserID)
	upstream, err := http.NewRequestWithContext(c.Request.Context(), http.MethodPut, target, bytes.NewReader(payload))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	upstream.Header.Set("Content-Type", "application/json")
	upstream.Header.Set("Authorization", authorization)

	res, err := s.cfg.HTTPClient.Do(upstream)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "backend unreachable"})
		return
	}
	defer res.Body.Close()

	body, _ := io.ReadAll(res.Body)
	c.Data(res.StatusCode, res.Header.Get("Content-Type"), body)
}

type sendCredentialsRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name"`
	Password string `json:"password" binding:"required"`
}

// sendCredentials emails a newly created operator their initial password.
func (s *Server) sendCredentials(c *gin.Context) {
	var req sendCredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if s.cfg.Mailer == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "mailer not configured"})
		return
	}

	name := req.Name
	if name == "" {
		name = req.Email
	}
	body := fmt.Sprintf(
		"Hello %s,\n\nYour admin dashboard account is ready.\n\nEmail: %s\nPassword: %s\n\nPlease change your password after your first login.\n",
		name, req.Email, req.Password,
	)

	if err := s.cfg.Mailer.Send(req.Email, "Your admin account credentials", body); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "email delivery failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sent": true})
}

// SMTPMailer delivers mail over plain SMTP with optional auth.
type SMTPMailer struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", m.From, to, subject, body)

	var auth smtp.Auth
	if m.Username != "" {
		auth = smtp.PlainAuth("", m.Username, m.Password, m.Host)
	}
	addr := m.Host + ":" + m.Port
	return smtp.SendMail(addr, auth, m.From, []string{to}, []byte(msg))
}
