// Command adminproxy hosts the two server-side helpers the dashboard cannot
// perform from the browser: the password-change proxy (forwards the caller's
// bearer token to the backend) and credential email delivery over SMTP.
package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	backendURL := strings.TrimSuffix(os.Getenv("ADMIN_API_BASE_URL"), "/")
	if backendURL == "" {
		log.Fatal("ADMIN_API_BASE_URL must be set")
	}

	server := NewServer(Config{
		BackendURL: backendURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		Mailer: &SMTPMailer{
			Host:     getEnv("ADMIN_SMTP_HOST", "localhost"),
			Port:     getEnv("ADMIN_SMTP_PORT", "587"),
			Username: os.Getenv("ADMIN_SMTP_USER"),
			Password: os.Getenv("ADMIN_SMTP_PASSWORD"),
			From:     getEnv("ADMIN_SMTP_FROM", "noreply@example.com"),
		},
	})

	addr := getEnv("ADMIN_PROXY_ADDR", ":8090")
	if err := server.Router().Run(addr); err != nil {
		log.Fatalf("adminproxy: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
