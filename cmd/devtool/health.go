package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

const (
	healthTimeout       = 5 * time.Second
	healthSlowThreshold = time.Second
)

type HealthCheckCommand struct {
	client *http.Client
}

func (c *HealthCheckCommand) Name() string {
	return "health-check"
}

func (c *HealthCheckCommand) Description() string {
	return "Check a running server's readiness endpoint [base-url]"
}

func (c *HealthCheckCommand) Run(args []string) error {
	baseURL := "http://localhost:" + envOr("PORT", "8080")
	if len(args) > 0 {
		baseURL = args[0]
	}

	PrintHeader(fmt.Sprintf("Health Check (%s)", baseURL))

	start := time.Now()
	status, err := c.check(baseURL + "/readyz")
	if err != nil {
		PrintError("Health check failed: %v", err)
		return err
	}
	duration := time.Since(start)

	if duration > healthSlowThreshold {
		PrintWarning("Health check warning: slow response time (%v)", duration)
	} else {
		PrintSuccess("Health check passed: %s (response time: %v)", status, duration)
	}
	return nil
}

func (c *HealthCheckCommand) check(url string) (string, error) {
	client := c.client
	if client == nil {
		client = &http.Client{Timeout: healthTimeout}
	}

	resp, err := client.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var body struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status code %d: %s", resp.StatusCode, body.Message)
	}
	return body.Status, nil
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
