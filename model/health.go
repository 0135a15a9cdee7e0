package model

import (
	"sync"
	"time"
)

// HealthSnapshot is the JSON shape served by the /health endpoint. It
// mirrors what the gateway's health proxy expects.
type HealthSnapshot struct {
	Status          string     `json:"status"`
	OAuthStatus     string     `json:"oauth_status"`
	LastSync        *time.Time `json:"last_sync"`
	SuccessfulCalls int        `json:"successful_calls"`
	ErrorCount      int        `json:"error_count"`
	LastError       *string    `json:"last_error"`
}

// Health is the mutable status record shared between the sync loop and the
// web server. All access goes through its methods; callers never hold the
// lock.
type Health struct {
	mu       sync.Mutex
	snapshot HealthSnapshot
}

func NewHealth() *Health {
	return &Health{
		snapshot: HealthSnapshot{
			Status:      "healthy",
			OAuthStatus: "no_token",
		},
	}
}

func (h *Health) Snapshot() HealthSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.snapshot
}

func (h *Health) SetStatus(status string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.snapshot.Status = status
}

func (h *Health) SetOAuthStatus(status string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.snapshot.OAuthStatus = status
}

func (h *Health) RecordSuccess() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.snapshot.SuccessfulCalls++
}

func (h *Health) RecordError(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.snapshot.ErrorCount++
	msg := err.Error()
	h.snapshot.LastError = &msg
}

func (h *Health) MarkSync(t time.Time) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.snapshot.LastSync = &t
}
