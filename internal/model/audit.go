package model

import "time"

type AuditEvent struct {
	ID           string    `json:"id"`
	RequestID    string    `json:"request_id"`
	Method       string    `json:"method"`
	Route        string    `json:"route"`
	Status       int       `json:"status"`
	ResponseCode string    `json:"response_code,omitempty"`
	LatencyMs    int64     `json:"latency_ms"`
	ClientIP     string    `json:"client_ip"`
	CreatedAt    time.Time `json:"created_at"`
}

// IdempotentResponse is a response captured for replay under an
// idempotency key. Pending marks a key reserved by an in-flight request.
type IdempotentResponse struct {
	Status  int    `json:"status"`
	Code    string `json:"code,omitempty"`
	Body    []byte `json:"body"`
	Pending bool   `json:"-"`
}

const AuditSubject = "bank.audit.request"
