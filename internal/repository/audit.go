package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"banksystem/internal/model"
)

// execer is satisfied by *pgxpool.Pool and pgx.Tx.
type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

type AuditRepo struct {
	db execer
}

func NewAuditRepo(db execer) *AuditRepo {
	return &AuditRepo{db: db}
}

// Insert stores event. Redelivered events are ignored by id.
func (r *AuditRepo) Insert(ctx context.Context, event model.AuditEvent) error {
	query := `
		INSERT INTO api_audit (id, request_id, method, route, status, response_code, latency_ms, client_ip, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING`

	_, err := r.db.Exec(ctx, query,
		event.ID,
		event.RequestID,
		event.Method,
		event.Route,
		event.Status,
		event.ResponseCode,
		event.LatencyMs,
		event.ClientIP,
		event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit event %s: %w", event.ID, err)
	}
	return nil
}
