package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/support-portal/backend/internal/models"
)

type ActivityRepo struct {
	pool *pgxpool.Pool
}

func NewActivityRepo(pool *pgxpool.Pool) *ActivityRepo {
	return &ActivityRepo{pool: pool}
}

// Append inserts one immutable history entry with a server timestamp. There
// is deliberately no update or delete counterpart.
func (r *ActivityRepo) Append(ctx context.Context, ticketID, kind, body string, authorEmail *string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO ticket_activity (ticket_id, kind, body, author_email)
		VALUES ($1, $2, $3, $4)
	`, ticketID, kind, body, authorEmail)
	return err
}

// ListByTicket returns a ticket's history, most recent first.
func (r *ActivityRepo) ListByTicket(ctx context.Context, ticketID string, limit, offset int) ([]models.ActivityEntry, error) {
	if limit <= 0 || limit > 200 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, ticket_id, kind, body, author_email, created_at
		FROM ticket_activity WHERE ticket_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3
	`, ticketID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.ActivityEntry
	for rows.Next() {
		var e models.ActivityEntry
		if err := rows.Scan(&e.ID, &e.TicketID, &e.Kind, &e.Body, &e.AuthorEmail, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
