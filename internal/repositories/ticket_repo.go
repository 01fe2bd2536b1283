package repositories

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/support-portal/backend/internal/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type TicketRepo struct {
	pool *pgxpool.Pool
}

func NewTicketRepo(pool *pgxpool.Pool) *TicketRepo {
	return &TicketRepo{pool: pool}
}

func (r *TicketRepo) Create(ctx context.Context, t *models.Ticket) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO tickets (id, customer_name, email, description, attachment_url, category, priority, status, assigned_to)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`, t.ID, t.CustomerName, t.Email, t.Description, t.AttachmentURL, t.Category, t.Priority, t.Status, t.AssignedTo,
	).Scan(&t.CreatedAt, &t.UpdatedAt)
}

func (r *TicketRepo) GetByID(ctx context.Context, id string) (*models.Ticket, error) {
	var t models.Ticket
	err := r.pool.QueryRow(ctx, `
		SELECT id, customer_name, email, description, attachment_url, category, priority, status,
		       assigned_to, resolved_at, resolution_summary, created_at, updated_at
		FROM tickets WHERE id = $1
	`, id).Scan(&t.ID, &t.CustomerName, &t.Email, &t.Description, &t.AttachmentURL, &t.Category, &t.Priority, &t.Status,
		&t.AssignedTo, &t.ResolvedAt, &t.ResolutionSummary, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Update persists the editable lifecycle fields. It runs unconditionally:
// a zero-change update is an idempotent no-op, which keeps retries safe.
// The resolution pair is written as given; callers uphold the
// Closed ⇔ resolution-set invariant.
func (r *TicketRepo) Update(ctx context.Context, t *models.Ticket) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE tickets
		SET status = $1, priority = $2, assigned_to = $3, resolved_at = $4, resolution_summary = $5, updated_at = now()
		WHERE id = $6
	`, t.Status, t.Priority, t.AssignedTo, t.ResolvedAt, t.ResolutionSummary, t.ID)
	return err
}

// TicketFilter narrows the staff listing. VisibleToEmail implements the
// agent subset: unassigned tickets plus tickets assigned to that agent.
type TicketFilter struct {
	Status         *string
	Priority       *string
	VisibleToEmail *string
	Limit          int
	Offset         int
}

func (r *TicketRepo) List(ctx context.Context, f TicketFilter) ([]models.Ticket, error) {
	b := psql.Select(
		"id", "customer_name", "email", "description", "attachment_url", "category", "priority", "status",
		"assigned_to", "resolved_at", "resolution_summary", "created_at", "updated_at",
	).From("tickets")

	if f.Status != nil {
		b = b.Where(sq.Eq{"status": *f.Status})
	}
	if f.Priority != nil {
		b = b.Where(sq.Eq{"priority": *f.Priority})
	}
	if f.VisibleToEmail != nil {
		b = b.Where(sq.Or{sq.Eq{"assigned_to": nil}, sq.Eq{"assigned_to": *f.VisibleToEmail}})
	}

	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}
	b = b.OrderBy("created_at DESC").Limit(uint64(limit)).Offset(uint64(offset))

	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tickets []models.Ticket
	for rows.Next() {
		var t models.Ticket
		if err := rows.Scan(&t.ID, &t.CustomerName, &t.Email, &t.Description, &t.AttachmentURL, &t.Category, &t.Priority, &t.Status,
			&t.AssignedTo, &t.ResolvedAt, &t.ResolutionSummary, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

// Track is the anonymous lookup. Both predicates sit in one WHERE so a wrong
// ID and a wrong email are indistinguishable to the caller: either way no
// row comes back.
func (r *TicketRepo) Track(ctx context.Context, id, email string) (*models.Ticket, error) {
	var t models.Ticket
	err := r.pool.QueryRow(ctx, `
		SELECT id, customer_name, email, description, attachment_url, category, priority, status,
		       assigned_to, resolved_at, resolution_summary, created_at, updated_at
		FROM tickets WHERE id = $1 AND lower(email) = lower($2)
	`, id, email).Scan(&t.ID, &t.CustomerName, &t.Email, &t.Description, &t.AttachmentURL, &t.Category, &t.Priority, &t.Status,
		&t.AssignedTo, &t.ResolvedAt, &t.ResolutionSummary, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// DistinctAssignees returns every assignee value ever recorded, for the
// admin reassignment dropdown.
func (r *TicketRepo) DistinctAssignees(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT DISTINCT assigned_to FROM tickets WHERE assigned_to IS NOT NULL
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignees []string
	for rows.Next() {
		var a string
		if err := rows.Scan(&a); err != nil {
			return nil, err
		}
		assignees = append(assignees, a)
	}
	return assignees, rows.Err()
}

type TicketMetrics struct {
	New          int `json:"new"`
	HighPriority int `json:"high_priority"`
	Total        int `json:"total"`
}

// Metrics computes the dashboard tiles over the actor-visible subset in one
// pass.
func (r *TicketRepo) Metrics(ctx context.Context, visibleToEmail *string) (*TicketMetrics, error) {
	b := psql.Select(
		"count(*) FILTER (WHERE status = 'New') AS new_count",
		"count(*) FILTER (WHERE priority = 'High') AS high_count",
		"count(*) AS total_count",
	).From("tickets")

	if visibleToEmail != nil {
		b = b.Where(sq.Or{sq.Eq{"assigned_to": nil}, sq.Eq{"assigned_to": *visibleToEmail}})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	var m TicketMetrics
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&m.New, &m.HighPriority, &m.Total); err != nil {
		return nil, err
	}
	return &m, nil
}
