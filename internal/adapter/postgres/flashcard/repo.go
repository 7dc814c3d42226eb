// Package flashcard implements the Flashcard repository using PostgreSQL.
// Static queries use raw SQL; listings with optional filters are built with
// squirrel.
package flashcard

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/lunarbyte/flashdeck-backend/internal/adapter/postgres"
	"github.com/lunarbyte/flashdeck-backend/internal/domain"
)

// Repo provides flashcard persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new flashcard repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var cardColumns = []string{
	"id", "collection_id", "user_id", "front", "back",
	"review_status", "creation_source",
	"repetitions", "interval_days", "ease_factor",
	"due_date", "reviewed_at", "archived_at",
	"created_at", "updated_at",
}

const getByIDSQL = `
SELECT id, collection_id, user_id, front, back,
       review_status, creation_source,
       repetitions, interval_days, ease_factor,
       due_date, reviewed_at, archived_at,
       created_at, updated_at
FROM flashcards
WHERE id = $1 AND user_id = $2`

const updateSchedulingSQL = `
UPDATE flashcards
SET repetitions   = $2,
    interval_days = $3,
    ease_factor   = $4,
    due_date      = $5,
    reviewed_at   = $6,
    review_status = $7,
    updated_at    = now()
WHERE id = $1`

const setArchivedSQL = `
UPDATE flashcards
SET archived_at = $2,
    updated_at  = now()
WHERE id = $1`

// GetByID returns a card by primary key filtered by user_id.
func (r *Repo) GetByID(ctx context.Context, userID, cardID uuid.UUID) (*domain.Flashcard, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, cardID, userID)
	card, err := scanCard(row)
	if err != nil {
		return nil, postgres.MapError(err, "flashcard", cardID)
	}
	return card, nil
}

// ListByCollection returns a collection's cards ordered by creation time.
// Archived cards are excluded unless includeArchived is set.
func (r *Repo) ListByCollection(ctx context.Context, userID, collectionID uuid.UUID, includeArchived bool) ([]domain.Flashcard, error) {
	query := builder.
		Select(cardColumns...).
		From("flashcards").
		Where(sq.Eq{"user_id": userID, "collection_id": collectionID}).
		OrderBy("created_at ASC")
	if !includeArchived {
		query = query.Where(sq.Eq{"archived_at": nil})
	}

	return r.list(ctx, query, collectionID)
}

// ListByUser returns all of a user's cards across collections.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, includeArchived bool) ([]domain.Flashcard, error) {
	query := builder.
		Select(cardColumns...).
		From("flashcards").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at ASC")
	if !includeArchived {
		query = query.Where(sq.Eq{"archived_at": nil})
	}

	return r.list(ctx, query, userID)
}

// UpdateScheduling writes a card's new SM-2 state and review metadata.
func (r *Repo) UpdateScheduling(ctx context.Context, cardID uuid.UUID, params domain.SchedulingUpdate) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, updateSchedulingSQL,
		cardID,
		params.Repetitions,
		params.IntervalDays,
		params.EaseFactor,
		params.DueDate,
		params.ReviewedAt,
		params.ReviewStatus,
	)
	if err != nil {
		return postgres.MapError(err, "flashcard", cardID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "flashcard", cardID)
	}
	return nil
}

// SetArchived sets or clears a card's archived timestamp.
func (r *Repo) SetArchived(ctx context.Context, cardID uuid.UUID, archivedAt *time.Time) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, setArchivedSQL, cardID, archivedAt)
	if err != nil {
		return postgres.MapError(err, "flashcard", cardID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "flashcard", cardID)
	}
	return nil
}

func (r *Repo) list(ctx context.Context, query sq.SelectBuilder, scope uuid.UUID) ([]domain.Flashcard, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "flashcard", scope)
	}
	defer rows.Close()

	var cards []domain.Flashcard
	for rows.Next() {
		card, scanErr := scanCard(rows)
		if scanErr != nil {
			return nil, postgres.MapError(scanErr, "flashcard", scope)
		}
		cards = append(cards, *card)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "flashcard", scope)
	}

	return cards, nil
}

func scanCard(row pgx.Row) (*domain.Flashcard, error) {
	var c domain.Flashcard
	err := row.Scan(
		&c.ID, &c.CollectionID, &c.UserID, &c.Front, &c.Back,
		&c.ReviewStatus, &c.Source,
		&c.Repetitions, &c.IntervalDays, &c.EaseFactor,
		&c.DueDate, &c.ReviewedAt, &c.ArchivedAt,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
