// Package collection implements the Collection repository using PostgreSQL.
package collection

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

// Repo provides collection persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new collection repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var collectionColumns = []string{
	"id", "user_id", "name", "description", "color", "tags",
	"total_cards", "due_cards", "mastery_level",
	"last_studied", "current_streak", "best_streak",
	"archived_at", "created_at", "updated_at",
}

const getByIDSQL = `
SELECT id, user_id, name, description, color, tags,
       total_cards, due_cards, mastery_level,
       last_studied, current_streak, best_streak,
       archived_at, created_at, updated_at
FROM collections
WHERE id = $1 AND user_id = $2`

const updateAggregatesSQL = `
UPDATE collections
SET total_cards    = $2,
    due_cards      = $3,
    mastery_level  = $4,
    last_studied   = $5,
    current_streak = $6,
    best_streak    = $7,
    updated_at     = now()
WHERE id = $1`

const setArchivedSQL = `
UPDATE collections
SET archived_at = $2,
    updated_at  = now()
WHERE id = $1`

// GetByID returns a collection by primary key filtered by user_id.
// A collection owned by another user maps to domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, userID, collectionID uuid.UUID) (*domain.Collection, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, collectionID, userID)
	collection, err := scanCollection(row)
	if err != nil {
		return nil, postgres.MapError(err, "collection", collectionID)
	}
	return collection, nil
}

// ListByUser returns all of a user's collections, oldest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Collection, error) {
	query := builder.
		Select(collectionColumns...).
		From("collections").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "collection", userID)
	}
	defer rows.Close()

	var collections []domain.Collection
	for rows.Next() {
		collection, scanErr := scanCollection(rows)
		if scanErr != nil {
			return nil, postgres.MapError(scanErr, "collection", userID)
		}
		collections = append(collections, *collection)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "collection", userID)
	}

	return collections, nil
}

// UpdateAggregates writes the derived progress fields back onto a collection.
func (r *Repo) UpdateAggregates(ctx context.Context, collectionID uuid.UUID, agg domain.CollectionAggregates) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, updateAggregatesSQL,
		collectionID,
		agg.TotalCards,
		agg.DueCards,
		agg.MasteryLevel,
		agg.LastStudied,
		agg.CurrentStreak,
		agg.BestStreak,
	)
	if err != nil {
		return postgres.MapError(err, "collection", collectionID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "collection", collectionID)
	}
	return nil
}

// SetArchived sets or clears a collection's archived timestamp.
func (r *Repo) SetArchived(ctx context.Context, collectionID uuid.UUID, archivedAt *time.Time) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, setArchivedSQL, collectionID, archivedAt)
	if err != nil {
		return postgres.MapError(err, "collection", collectionID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "collection", collectionID)
	}
	return nil
}

func scanCollection(row pgx.Row) (*domain.Collection, error) {
	var c domain.Collection
	err := row.Scan(
		&c.ID, &c.UserID, &c.Name, &c.Description, &c.Color, &c.Tags,
		&c.TotalCards, &c.DueCards, &c.MasteryLevel,
		&c.LastStudied, &c.CurrentStreak, &c.BestStreak,
		&c.ArchivedAt, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
