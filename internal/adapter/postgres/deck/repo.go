// Package deck implements the deck store using PostgreSQL.
// Queries are built with squirrel.
package deck

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/efcquiz/internal/adapter/postgres"
	"github.com/heartmarshall/efcquiz/internal/domain"
)

const (
	table  = "decks"
	entity = "deck"

	defaultLimit = 50
	maxLimit     = 500
)

var (
	builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	summaryColumns = []string{"id", "name", "flashcard_count", "mc_count", "created_at", "updated_at"}
	fullColumns    = []string{"id", "name", "content", "flashcard_count", "mc_count", "created_at", "updated_at"}
)

// Repo provides deck persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new deck repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a deck with its content.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.StoredDeck, error) {
	query := builder.Select(fullColumns...).From(table).Where(squirrel.Eq{"id": id})
	d, err := r.getOne(ctx, query)
	if err != nil {
		return domain.StoredDeck{}, postgres.MapError(err, entity, id.String())
	}
	return d, nil
}

// GetByName returns a deck with its content. Names compare case-insensitively.
func (r *Repo) GetByName(ctx context.Context, name string) (domain.StoredDeck, error) {
	query := builder.Select(fullColumns...).From(table).Where(squirrel.Expr("lower(name) = lower(?)", name))
	d, err := r.getOne(ctx, query)
	if err != nil {
		return domain.StoredDeck{}, postgres.MapError(err, entity, name)
	}
	return d, nil
}

// List returns decks ordered by name, without content, and the total number
// of decks matching the filter.
func (r *Repo) List(ctx context.Context, filter domain.DeckFilter) ([]domain.StoredDeck, int, error) {
	limit, offset := normalizePage(filter.Limit, filter.Offset)

	where := squirrel.And{}
	if prefix := strings.TrimSpace(filter.NamePrefix); prefix != "" {
		where = append(where, squirrel.ILike{"name": escapeLike(prefix) + "%"})
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	countSQL, countArgs, err := builder.Select("count(*)").From(table).Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count decks: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count decks: %w", err)
	}

	listSQL, listArgs, err := builder.Select(summaryColumns...).
		From(table).
		Where(where).
		OrderBy("lower(name) ASC", "id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list decks: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list decks: %w", err)
	}
	defer rows.Close()

	decks := make([]domain.StoredDeck, 0, limit)
	for rows.Next() {
		var d domain.StoredDeck
		if err := rows.Scan(&d.ID, &d.Name, &d.FlashcardCount, &d.MCCount, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan deck: %w", err)
		}
		decks = append(decks, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list decks rows: %w", err)
	}

	return decks, total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a deck. A zero ID is replaced with a new one. Returns
// domain.ErrAlreadyExists if the name is taken.
func (r *Repo) Create(ctx context.Context, d domain.StoredDeck) (domain.StoredDeck, error) {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}

	query := builder.Insert(table).
		Columns("id", "name", "content", "flashcard_count", "mc_count").
		Values(d.ID, d.Name, d.Content, d.FlashcardCount, d.MCCount).
		Suffix("RETURNING " + strings.Join(fullColumns, ", "))

	created, err := r.getOne(ctx, query)
	if err != nil {
		return domain.StoredDeck{}, postgres.MapError(err, entity, d.Name)
	}
	return created, nil
}

// UpdateContent replaces the content and card counts of a deck.
func (r *Repo) UpdateContent(ctx context.Context, id uuid.UUID, content string, flashcards, mc int) (domain.StoredDeck, error) {
	query := builder.Update(table).
		Set("content", content).
		Set("flashcard_count", flashcards).
		Set("mc_count", mc).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(fullColumns, ", "))

	d, err := r.getOne(ctx, query)
	if err != nil {
		return domain.StoredDeck{}, postgres.MapError(err, entity, id.String())
	}
	return d, nil
}

// Delete removes a deck. Returns domain.ErrNotFound if no row was deleted.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := builder.Delete(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete deck: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, entity, id.String())
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, entity, id.String())
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) getOne(ctx context.Context, query squirrel.Sqlizer) (domain.StoredDeck, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return domain.StoredDeck{}, fmt.Errorf("build query: %w", err)
	}

	var d domain.StoredDeck
	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(
		&d.ID, &d.Name, &d.Content, &d.FlashcardCount, &d.MCCount, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return domain.StoredDeck{}, err
	}
	return d, nil
}

func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultLimit
	}
	limit = min(limit, maxLimit)
	return limit, max(offset, 0)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike escapes LIKE wildcards so user input matches literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
