package postgres

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"blogd/internal/adapter/out/storage"
	"blogd/internal/model"
	"blogd/internal/service"
	"blogd/pkg/tableinfo"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrBuildingQuery = errors.New("error building sql-query")
)

type PostStorage struct {
	pool   *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewPostStorage(pool *pgxpool.Pool, getter *trmpgx.CtxGetter) *PostStorage {
	return &PostStorage{
		pool:   pool,
		getter: getter,
	}
}

var postColumns = []string{
	tableinfo.PostIDColumn,
	tableinfo.PostUserIDColumn,
	tableinfo.PostTitleColumn,
	tableinfo.PostBodyColumn,
	tableinfo.PostMarkdownColumn,
	tableinfo.PostStatusColumn,
	tableinfo.PostPublishedAtColumn,
	tableinfo.PostCommentsEnabledColumn,
	tableinfo.PostAccessRuleColumn,
	tableinfo.PostCreatedAtColumn,
}

func scanPost(row pgx.Row) (model.Post, error) {
	var (
		p      model.Post
		status int16
	)
	if err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Title,
		&p.Body,
		&p.Markdown,
		&status,
		&p.PublishedAt,
		&p.CommentsEnabled,
		&p.AccessRule,
		&p.CreatedAt,
	); err != nil {
		return model.Post{}, err
	}
	p.Status = model.PostStatus(status)
	return p, nil
}

func (s *PostStorage) GetPostByID(ctx context.Context, postID int64) (model.Post, error) {
	query, args, err := sq.
		Select(postColumns...).
		From(tableinfo.PostsTableName).
		Where(sq.Eq{tableinfo.PostIDColumn: postID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return model.Post{}, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.pool)

	out, err := scanPost(tr.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Post{}, service.ErrNotFound
		}
		return model.Post{}, fmt.Errorf("exec select post by id: %w", err)
	}
	return out, nil
}

func (s *PostStorage) GetPublishedPosts(ctx context.Context, before time.Time, limit int) ([]model.Post, error) {
	if limit <= 0 {
		limit = service.DefaultPostsLimit
	}
	query, args, err := sq.
		Select(postColumns...).
		From(tableinfo.PostsTableName).
		Where(sq.Eq{tableinfo.PostStatusColumn: int16(model.PostStatusPublished)}).
		Where(sq.Lt{tableinfo.PostPublishedAtColumn: before}).
		OrderBy(
			tableinfo.PostPublishedAtColumn+" DESC",
			tableinfo.PostIDColumn+" DESC",
		).
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.pool)

	rows, err := tr.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("exec error selecting posts: %w", err)
	}
	defer rows.Close()

	out := make([]model.Post, 0, limit)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return out, nil
}

func getPublishedPostsQueryBuilder(params storage.GetPostsParams) (sq.SelectBuilder, error) {
	qb := sq.
		Select(postColumns...).
		From(tableinfo.PostsTableName).
		Where(sq.Eq{tableinfo.PostStatusColumn: int16(model.PostStatusPublished)}).
		Where(sq.Lt{tableinfo.PostPublishedAtColumn: params.PublishedBefore}).
		Limit(uint64(params.Limit)).
		PlaceholderFormat(sq.Dollar)

	switch params.Direction {
	case storage.DirectionAfter:
		qb = qb.
			Where(
				sq.Expr(
					fmt.Sprintf("(%s, %s) < (?, ?)", tableinfo.PostPublishedAtColumn, tableinfo.PostIDColumn),
					params.Cursor.Time, params.Cursor.ID,
				),
			).
			OrderBy(
				tableinfo.PostPublishedAtColumn+" DESC",
				tableinfo.PostIDColumn+" DESC",
			)

	case storage.DirectionBefore:
		qb = qb.
			Where(
				sq.Expr(
					fmt.Sprintf("(%s, %s) > (?, ?)", tableinfo.PostPublishedAtColumn, tableinfo.PostIDColumn),
					params.Cursor.Time, params.Cursor.ID,
				),
			).
			OrderBy(
				tableinfo.PostPublishedAtColumn+" ASC",
				tableinfo.PostIDColumn+" ASC",
			)

	default:
		return qb, storage.ErrDirectionUnset
	}

	return qb, nil
}

func (s *PostStorage) GetPublishedPostsWithCursor(ctx context.Context, params storage.GetPostsParams) ([]model.Post, error) {
	qb, err := getPublishedPostsQueryBuilder(params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.pool)

	rows, err := tr.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("exec select: %w", err)
	}
	defer rows.Close()

	out := make([]model.Post, 0, params.Limit)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	if params.Direction == storage.DirectionBefore {
		slices.Reverse(out)
	}

	return out, nil
}
