package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"blogd/internal/model"
	"blogd/internal/service"
	"blogd/pkg/tableinfo"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CommentStorage struct {
	pool   *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewCommentStorage(pool *pgxpool.Pool, getter *trmpgx.CtxGetter) *CommentStorage {
	return &CommentStorage{pool: pool, getter: getter}
}

var commentColumns = []string{
	tableinfo.CommentIDColumn,
	tableinfo.CommentPostIDColumn,
	tableinfo.CommentUserIDColumn,
	tableinfo.CommentAuthorColumn,
	tableinfo.CommentEmailColumn,
	tableinfo.CommentURLColumn,
	tableinfo.CommentIPColumn,
	tableinfo.CommentBodyColumn,
	tableinfo.CommentStatusColumn,
	tableinfo.CommentCreatedAtColumn,
}

func scanComment(row pgx.Row) (model.Comment, error) {
	var (
		c      model.Comment
		status int16
	)
	if err := row.Scan(
		&c.ID,
		&c.PostID,
		&c.UserID,
		&c.Author,
		&c.Email,
		&c.URL,
		&c.IP,
		&c.Body,
		&status,
		&c.CreatedAt,
	); err != nil {
		return model.Comment{}, err
	}
	c.Status = model.CommentStatus(status)
	return c, nil
}

func (s *CommentStorage) CreateComment(ctx context.Context, c model.Comment) (model.Comment, error) {
	query, args, err := sq.
		Insert(tableinfo.CommentsTableName).
		Columns(
			tableinfo.CommentPostIDColumn,
			tableinfo.CommentUserIDColumn,
			tableinfo.CommentAuthorColumn,
			tableinfo.CommentEmailColumn,
			tableinfo.CommentURLColumn,
			tableinfo.CommentIPColumn,
			tableinfo.CommentBodyColumn,
			tableinfo.CommentStatusColumn,
			tableinfo.CommentCreatedAtColumn,
		).
		Values(c.PostID, c.UserID, c.Author, c.Email, c.URL, c.IP, c.Body, int16(c.Status), c.CreatedAt).
		Suffix("RETURNING " + strings.Join(commentColumns, ", ")).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return model.Comment{}, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.pool)
	out, err := scanComment(tr.QueryRow(ctx, query, args...))
	if err != nil {
		return model.Comment{}, fmt.Errorf("exec insert comment: %w", err)
	}
	return out, nil
}

func (s *CommentStorage) GetLatestByUser(ctx context.Context, userID int64) (model.Comment, error) {
	return s.getLatest(ctx, sq.Eq{tableinfo.CommentUserIDColumn: userID})
}

func (s *CommentStorage) GetLatestByIP(ctx context.Context, ip string) (model.Comment, error) {
	return s.getLatest(ctx, sq.Eq{tableinfo.CommentIPColumn: ip})
}

func (s *CommentStorage) getLatest(ctx context.Context, pred sq.Eq) (model.Comment, error) {
	query, args, err := sq.
		Select(commentColumns...).
		From(tableinfo.CommentsTableName).
		Where(pred).
		OrderBy(
			tableinfo.CommentCreatedAtColumn+" DESC",
			tableinfo.CommentIDColumn+" DESC",
		).
		Limit(1).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return model.Comment{}, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.pool)
	out, err := scanComment(tr.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Comment{}, service.ErrNotFound
		}
		return model.Comment{}, fmt.Errorf("exec select latest comment: %w", err)
	}
	return out, nil
}

func (s *CommentStorage) HasApprovedByUser(ctx context.Context, userID int64) (bool, error) {
	query, args, err := sq.
		Select("1").
		From(tableinfo.CommentsTableName).
		Where(sq.Eq{
			tableinfo.CommentUserIDColumn: userID,
			tableinfo.CommentStatusColumn: int16(model.CommentStatusApproved),
		}).
		Limit(1).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.pool)

	var one int
	if err := tr.QueryRow(ctx, query, args...).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("exec select approved comment: %w", err)
	}
	return true, nil
}

// GetVisibleByPost loads the comments a viewer may see on a post: every
// approved comment plus the viewer's own pending ones, oldest first.
func (s *CommentStorage) GetVisibleByPost(ctx context.Context, postID, viewerID int64) ([]model.Comment, error) {
	visibility := sq.Or{
		sq.Eq{tableinfo.CommentStatusColumn: int16(model.CommentStatusApproved)},
	}
	if viewerID > 0 {
		visibility = append(visibility, sq.And{
			sq.Eq{tableinfo.CommentStatusColumn: int16(model.CommentStatusPending)},
			sq.Eq{tableinfo.CommentUserIDColumn: viewerID},
		})
	}

	query, args, err := sq.
		Select(commentColumns...).
		From(tableinfo.CommentsTableName).
		Where(sq.Eq{tableinfo.CommentPostIDColumn: postID}).
		Where(visibility).
		OrderBy(
			tableinfo.CommentCreatedAtColumn+" ASC",
			tableinfo.CommentIDColumn+" ASC",
		).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.pool)

	rows, err := tr.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("exec select comments: %w", err)
	}
	defer rows.Close()

	var out []model.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return out, nil
}
