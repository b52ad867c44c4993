package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/gfdmit/pastebin/config"
	"github.com/gfdmit/pastebin/internal/repository"

	_ "github.com/lib/pq"
)

const (
	pasteColumns   = "id, title, content, time"
	commentColumns = "id, paste_id, comment"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type postgresRepository struct {
	db *sql.DB
}

// New opens the database handle and pings it. The caller must not start
// serving requests until New returns successfully.
func New(ctx context.Context, conf config.Postgres) (*postgresRepository, error) {
	db, err := sql.Open("postgres", conf.DSN())
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}
	if conf.MaxOpenConns > 0 {
		db.SetMaxOpenConns(conf.MaxOpenConns)
		db.SetMaxIdleConns(conf.MaxOpenConns)
	}

	pingCtx, cancel := context.WithTimeout(ctx, conf.Timeout)
	defer cancel()

	log.Println("[POSTGRES] attempting to connect to db")
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("db.Ping: %w", err)
	}
	log.Println("[POSTGRES] connected to db")

	return &postgresRepository{
		db: db,
	}, nil
}

func (pr *postgresRepository) Close() error {
	return pr.db.Close()
}

func (pr *postgresRepository) GetPastes(ctx context.Context, limit int) ([]repository.Paste, error) {
	rows, err := pr.db.QueryContext(ctx,
		"SELECT "+pasteColumns+" FROM pastes ORDER BY time DESC LIMIT $1", limit)
	if err != nil {
		return nil, fmt.Errorf("select pastes: %w", err)
	}
	defer rows.Close()

	pastes := []repository.Paste{}
	for rows.Next() {
		paste := repository.Paste{}
		if err := rows.Scan(&paste.ID, &paste.Title, &paste.Content, &paste.Time); err != nil {
			return nil, fmt.Errorf("scan paste: %w", err)
		}
		pastes = append(pastes, paste)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pastes: %w", err)
	}
	return pastes, nil
}

func (pr *postgresRepository) CreatePaste(ctx context.Context, title *string, content *string) (*repository.Paste, error) {
	row := pr.db.QueryRowContext(ctx,
		"INSERT INTO pastes (title, content) VALUES ($1, $2) RETURNING "+pasteColumns, title, content)

	paste, err := scanPaste(row)
	if err != nil {
		return nil, fmt.Errorf("insert paste: %w", err)
	}
	return paste, nil
}

// DeletePaste removes the paste's comments and then the paste in one
// transaction. Any failure rolls both statements back.
func (pr *postgresRepository) DeletePaste(ctx context.Context, id int64) (*repository.Paste, error) {
	var paste *repository.Paste

	err := pr.withTx(ctx, func(q querier) error {
		if _, err := q.ExecContext(ctx, "DELETE FROM comments WHERE paste_id = $1", id); err != nil {
			return fmt.Errorf("delete comments: %w", err)
		}

		row := q.QueryRowContext(ctx, "DELETE FROM pastes WHERE id = $1 RETURNING "+pasteColumns, id)

		var err error
		paste, err = scanPaste(row)
		if err != nil {
			return fmt.Errorf("delete paste: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paste, nil
}

func (pr *postgresRepository) GetComments(ctx context.Context, pasteID int64) ([]repository.Comment, error) {
	rows, err := pr.db.QueryContext(ctx,
		"SELECT "+commentColumns+" FROM comments WHERE paste_id = $1", pasteID)
	if err != nil {
		return nil, fmt.Errorf("select comments: %w", err)
	}
	defer rows.Close()

	comments := []repository.Comment{}
	for rows.Next() {
		comment := repository.Comment{}
		if err := rows.Scan(&comment.ID, &comment.PasteID, &comment.Comment); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}
	return comments, nil
}

func (pr *postgresRepository) CreateComment(ctx context.Context, pasteID int64, comment *string) (*repository.Comment, error) {
	row := pr.db.QueryRowContext(ctx,
		"INSERT INTO comments (paste_id, comment) VALUES ($1, $2) RETURNING "+commentColumns, pasteID, comment)

	c, err := scanComment(row)
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}
	return c, nil
}

func (pr *postgresRepository) DeleteComment(ctx context.Context, id int64) (*repository.Comment, error) {
	row := pr.db.QueryRowContext(ctx,
		"DELETE FROM comments WHERE id = $1 RETURNING "+commentColumns, id)

	c, err := scanComment(row)
	if err != nil {
		return nil, fmt.Errorf("delete comment: %w", err)
	}
	return c, nil
}

func (pr *postgresRepository) withTx(ctx context.Context, fn func(q querier) error) error {
	tx, err := pr.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// scanPaste returns nil, nil when the statement matched no row.
func scanPaste(row *sql.Row) (*repository.Paste, error) {
	paste := &repository.Paste{}
	err := row.Scan(&paste.ID, &paste.Title, &paste.Content, &paste.Time)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return paste, nil
}

func scanComment(row *sql.Row) (*repository.Comment, error) {
	comment := &repository.Comment{}
	err := row.Scan(&comment.ID, &comment.PasteID, &comment.Comment)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return comment, nil
}
