package repository

import "context"

// Repository is the storage client the service issues statements through.
// Single-row operations return a nil row and a nil error when nothing matched.
type Repository interface {
	GetPastes(ctx context.Context, limit int) ([]Paste, error)
	CreatePaste(ctx context.Context, title *string, content *string) (*Paste, error)
	DeletePaste(ctx context.Context, id int64) (*Paste, error)
	GetComments(ctx context.Context, pasteID int64) ([]Comment, error)
	CreateComment(ctx context.Context, pasteID int64, comment *string) (*Comment, error)
	DeleteComment(ctx context.Context, id int64) (*Comment, error)
	Close() error
}
