// Package memory keeps pastes and comments in process memory. It backs
// STORAGE_DRIVER=memory and serves as the storage double in tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/gfdmit/pastebin/internal/repository"
)

type memoryRepository struct {
	mu sync.RWMutex

	pastes   map[int64]repository.Paste
	comments map[int64]repository.Comment

	lastPasteID   int64
	lastCommentID int64

	now func() time.Time
}

func New() *memoryRepository {
	return &memoryRepository{
		pastes:   make(map[int64]repository.Paste),
		comments: make(map[int64]repository.Comment),
		now:      time.Now,
	}
}

// WithClock replaces the timestamp source used for new pastes.
func (mr *memoryRepository) WithClock(now func() time.Time) *memoryRepository {
	mr.now = now
	return mr
}

func (mr *memoryRepository) Close() error {
	return nil
}

func (mr *memoryRepository) GetPastes(ctx context.Context, limit int) ([]repository.Paste, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	mr.mu.RLock()
	defer mr.mu.RUnlock()

	pastes := make([]repository.Paste, 0, len(mr.pastes))
	for _, p := range mr.pastes {
		pastes = append(pastes, p)
	}
	sort.Slice(pastes, func(i, j int) bool {
		if pastes[i].Time.Equal(pastes[j].Time) {
			return pastes[i].ID > pastes[j].ID
		}
		return pastes[i].Time.After(pastes[j].Time)
	})
	if limit >= 0 && len(pastes) > limit {
		pastes = pastes[:limit]
	}
	return pastes, nil
}

func (mr *memoryRepository) CreatePaste(ctx context.Context, title *string, content *string) (*repository.Paste, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	mr.mu.Lock()
	defer mr.mu.Unlock()

	mr.lastPasteID++
	paste := repository.Paste{
		ID:      mr.lastPasteID,
		Title:   title,
		Content: content,
		Time:    mr.now(),
	}
	mr.pastes[paste.ID] = paste
	return &paste, nil
}

func (mr *memoryRepository) DeletePaste(ctx context.Context, id int64) (*repository.Paste, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	mr.mu.Lock()
	defer mr.mu.Unlock()

	for cid, c := range mr.comments {
		if c.PasteID == id {
			delete(mr.comments, cid)
		}
	}

	paste, ok := mr.pastes[id]
	if !ok {
		return nil, nil
	}
	delete(mr.pastes, id)
	return &paste, nil
}

func (mr *memoryRepository) GetComments(ctx context.Context, pasteID int64) ([]repository.Comment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	mr.mu.RLock()
	defer mr.mu.RUnlock()

	comments := []repository.Comment{}
	for _, c := range mr.comments {
		if c.PasteID == pasteID {
			comments = append(comments, c)
		}
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].ID < comments[j].ID })
	return comments, nil
}

// CreateComment does not check that the paste exists.
func (mr *memoryRepository) CreateComment(ctx context.Context, pasteID int64, comment *string) (*repository.Comment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	mr.mu.Lock()
	defer mr.mu.Unlock()

	mr.lastCommentID++
	c := repository.Comment{
		ID:      mr.lastCommentID,
		PasteID: pasteID,
		Comment: comment,
	}
	mr.comments[c.ID] = c
	return &c, nil
}

func (mr *memoryRepository) DeleteComment(ctx context.Context, id int64) (*repository.Comment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	mr.mu.Lock()
	defer mr.mu.Unlock()

	c, ok := mr.comments[id]
	if !ok {
		return nil, nil
	}
	delete(mr.comments, id)
	return &c, nil
}
