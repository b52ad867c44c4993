package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gfdmit/pastebin/internal/repository"
)

// PastesLimit caps how many pastes GetPastes returns.
const PastesLimit = 10

var ErrInvalidID = errors.New("invalid id")

type Service struct {
	repo repository.Repository
}

func New(repo repository.Repository) *Service {
	return &Service{repo: repo}
}

// GetPastes returns the most recent pastes, newest first.
func (svc *Service) GetPastes(ctx context.Context) ([]repository.Paste, error) {
	return svc.repo.GetPastes(ctx, PastesLimit)
}

func (svc *Service) CreatePaste(ctx context.Context, title *string, content *string) (*repository.Paste, error) {
	return svc.repo.CreatePaste(ctx, title, content)
}

// DeletePaste deletes the paste together with its comments.
func (svc *Service) DeletePaste(ctx context.Context, pasteID string) (*repository.Paste, error) {
	id, err := parseID(pasteID)
	if err != nil {
		return nil, err
	}
	return svc.repo.DeletePaste(ctx, id)
}

func (svc *Service) GetComments(ctx context.Context, pasteID string) ([]repository.Comment, error) {
	id, err := parseID(pasteID)
	if err != nil {
		return nil, err
	}
	return svc.repo.GetComments(ctx, id)
}

func (svc *Service) CreateComment(ctx context.Context, pasteID string, comment *string) (*repository.Comment, error) {
	id, err := parseID(pasteID)
	if err != nil {
		return nil, err
	}
	return svc.repo.CreateComment(ctx, id, comment)
}

// DeleteComment deletes by comment id alone. pasteID is only checked for
// shape; it is not part of the deletion predicate.
func (svc *Service) DeleteComment(ctx context.Context, pasteID string, commentID string) (*repository.Comment, error) {
	if _, err := parseID(pasteID); err != nil {
		return nil, err
	}
	id, err := parseID(commentID)
	if err != nil {
		return nil, err
	}
	return svc.repo.DeleteComment(ctx, id)
}

// parseID accepts surrounding whitespace, as the database's integer cast does.
func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrInvalidID, s, err)
	}
	return id, nil
}
