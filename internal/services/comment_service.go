package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/MinhoKang/sallyrang/internal/cache"
	"github.com/MinhoKang/sallyrang/internal/i18n"
	"github.com/MinhoKang/sallyrang/internal/models"
	"github.com/MinhoKang/sallyrang/internal/notion"
)

type commentWriter interface {
	UpdateComment(ctx context.Context, sessionID, comment string) error
}

type renderInvalidator interface {
	Invalidate(keys ...string)
}

type CommentResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// CommentService owns the only write this system makes. Concurrent writes
// to the same session are last-write-wins.
type CommentService struct {
	sessions commentWriter
	pages    renderInvalidator
	logger   *slog.Logger
}

func NewCommentService(sessions commentWriter, pages renderInvalidator, logger *slog.Logger) *CommentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CommentService{sessions: sessions, pages: pages, logger: logger}
}

// SaveComment validates and stores the comment. Whitespace-only text clears
// it. Validation failures never reach the remote side.
func (s *CommentService) SaveComment(ctx context.Context, memberID, sessionID, comment string) error {
	if sessionID == "" || memberID == "" {
		return ErrInvalidInput
	}
	if utf8.RuneCountInString(comment) > models.CommentMaxLength {
		return ErrCommentTooLong
	}

	if err := s.sessions.UpdateComment(ctx, sessionID, strings.TrimSpace(comment)); err != nil {
		s.logger.ErrorContext(ctx, "comment update failed",
			slog.String("session_id", sessionID),
			slog.String("member_id", memberID),
			slog.Any("error", err),
		)
		if notion.IsRateLimited(err) {
			return fmt.Errorf("%w: %w", ErrRateLimited, err)
		}
		return fmt.Errorf("%w: %w", ErrCommentFailed, err)
	}

	if s.pages != nil {
		s.pages.Invalidate(cache.SessionKey(memberID, sessionID), cache.MemberKey(memberID))
	}
	return nil
}

// UpdateSessionComment is SaveComment with the outcome turned into a
// user-facing message in the request's language.
func (s *CommentService) UpdateSessionComment(ctx context.Context, sessionID, comment, memberID string) CommentResult {
	err := s.SaveComment(ctx, memberID, sessionID, comment)
	if err == nil {
		return CommentResult{Success: true}
	}
	return CommentResult{Error: CommentErrorMessage(ctx, err)}
}

func CommentErrorMessage(ctx context.Context, err error) string {
	msgs := i18n.FromContext(ctx)
	switch {
	case errors.Is(err, ErrInvalidInput):
		return msgs.T("comment_invalid_request")
	case errors.Is(err, ErrCommentTooLong):
		return msgs.T("comment_too_long", map[string]any{"Max": models.CommentMaxLength})
	case errors.Is(err, ErrRateLimited):
		return msgs.T("comment_rate_limited")
	default:
		return msgs.T("comment_failed")
	}
}
