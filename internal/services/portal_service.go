package services

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/MinhoKang/sallyrang/internal/models"
)

type memberReader interface {
	GetByID(ctx context.Context, memberID string) (*models.Member, error)
	ListAll(ctx context.Context) ([]models.Member, error)
}

type sessionReader interface {
	ListByMember(ctx context.Context, memberID string) ([]models.Session, error)
	GetDetail(ctx context.Context, sessionID string) (*models.SessionDetail, error)
}

type Dashboard struct {
	Member   models.Member    `json:"member"`
	Sessions []models.Session `json:"sessions"`
}

// PortalService is the read side. Every method is a plain lookup against the
// remote collections with no caching and no retries.
type PortalService struct {
	members  memberReader
	sessions sessionReader
	logger   *slog.Logger
}

func NewPortalService(members memberReader, sessions sessionReader, logger *slog.Logger) *PortalService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PortalService{members: members, sessions: sessions, logger: logger}
}

func (s *PortalService) GetMember(ctx context.Context, memberID string) (*models.Member, error) {
	if memberID == "" {
		return nil, s.fail(ctx, "member", memberID, ErrInvalidInput)
	}
	member, err := s.members.GetByID(ctx, memberID)
	if err != nil {
		return nil, s.fail(ctx, "member", memberID, err)
	}
	return member, nil
}

// GetSessions returns the member's sessions newest first. No sessions is an
// empty list, not an error.
func (s *PortalService) GetSessions(ctx context.Context, memberID string) ([]models.Session, error) {
	if memberID == "" {
		return nil, s.fail(ctx, "sessions of member", memberID, ErrInvalidInput)
	}
	sessions, err := s.sessions.ListByMember(ctx, memberID)
	if err != nil {
		return nil, s.fail(ctx, "sessions of member", memberID, err)
	}
	if sessions == nil {
		sessions = []models.Session{}
	}
	return sessions, nil
}

func (s *PortalService) GetSession(ctx context.Context, sessionID string) (*models.SessionDetail, error) {
	if sessionID == "" {
		return nil, s.fail(ctx, "session", sessionID, ErrInvalidInput)
	}
	detail, err := s.sessions.GetDetail(ctx, sessionID)
	if err != nil {
		return nil, s.fail(ctx, "session", sessionID, err)
	}
	return detail, nil
}

func (s *PortalService) GetAllMembers(ctx context.Context) ([]models.Member, error) {
	members, err := s.members.ListAll(ctx)
	if err != nil {
		return nil, s.fail(ctx, "members", "*", err)
	}
	if members == nil {
		members = []models.Member{}
	}
	return members, nil
}

// GetDashboard loads the profile and the session list concurrently.
func (s *PortalService) GetDashboard(ctx context.Context, memberID string) (*Dashboard, error) {
	var dashboard Dashboard

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		member, err := s.GetMember(gctx, memberID)
		if err != nil {
			return err
		}
		dashboard.Member = *member
		return nil
	})
	g.Go(func() error {
		sessions, err := s.GetSessions(gctx, memberID)
		if err != nil {
			return err
		}
		dashboard.Sessions = sessions
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &dashboard, nil
}

func (s *PortalService) fail(ctx context.Context, resource, id string, cause error) error {
	s.logger.ErrorContext(ctx, "fetch failed",
		slog.String("resource", resource),
		slog.String("id", id),
		slog.Any("error", cause),
	)
	return &FetchError{Resource: resource, ID: id, Err: cause}
}
