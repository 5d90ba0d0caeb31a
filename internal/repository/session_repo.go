package repository

import (
	"context"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/MinhoKang/sallyrang/internal/mapper"
	"github.com/MinhoKang/sallyrang/internal/models"
	"github.com/MinhoKang/sallyrang/internal/notion"
)

type SessionRepository struct {
	api          NotionAPI
	collectionID string
}

func NewSessionRepository(api NotionAPI, collectionID string) *SessionRepository {
	return &SessionRepository{api: api, collectionID: collectionID}
}

// ListByMember returns the member's sessions, newest first. Ordering is done
// by the query itself.
func (r *SessionRepository) ListByMember(ctx context.Context, memberID string) ([]models.Session, error) {
	if r.collectionID == "" {
		return nil, ErrCollectionNotConfigured
	}
	pages, err := r.api.QueryAll(ctx, r.collectionID, notion.QueryRequest{
		Filter: &notion.Filter{
			Property: mapper.SessionMember,
			Relation: &notion.RelationFilter{Contains: memberID},
		},
		Sorts: []notion.Sort{{Property: mapper.SessionDate, Direction: notion.SortDescending}},
	})
	if err != nil {
		return nil, err
	}
	return lo.Map(pages, func(page notion.Page, _ int) models.Session {
		return mapper.SessionFromPage(page)
	}), nil
}

// GetDetail loads the session record and its body concurrently. Either
// failure fails the call; no partial detail is returned.
func (r *SessionRepository) GetDetail(ctx context.Context, sessionID string) (*models.SessionDetail, error) {
	var (
		page     *notion.Page
		children *notion.BlockList
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		page, err = r.api.RetrievePage(gctx, sessionID)
		return err
	})
	g.Go(func() error {
		var err error
		children, err = r.api.ListBlockChildren(gctx, sessionID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	detail := mapper.SessionDetailFromPage(*page, children.Results)
	return &detail, nil
}

func (r *SessionRepository) UpdateComment(ctx context.Context, sessionID, comment string) error {
	_, err := r.api.UpdatePage(ctx, sessionID, notion.UpdatePageRequest{
		Properties: map[string]notion.RichTextUpdate{
			mapper.SessionComment: notion.TextValue(comment),
		},
	})
	return err
}
