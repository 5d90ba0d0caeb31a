package repository

import (
	"context"

	"github.com/samber/lo"

	"github.com/MinhoKang/sallyrang/internal/mapper"
	"github.com/MinhoKang/sallyrang/internal/models"
	"github.com/MinhoKang/sallyrang/internal/notion"
)

type MemberRepository struct {
	api          NotionAPI
	collectionID string
}

func NewMemberRepository(api NotionAPI, collectionID string) *MemberRepository {
	return &MemberRepository{api: api, collectionID: collectionID}
}

func (r *MemberRepository) GetByID(ctx context.Context, memberID string) (*models.Member, error) {
	page, err := r.api.RetrievePage(ctx, memberID)
	if err != nil {
		return nil, err
	}
	member := mapper.MemberFromPage(*page)
	return &member, nil
}

// ListAll returns the whole collection, unfiltered, in the API's order.
func (r *MemberRepository) ListAll(ctx context.Context) ([]models.Member, error) {
	if r.collectionID == "" {
		return nil, ErrCollectionNotConfigured
	}
	pages, err := r.api.QueryAll(ctx, r.collectionID, notion.QueryRequest{})
	if err != nil {
		return nil, err
	}
	return lo.Map(pages, func(page notion.Page, _ int) models.Member {
		return mapper.MemberFromPage(page)
	}), nil
}
