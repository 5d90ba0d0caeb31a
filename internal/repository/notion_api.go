package repository

import (
	"context"
	"errors"

	"github.com/MinhoKang/sallyrang/internal/notion"
)

// NotionAPI is the slice of the Notion client the repositories use.
// *notion.Client satisfies it; tests pass fakes.
type NotionAPI interface {
	RetrievePage(ctx context.Context, pageID string) (*notion.Page, error)
	QueryAll(ctx context.Context, databaseID string, req notion.QueryRequest) ([]notion.Page, error)
	ListBlockChildren(ctx context.Context, blockID string) (*notion.BlockList, error)
	UpdatePage(ctx context.Context, pageID string, req notion.UpdatePageRequest) (*notion.Page, error)
}

var ErrCollectionNotConfigured = errors.New("repository: collection id is not configured")
