package mcpsrv

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/qyinm/filmboard/mcpsrv/dto"
	"github.com/qyinm/filmboard/mock"
	"github.com/qyinm/filmboard/types"
	"github.com/sahilm/fuzzy"
)

const (
	defaultPageSize = 25
	maxPageSize     = 100
	defaultExtras   = 2
)

const (
	groupTopRated      = "top_rated"
	groupMostCommented = "most_commented"
)

type catalogListArgs struct {
	Offset int `json:"offset,omitempty" jsonschema:"Optional pagination offset"`
	Limit  int `json:"limit,omitempty" jsonschema:"Optional page size limit"`
}

type cardGetDetailArgs struct {
	ID string `json:"id" jsonschema:"Card id"`
}

type extrasGetArgs struct {
	Group string `json:"group" jsonschema:"Ranked group: top_rated, most_commented"`
	Limit int    `json:"limit,omitempty" jsonschema:"Optional number of cards (default 2)"`
}

type catalogSearchArgs struct {
	Query string `json:"query" jsonschema:"Fuzzy title query"`
	Limit int    `json:"limit,omitempty" jsonschema:"Optional maximum number of matches"`
}

type catalogListOutput struct {
	Offset     int        `json:"offset"`
	Limit      int        `json:"limit"`
	NextOffset int        `json:"next_offset"`
	HasMore    bool       `json:"has_more"`
	Total      int        `json:"total"`
	Items      []dto.Card `json:"items"`
}

type cardGetDetailOutput struct {
	Item dto.CardDetail `json:"item"`
}

type extrasGetOutput struct {
	Group string     `json:"group"`
	Total int        `json:"total"`
	Items []dto.Card `json:"items"`
}

type filtersGetOutput struct {
	Filters []dto.Filter `json:"filters"`
	Watched int          `json:"watched"`
	Rank    string       `json:"rank"`
}

type catalogSearchOutput struct {
	Query string     `json:"query"`
	Total int        `json:"total"`
	Items []dto.Card `json:"items"`
}

type cacheClearOutput struct {
	Status string `json:"status"`
}

type ServerOptions struct {
	EnableSearch bool
	EnableAdmin  bool
	APIKey       string
}

type cacheClearSource interface {
	ClearCache()
}

func NewServer(source types.CardSource, version string, opts *ServerOptions) *mcp.Server {
	if strings.TrimSpace(version) == "" {
		version = "dev"
	}
	if opts == nil {
		opts = &ServerOptions{}
	}

	server := mcp.NewServer(&mcp.Implementation{Name: "filmboard", Version: version}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "catalog_list",
		Description: "List catalog cards in board order.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args catalogListArgs) (*mcp.CallToolResult, catalogListOutput, error) {
		return catalogListHandler(ctx, req, args, source)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "card_get_detail",
		Description: "Get full film details and comments by card id.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args cardGetDetailArgs) (*mcp.CallToolResult, cardGetDetailOutput, error) {
		return cardGetDetailHandler(ctx, req, args, source)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "extras_get",
		Description: "Get the top rated or most commented cards.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args extrasGetArgs) (*mcp.CallToolResult, extrasGetOutput, error) {
		return extrasGetHandler(ctx, req, args, source)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "filters_get",
		Description: "Get the navigation filter counts and the profile rank.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, filtersGetOutput, error) {
		return filtersGetHandler(ctx, req, source)
	})

	if opts.EnableSearch {
		mcp.AddTool(server, &mcp.Tool{
			Name:        "catalog_search",
			Description: "Fuzzy search card titles.",
		}, func(ctx context.Context, req *mcp.CallToolRequest, args catalogSearchArgs) (*mcp.CallToolResult, catalogSearchOutput, error) {
			return catalogSearchHandler(ctx, req, args, source)
		})
	}

	if opts.EnableAdmin && strings.TrimSpace(opts.APIKey) != "" {
		mcp.AddTool(server, &mcp.Tool{
			Name:        "cache_clear",
			Description: "Clear catalog cache (admin).",
		}, func(ctx context.Context, req *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, cacheClearOutput, error) {
			return cacheClearHandler(ctx, req, source)
		})
	}

	return server
}

func catalogListHandler(_ context.Context, _ *mcp.CallToolRequest, args catalogListArgs, source types.CardSource) (*mcp.CallToolResult, catalogListOutput, error) {
	cards, err := source.GetCatalog()
	if err != nil {
		return errorToolResult("fetch catalog failed"), catalogListOutput{}, nil
	}

	limit := args.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	offset := args.Offset
	if offset < 0 {
		offset = 0
	}
	if offset > len(cards) {
		offset = len(cards)
	}

	end := offset + limit
	if end > len(cards) {
		end = len(cards)
	}
	page := cards[offset:end]
	nextOffset := end
	hasMore := end < len(cards)
	if !hasMore {
		nextOffset = -1
	}

	return nil, catalogListOutput{
		Offset:     offset,
		Limit:      limit,
		NextOffset: nextOffset,
		HasMore:    hasMore,
		Total:      len(cards),
		Items:      dto.FromCards(page),
	}, nil
}

func cardGetDetailHandler(_ context.Context, _ *mcp.CallToolRequest, args cardGetDetailArgs, source types.CardSource) (*mcp.CallToolResult, cardGetDetailOutput, error) {
	id := strings.TrimSpace(args.ID)
	if id == "" {
		return errorToolResult("id is required"), cardGetDetailOutput{}, nil
	}

	cards, err := source.GetCatalog()
	if err != nil {
		return errorToolResult("fetch catalog failed"), cardGetDetailOutput{}, nil
	}
	card, ok := types.FindCard(cards, id)
	if !ok {
		return errorToolResult(fmt.Sprintf("card %q not found", id)), cardGetDetailOutput{}, nil
	}

	return nil, cardGetDetailOutput{Item: dto.FromCardDetail(card)}, nil
}

func extrasGetHandler(_ context.Context, _ *mcp.CallToolRequest, args extrasGetArgs, source types.CardSource) (*mcp.CallToolResult, extrasGetOutput, error) {
	group, err := parseGroup(args.Group)
	if err != nil {
		return errorToolResult(err.Error()), extrasGetOutput{}, nil
	}

	limit := args.Limit
	if limit <= 0 {
		limit = defaultExtras
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	cards, err := source.GetCatalog()
	if err != nil {
		return errorToolResult("fetch catalog failed"), extrasGetOutput{}, nil
	}

	var ranked []types.Card
	switch group {
	case groupTopRated:
		ranked = mock.TopRated(cards, limit)
	case groupMostCommented:
		ranked = mock.MostCommented(cards, limit)
	}

	return nil, extrasGetOutput{
		Group: group,
		Total: len(ranked),
		Items: dto.FromCards(ranked),
	}, nil
}

func filtersGetHandler(_ context.Context, _ *mcp.CallToolRequest, source types.CardSource) (*mcp.CallToolResult, filtersGetOutput, error) {
	cards, err := source.GetCatalog()
	if err != nil {
		return errorToolResult("fetch catalog failed"), filtersGetOutput{}, nil
	}

	watched := 0
	for _, c := range cards {
		if c.Flags().Watched {
			watched++
		}
	}

	return nil, filtersGetOutput{
		Filters: dto.FromFilters(mock.Filters(cards)),
		Watched: watched,
		Rank:    mock.Rank(cards).String(),
	}, nil
}

// titleSource adapts a card slice to fuzzy.Source
type titleSource []types.Card

func (t titleSource) String(i int) string { return t[i].Title() }
func (t titleSource) Len() int            { return len(t) }

func catalogSearchHandler(_ context.Context, _ *mcp.CallToolRequest, args catalogSearchArgs, source types.CardSource) (*mcp.CallToolResult, catalogSearchOutput, error) {
	query := strings.TrimSpace(args.Query)
	if query == "" {
		return errorToolResult("query is required"), catalogSearchOutput{}, nil
	}

	cards, err := source.GetCatalog()
	if err != nil {
		return errorToolResult("search failed"), catalogSearchOutput{}, nil
	}

	matches := fuzzy.FindFrom(query, titleSource(cards))
	limit := args.Limit
	if limit <= 0 || limit > maxPageSize {
		limit = maxPageSize
	}
	if len(matches) > limit {
		matches = matches[:limit]
	}

	hits := make([]types.Card, 0, len(matches))
	for _, m := range matches {
		hits = append(hits, cards[m.Index])
	}

	return nil, catalogSearchOutput{
		Query: query,
		Total: len(hits),
		Items: dto.FromCards(hits),
	}, nil
}

func cacheClearHandler(_ context.Context, _ *mcp.CallToolRequest, source types.CardSource) (*mcp.CallToolResult, cacheClearOutput, error) {
	clearable, ok := source.(cacheClearSource)
	if !ok {
		return errorToolResult("cache clear is not supported by this source"), cacheClearOutput{}, nil
	}
	clearable.ClearCache()
	return nil, cacheClearOutput{Status: "ok"}, nil
}

func errorToolResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
	}
}

func parseGroup(raw string) (string, error) {
	v := strings.TrimSpace(strings.ToLower(raw))
	switch v {
	case "", groupTopRated, "top-rated":
		return groupTopRated, nil
	case groupMostCommented, "most-commented":
		return groupMostCommented, nil
	default:
		return "", fmt.Errorf("invalid group %q; expected top_rated|most_commented", raw)
	}
}
