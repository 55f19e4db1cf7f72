package terminal

import (
	"context"
	"gridmap/client"
)

// Service is the search service as the terminal uses it.
// *client.Client implements it.
type Service interface {
	GetMaps(ctx context.Context) (map[string]string, error)
	StartSearch(ctx context.Context, req client.SearchRequest) (*client.SearchResult, error)
	SaveMap(ctx context.Context, name, text string) error
}

// Request outcomes, posted back to the event loop as interrupt data.
type (
	searchDone struct {
		token  uint64
		result *client.SearchResult
		err    error
	}

	mapsDone struct {
		maps map[string]string
		err  error
	}

	saveDone struct {
		name string
		err  error
	}

	shutdown struct{}
)
