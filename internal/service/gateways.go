package service

import (
	"context"

	"github.com/nurzhas/procurement-api/internal/search"
)

// TextGenerator is the text-generation collaborator. Implementations may
// return free text or JSON-shaped text; callers treat the output as
// untrusted either way. A nil TextGenerator means the gateway is disabled.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// SemanticSearcher ranks suppliers for a free-text query. A nil
// SemanticSearcher degrades search to the deterministic filter-only result.
type SemanticSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]search.Result, error)
}
