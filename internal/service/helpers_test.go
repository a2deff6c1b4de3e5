package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/nurzhas/procurement-api/internal/repository"
	"github.com/nurzhas/procurement-api/internal/search"
	"github.com/nurzhas/procurement-api/internal/seed"
)

// fakeGenerator is a deterministic TextGenerator stand-in.
type fakeGenerator struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

var errGatewayDown = errors.New("gateway unreachable")

// fakeSearcher replays a fixed ranking.
type fakeSearcher struct {
	results []search.Result
	err     error
}

func (f *fakeSearcher) Search(ctx context.Context, query string, limit int) ([]search.Result, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

// stubClock hands out strictly increasing timestamps one second apart.
type stubClock struct {
	current time.Time
}

func newStubClock() *stubClock {
	return &stubClock{current: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *stubClock) Now() time.Time {
	now := c.current
	c.current = c.current.Add(time.Second)
	return now
}

func seededSupplierRepo(t *testing.T) *repository.SupplierRepository {
	t.Helper()
	repo, err := repository.NewSupplierRepository(seed.Suppliers())
	require.NoError(t, err)
	return repo
}

func seededOrderRepo(t *testing.T) *repository.OrderRepository {
	t.Helper()
	repo, err := repository.NewOrderRepository(seed.Orders())
	require.NoError(t, err)
	return repo
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}
