package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/nurzhas/procurement-api/internal/model"
	"github.com/nurzhas/procurement-api/internal/repository"
	"github.com/nurzhas/procurement-api/internal/search"
)

const defaultRecommendLimit = 5

// SupplierFilter is a conjunctive criteria bag. Nil/zero criteria are no-ops;
// with nothing set the input passes through unchanged.
type SupplierFilter struct {
	Category          string
	MinRating         *float64
	MaxPrice          *float64
	MinSustainability *int
	Location          string
	// Query triggers semantic re-ranking when a searcher is configured.
	Query string
}

// SearchResult carries the matched suppliers plus whether semantic ranking
// was actually applied, so degradation to filter-only is observable.
type SearchResult struct {
	Suppliers []model.Supplier `json:"suppliers"`
	Semantic  bool             `json:"semantic"`
}

// SupplierAnalysis is the insight report for one supplier. Generated is false
// when the text came from the deterministic fallback.
type SupplierAnalysis struct {
	SupplierID   string `json:"supplier_id"`
	SupplierName string `json:"supplier_name"`
	Insights     string `json:"insights"`
	Generated    bool   `json:"generated"`
}

type SupplierService struct {
	repo      *repository.SupplierRepository
	searcher  SemanticSearcher
	generator TextGenerator
	log       zerolog.Logger
}

func NewSupplierService(repo *repository.SupplierRepository, searcher SemanticSearcher, generator TextGenerator, log zerolog.Logger) *SupplierService {
	return &SupplierService{
		repo:      repo,
		searcher:  searcher,
		generator: generator,
		log:       log,
	}
}

// FilterSuppliers applies the criteria as a conjunction over the input,
// preserving order. Pure: the input slice is never modified.
func FilterSuppliers(suppliers []model.Supplier, filter SupplierFilter) []model.Supplier {
	out := make([]model.Supplier, 0, len(suppliers))
	for _, s := range suppliers {
		if filter.Category != "" && !s.HasCategory(filter.Category) {
			continue
		}
		if filter.Location != "" && !s.HasLocation(filter.Location) {
			continue
		}
		if filter.MinRating != nil && s.Rating < *filter.MinRating {
			continue
		}
		if filter.MaxPrice != nil && s.AvgPrice > *filter.MaxPrice {
			continue
		}
		if filter.MinSustainability != nil && s.SustainabilityScore < *filter.MinSustainability {
			continue
		}
		out = append(out, s)
	}
	return out
}

// RecommendSuppliers filters by category (empty means no filter), sorts by
// rating descending and truncates. The sort is stable so ties keep store
// order and repeated calls are deterministic.
func RecommendSuppliers(suppliers []model.Supplier, category string, limit int) []model.Supplier {
	if limit <= 0 {
		limit = defaultRecommendLimit
	}

	out := FilterSuppliers(suppliers, SupplierFilter{Category: category})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Rating > out[j].Rating
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// List returns suppliers matching the optional category and minimum rating.
func (s *SupplierService) List(ctx context.Context, category string, minRating *float64) ([]model.Supplier, error) {
	suppliers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterSuppliers(suppliers, SupplierFilter{Category: category, MinRating: minRating}), nil
}

func (s *SupplierService) Get(ctx context.Context, id string) (*model.Supplier, error) {
	supplier, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: supplier %s", ErrNotFound, id)
		}
		return nil, err
	}
	return supplier, nil
}

// Search applies the criteria bag, then re-ranks by semantic certainty when a
// free-text query is present and a searcher is configured. Any searcher
// failure degrades to the filter-only result; degradation is reported via
// SearchResult.Semantic, never a caller-visible error.
func (s *SupplierService) Search(ctx context.Context, filter SupplierFilter) (*SearchResult, error) {
	suppliers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := FilterSuppliers(suppliers, filter)
	if filter.Query == "" || s.searcher == nil {
		return &SearchResult{Suppliers: filtered, Semantic: false}, nil
	}

	ranked, err := s.searcher.Search(ctx, filter.Query, len(filtered))
	if err != nil {
		s.log.Warn().Err(err).Msg("semantic search unavailable, falling back to filter-only results")
		return &SearchResult{Suppliers: filtered, Semantic: false}, nil
	}

	return &SearchResult{Suppliers: rankByHits(filtered, ranked), Semantic: true}, nil
}

// rankByHits moves suppliers named by the hits to the front in hit order;
// everything unranked follows in store order.
func rankByHits(suppliers []model.Supplier, hits []search.Result) []model.Supplier {
	position := make(map[string]int, len(hits))
	for i, hit := range hits {
		if _, seen := position[hit.ID]; !seen {
			position[hit.ID] = i
		}
	}

	out := make([]model.Supplier, 0, len(suppliers))
	for _, hit := range hits {
		for _, s := range suppliers {
			if s.ID == hit.ID {
				out = append(out, s)
				break
			}
		}
	}
	for _, s := range suppliers {
		if _, ranked := position[s.ID]; !ranked {
			out = append(out, s)
		}
	}
	return out
}

// Recommend returns the top-rated suppliers within a category, at most limit
// entries. Never an error for an empty match.
func (s *SupplierService) Recommend(ctx context.Context, category string, limit int) ([]model.Supplier, error) {
	suppliers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return RecommendSuppliers(suppliers, category, limit), nil
}

// Analyze produces an insight report for one supplier via the text-generation
// gateway, falling back to a rule-based summary when the gateway is disabled
// or fails.
func (s *SupplierService) Analyze(ctx context.Context, id string) (*SupplierAnalysis, error) {
	supplier, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.generator != nil {
		insights, genErr := s.generator.Generate(ctx, supplierAnalysisPrompt(*supplier))
		if genErr == nil {
			return &SupplierAnalysis{
				SupplierID:   supplier.ID,
				SupplierName: supplier.Name,
				Insights:     insights,
				Generated:    true,
			}, nil
		}
		s.log.Warn().Err(genErr).Str("supplier_id", id).Msg("supplier analysis generation failed, using fallback")
	}

	return &SupplierAnalysis{
		SupplierID:   supplier.ID,
		SupplierName: supplier.Name,
		Insights:     fallbackAnalysis(*supplier),
		Generated:    false,
	}, nil
}

func supplierAnalysisPrompt(s model.Supplier) string {
	return fmt.Sprintf(`Analyze the following supplier information and provide insights:

Supplier Name: %s
Description: %s
Categories: %s
Rating: %.1f
Average Price: $%.2f
Sustainability Score: %d/100

Please provide:
1. Key strengths of this supplier
2. Potential concerns or weaknesses
3. Negotiation leverage points
4. Recommended approach for engagement`,
		s.Name, s.Description, strings.Join(s.Categories, ", "), s.Rating, s.AvgPrice, s.SustainabilityScore)
}

// fallbackAnalysis derives a deterministic summary from the numeric fields.
func fallbackAnalysis(s model.Supplier) string {
	var b strings.Builder

	switch {
	case s.Rating >= 4.5:
		fmt.Fprintf(&b, "%s is a top-rated supplier (%.1f/5). ", s.Name, s.Rating)
	case s.Rating >= 4.0:
		fmt.Fprintf(&b, "%s is a solid supplier (%.1f/5). ", s.Name, s.Rating)
	default:
		fmt.Fprintf(&b, "%s has a mixed track record (%.1f/5); request references before committing. ", s.Name, s.Rating)
	}

	if s.SustainabilityScore >= 90 {
		fmt.Fprintf(&b, "Sustainability is a clear strength (%d/100) and worth highlighting in negotiations. ", s.SustainabilityScore)
	} else if s.SustainabilityScore < 75 {
		fmt.Fprintf(&b, "Sustainability (%d/100) lags the category and can be used as leverage. ", s.SustainabilityScore)
	}

	fmt.Fprintf(&b, "Average price is $%.2f; target a volume-based discount toward $%.2f.", s.AvgPrice, s.AvgPrice*0.9)
	return b.String()
}
