package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurzhas/procurement-api/internal/model"
	"github.com/nurzhas/procurement-api/internal/search"
	"github.com/nurzhas/procurement-api/internal/seed"
)

func supplierIDs(suppliers []model.Supplier) []string {
	ids := make([]string, len(suppliers))
	for i, s := range suppliers {
		ids[i] = s.ID
	}
	return ids
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestFilterSuppliersIdentity(t *testing.T) {
	suppliers := seed.Suppliers()
	got := FilterSuppliers(suppliers, SupplierFilter{})
	assert.Equal(t, suppliers, got, "no criteria must return the input unchanged, in order")
}

func TestFilterSuppliers(t *testing.T) {
	suppliers := seed.Suppliers()

	tests := []struct {
		name   string
		filter SupplierFilter
		want   []string
	}{
		{"category", SupplierFilter{Category: "electronics"}, []string{"sup-001"}},
		{"category is case-sensitive", SupplierFilter{Category: "Electronics"}, []string{}},
		{"min rating inclusive", SupplierFilter{MinRating: floatPtr(4.5)}, []string{"sup-001", "sup-003", "sup-005"}},
		{"max price inclusive", SupplierFilter{MaxPrice: floatPtr(28.75)}, []string{"sup-002", "sup-003"}},
		{"min sustainability", SupplierFilter{MinSustainability: intPtr(90)}, []string{"sup-002", "sup-005"}},
		{"location", SupplierFilter{Location: "Germany"}, []string{"sup-002", "sup-005"}},
		{
			"conjunction",
			SupplierFilter{Category: "raw materials", MinSustainability: intPtr(95)},
			[]string{"sup-005"},
		},
		{"no match", SupplierFilter{Category: "raw materials", Location: "Japan"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterSuppliers(suppliers, tt.filter)
			assert.Equal(t, tt.want, supplierIDs(got))
		})
	}
}

func TestRecommendSuppliersSortsByRatingDescending(t *testing.T) {
	got := RecommendSuppliers(seed.Suppliers(), "", 0)
	assert.Equal(t, []string{"sup-005", "sup-001", "sup-003", "sup-002", "sup-004"}, supplierIDs(got))
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Rating, got[i].Rating)
	}
}

func TestRecommendSuppliersByCategory(t *testing.T) {
	got := RecommendSuppliers(seed.Suppliers(), "packaging", 0)
	assert.Equal(t, []string{"sup-005", "sup-003"}, supplierIDs(got))
}

func TestRecommendSuppliersLimit(t *testing.T) {
	got := RecommendSuppliers(seed.Suppliers(), "", 2)
	assert.Len(t, got, 2)
}

func TestRecommendSuppliersNoMatchIsEmptyNotError(t *testing.T) {
	got := RecommendSuppliers(seed.Suppliers(), "nonexistent", 0)
	assert.Empty(t, got)
}

func TestRecommendSuppliersStableOnTies(t *testing.T) {
	tied := []model.Supplier{
		{ID: "a", Rating: 4.0},
		{ID: "b", Rating: 4.5},
		{ID: "c", Rating: 4.0},
		{ID: "d", Rating: 4.0},
	}
	got := RecommendSuppliers(tied, "", 0)
	assert.Equal(t, []string{"b", "a", "c", "d"}, supplierIDs(got), "ties must keep store order")
}

func TestSupplierServiceGet(t *testing.T) {
	svc := NewSupplierService(seededSupplierRepo(t), nil, nil, testLogger())

	supplier, err := svc.Get(context.Background(), "sup-001")
	require.NoError(t, err)
	assert.Equal(t, "TechComponents Inc.", supplier.Name)

	_, err = svc.Get(context.Background(), "sup-999")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSearchWithoutQueryIsFilterOnly(t *testing.T) {
	svc := NewSupplierService(seededSupplierRepo(t), &fakeSearcher{}, nil, testLogger())

	result, err := svc.Search(context.Background(), SupplierFilter{MinSustainability: intPtr(90)})
	require.NoError(t, err)
	assert.False(t, result.Semantic)
	assert.Equal(t, []string{"sup-002", "sup-005"}, supplierIDs(result.Suppliers))
}

func TestSearchDegradesWithoutSearcher(t *testing.T) {
	svc := NewSupplierService(seededSupplierRepo(t), nil, nil, testLogger())

	result, err := svc.Search(context.Background(), SupplierFilter{Query: "sustainable packaging"})
	require.NoError(t, err)
	assert.False(t, result.Semantic, "degradation must be reported, not silent")
	assert.Len(t, result.Suppliers, 5)
}

func TestSearchDegradesOnSearcherError(t *testing.T) {
	svc := NewSupplierService(seededSupplierRepo(t), &fakeSearcher{err: errGatewayDown}, nil, testLogger())

	result, err := svc.Search(context.Background(), SupplierFilter{Query: "sustainable packaging"})
	require.NoError(t, err, "searcher failure must not surface to the caller")
	assert.False(t, result.Semantic)
	assert.Len(t, result.Suppliers, 5)
}

func TestSearchSemanticReRanking(t *testing.T) {
	searcher := &fakeSearcher{results: []search.Result{
		{ID: "sup-003", Certainty: 0.93},
		{ID: "sup-001", Certainty: 0.81},
	}}
	svc := NewSupplierService(seededSupplierRepo(t), searcher, nil, testLogger())

	result, err := svc.Search(context.Background(), SupplierFilter{Query: "packaging electronics"})
	require.NoError(t, err)
	assert.True(t, result.Semantic)
	assert.Equal(t, []string{"sup-003", "sup-001", "sup-002", "sup-004", "sup-005"}, supplierIDs(result.Suppliers),
		"ranked hits first, then remaining suppliers in store order")
}

func TestAnalyzeUsesGateway(t *testing.T) {
	gen := &fakeGenerator{response: "Strong supplier, negotiate on volume."}
	svc := NewSupplierService(seededSupplierRepo(t), nil, gen, testLogger())

	analysis, err := svc.Analyze(context.Background(), "sup-001")
	require.NoError(t, err)
	assert.True(t, analysis.Generated)
	assert.Equal(t, "Strong supplier, negotiate on volume.", analysis.Insights)
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "TechComponents Inc.")
}

func TestAnalyzeFallsBackOnGatewayError(t *testing.T) {
	svc := NewSupplierService(seededSupplierRepo(t), nil, &fakeGenerator{err: errGatewayDown}, testLogger())

	analysis, err := svc.Analyze(context.Background(), "sup-005")
	require.NoError(t, err, "analysis failure must be recovered locally")
	assert.False(t, analysis.Generated)
	assert.NotEmpty(t, analysis.Insights)
	assert.Contains(t, analysis.Insights, "EcoMaterials")
}

func TestAnalyzeUnknownSupplier(t *testing.T) {
	svc := NewSupplierService(seededSupplierRepo(t), nil, nil, testLogger())

	_, err := svc.Analyze(context.Background(), "sup-999")
	require.ErrorIs(t, err, ErrNotFound)
}
