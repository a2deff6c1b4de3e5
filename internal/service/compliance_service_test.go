package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurzhas/procurement-api/internal/model"
	"github.com/nurzhas/procurement-api/internal/repository"
	"github.com/nurzhas/procurement-api/internal/seed"
)

func newComplianceService(generator TextGenerator) *ComplianceService {
	return NewComplianceService(repository.NewComplianceRepository(seed.ComplianceRequirements()), generator, testLogger())
}

func requirementIDs(requirements []model.ComplianceRequirement) []string {
	ids := make([]string, len(requirements))
	for i, r := range requirements {
		ids[i] = r.ID
	}
	return ids
}

func TestFilterRequirementsWildcards(t *testing.T) {
	requirements := seed.ComplianceRequirements()

	got := FilterRequirements(requirements, "all", "global")
	assert.Len(t, got, len(requirements), "all/global must match every requirement")

	got = FilterRequirements(requirements, "", "")
	assert.Len(t, got, len(requirements), "omitted values default to the wildcards")
}

func TestFilterRequirements(t *testing.T) {
	requirements := seed.ComplianceRequirements()

	tests := []struct {
		name     string
		industry string
		region   string
		want     []string
	}{
		{"electronics industry", "electronics", "global", []string{"req-001", "req-003", "req-004", "req-005"}},
		{"manufacturing industry", "manufacturing", "global", []string{"req-001", "req-002", "req-004", "req-005"}},
		{"EU region", "all", "EU", []string{"req-001", "req-002", "req-003", "req-005"}},
		{"USA region", "all", "USA", []string{"req-001", "req-002", "req-003", "req-004", "req-005"}},
		{"both narrowed", "electronics", "EU", []string{"req-001", "req-003", "req-005"}},
		{"unknown industry keeps all-tagged", "aerospace", "global", []string{"req-001", "req-004", "req-005"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterRequirements(requirements, tt.industry, tt.region)
			assert.Equal(t, tt.want, requirementIDs(got))
		})
	}
}

func TestRequirementsService(t *testing.T) {
	svc := newComplianceService(nil)

	got, err := svc.Requirements(context.Background(), "", "")
	require.NoError(t, err)
	assert.Len(t, got, 5)
}

func TestAnalyzeDocumentRequiresGateway(t *testing.T) {
	svc := newComplianceService(nil)

	_, err := svc.AnalyzeDocument(context.Background(), AnalyzeDocumentInput{Text: "some contract text"})
	require.ErrorIs(t, err, ErrUpstream, "document analysis has no local fallback")
}

func TestAnalyzeDocumentSurfacesGatewayFailure(t *testing.T) {
	svc := newComplianceService(&fakeGenerator{err: errGatewayDown})

	_, err := svc.AnalyzeDocument(context.Background(), AnalyzeDocumentInput{Text: "some contract text"})
	require.ErrorIs(t, err, ErrUpstream)
}

func TestAnalyzeDocumentRequiresText(t *testing.T) {
	svc := newComplianceService(&fakeGenerator{response: "{}"})

	_, err := svc.AnalyzeDocument(context.Background(), AnalyzeDocumentInput{})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestAnalyzeDocumentParsesStructuredAnswer(t *testing.T) {
	svc := newComplianceService(&fakeGenerator{response: `{
		"identified_clauses": ["liability", "termination"],
		"compliance_concerns": [{"type": "Missing clause", "description": "No data protection clause", "severity": "high"}],
		"suggested_actions": ["Add GDPR compliance clause"]
	}`})

	analysis, err := svc.AnalyzeDocument(context.Background(), AnalyzeDocumentInput{
		DocumentType: "contract",
		Industry:     "electronics",
		Region:       "EU",
		Text:         "full contract text",
	})
	require.NoError(t, err)
	assert.Equal(t, "contract", analysis.DocumentType)
	assert.Equal(t, []string{"liability", "termination"}, analysis.IdentifiedClauses)
	require.Len(t, analysis.ComplianceConcerns, 1)
	assert.Equal(t, "high", analysis.ComplianceConcerns[0].Severity)
	assert.Empty(t, analysis.Raw)
}

func TestAnalyzeDocumentKeepsUnparseableAnswerRaw(t *testing.T) {
	svc := newComplianceService(&fakeGenerator{response: "The document looks mostly fine."})

	analysis, err := svc.AnalyzeDocument(context.Background(), AnalyzeDocumentInput{Text: "full contract text"})
	require.NoError(t, err)
	assert.Equal(t, "The document looks mostly fine.", analysis.Raw)
	assert.Empty(t, analysis.IdentifiedClauses)
}

func TestAnalyzeDocumentTruncatesLongText(t *testing.T) {
	gen := &fakeGenerator{response: "{}"}
	svc := newComplianceService(gen)

	long := make([]byte, 5000)
	for i := range long {
		long[i] = 'a'
	}
	_, err := svc.AnalyzeDocument(context.Background(), AnalyzeDocumentInput{Text: string(long)})
	require.NoError(t, err)
	require.Len(t, gen.prompts, 1)
	assert.Less(t, len(gen.prompts[0]), 3000, "prompt must carry at most the first 2000 chars of the document")
}

func TestVerifyCompliance(t *testing.T) {
	svc := newComplianceService(nil)

	result, err := svc.Verify(context.Background(), VerifyInput{SupplierID: "sup-001"})
	require.NoError(t, err)
	assert.Equal(t, "partially_compliant", result.Status)
	assert.Equal(t, 65, result.RiskScore)
	assert.NotEmpty(t, result.RecommendedActions)
}

func TestVerifyComplianceRequiresATarget(t *testing.T) {
	svc := newComplianceService(nil)

	_, err := svc.Verify(context.Background(), VerifyInput{})
	require.ErrorIs(t, err, ErrInvalidInput)
}
