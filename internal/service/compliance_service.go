package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/nurzhas/procurement-api/internal/model"
	"github.com/nurzhas/procurement-api/internal/repository"
)

type ComplianceService struct {
	requirements *repository.ComplianceRepository
	generator    TextGenerator
	log          zerolog.Logger
}

func NewComplianceService(requirements *repository.ComplianceRepository, generator TextGenerator, log zerolog.Logger) *ComplianceService {
	return &ComplianceService{
		requirements: requirements,
		generator:    generator,
		log:          log,
	}
}

// FilterRequirements narrows requirements to an industry and region.
// "all"/"global" are wildcards on both sides: as caller input they match
// everything, as requirement tags they apply everywhere.
func FilterRequirements(requirements []model.ComplianceRequirement, industry, region string) []model.ComplianceRequirement {
	if industry == "" {
		industry = model.IndustryAll
	}
	if region == "" {
		region = model.RegionGlobal
	}

	out := make([]model.ComplianceRequirement, 0, len(requirements))
	for _, r := range requirements {
		if r.MatchesIndustry(industry) && r.MatchesRegion(region) {
			out = append(out, r)
		}
	}
	return out
}

// Requirements returns the stored requirements matching industry and region,
// defaulting to the match-everything wildcards.
func (s *ComplianceService) Requirements(ctx context.Context, industry, region string) ([]model.ComplianceRequirement, error) {
	requirements, err := s.requirements.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterRequirements(requirements, industry, region), nil
}

type AnalyzeDocumentInput struct {
	DocumentType string
	Industry     string
	Region       string
	Text         string
}

// documentTextLimit caps how much extracted text is sent to the gateway.
const documentTextLimit = 2000

// DocumentAnalysis is the review of one document. When the gateway answer is
// not the requested JSON shape, Raw carries the unparsed text instead.
type DocumentAnalysis struct {
	DocumentType       string              `json:"document_type"`
	IdentifiedClauses  []string            `json:"identified_clauses,omitempty"`
	ComplianceConcerns []ComplianceConcern `json:"compliance_concerns,omitempty"`
	SuggestedActions   []string            `json:"suggested_actions,omitempty"`
	Raw                string              `json:"raw,omitempty"`
}

type ComplianceConcern struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
}

// AnalyzeDocument reviews extracted document text via the gateway. This is
// the one generation path with no deterministic fallback: a disabled or
// failing gateway surfaces ErrUpstream.
func (s *ComplianceService) AnalyzeDocument(ctx context.Context, input AnalyzeDocumentInput) (*DocumentAnalysis, error) {
	if input.Text == "" {
		return nil, fmt.Errorf("%w: document text is required", ErrInvalidInput)
	}
	if input.DocumentType == "" {
		input.DocumentType = "contract"
	}
	if input.Industry == "" {
		input.Industry = "manufacturing"
	}
	if input.Region == "" {
		input.Region = model.RegionGlobal
	}

	if s.generator == nil {
		return nil, fmt.Errorf("%w: text generation is not configured", ErrUpstream)
	}

	raw, err := s.generator.Generate(ctx, documentAnalysisPrompt(input))
	if err != nil {
		s.log.Error().Err(err).Str("document_type", input.DocumentType).Msg("document analysis failed")
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	analysis := &DocumentAnalysis{DocumentType: input.DocumentType}
	if jsonErr := json.Unmarshal([]byte(raw), analysis); jsonErr != nil {
		// Untrusted free text; hand it back as-is rather than guessing.
		analysis = &DocumentAnalysis{DocumentType: input.DocumentType, Raw: raw}
	}
	return analysis, nil
}

type VerifyInput struct {
	SupplierID string
	DocumentID string
}

// VerificationResult is the compliance check outcome. RiskScore runs 0-100,
// higher is riskier.
type VerificationResult struct {
	Status             string   `json:"status"`
	CompliantAreas     []string `json:"compliant_areas"`
	NonCompliantAreas  []string `json:"non_compliant_areas"`
	RiskScore          int      `json:"risk_score"`
	RecommendedActions []string `json:"recommended_actions"`
}

// Verify reports the compliance standing of a supplier or document. The
// result is a static placeholder until the knowledge graph integration lands.
func (s *ComplianceService) Verify(ctx context.Context, input VerifyInput) (*VerificationResult, error) {
	if input.SupplierID == "" && input.DocumentID == "" {
		return nil, fmt.Errorf("%w: supplier_id or document_id is required", ErrInvalidInput)
	}

	return &VerificationResult{
		Status:            "partially_compliant",
		CompliantAreas:    []string{"Environmental regulations", "Labor practices"},
		NonCompliantAreas: []string{"Data protection requirements"},
		RiskScore:         65,
		RecommendedActions: []string{
			"Request updated data protection policy",
			"Schedule compliance audit within 60 days",
		},
	}, nil
}

func documentAnalysisPrompt(input AnalyzeDocumentInput) string {
	text := input.Text
	if len(text) > documentTextLimit {
		text = text[:documentTextLimit]
	}
	return fmt.Sprintf(`Analyze the following document for compliance with regulations in the %s industry for the %s region.

Document Content:
%s

Respond with a JSON object with "identified_clauses" (string array),
"compliance_concerns" (array of {"type", "description", "severity"}) and
"suggested_actions" (string array), and nothing else.`,
		input.Industry, input.Region, text)
}
