package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nurzhas/procurement-api/internal/model"
	"github.com/nurzhas/procurement-api/internal/repository"
)

// Fixed multipliers applied to a supplier's average price when deriving
// pricing insights.
const (
	marketAverageFactor   = 0.95
	suggestedTargetFactor = 0.90
)

type NegotiationService struct {
	suppliers    *repository.SupplierRepository
	negotiations *repository.NegotiationRepository
	generator    TextGenerator
	log          zerolog.Logger

	now func() time.Time
}

func NewNegotiationService(suppliers *repository.SupplierRepository, negotiations *repository.NegotiationRepository, generator TextGenerator, log zerolog.Logger) *NegotiationService {
	return &NegotiationService{
		suppliers:    suppliers,
		negotiations: negotiations,
		generator:    generator,
		log:          log,
		now:          time.Now,
	}
}

func (s *NegotiationService) getSupplier(ctx context.Context, id string) (*model.Supplier, error) {
	supplier, err := s.suppliers.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: supplier %s", ErrNotFound, id)
	}
	return supplier, nil
}

// BuildDossier assembles the negotiation briefing for a supplier. Pricing
// insights are fully deterministic; when a gateway is configured its raw
// output is attached as the narrative, and any gateway failure simply leaves
// the narrative empty.
func (s *NegotiationService) BuildDossier(ctx context.Context, supplierID string) (*model.Dossier, error) {
	supplier, err := s.getSupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	previous, err := s.negotiations.ListBySupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	if previous == nil {
		previous = []model.Negotiation{}
	}

	dossier := &model.Dossier{
		SupplierName:         supplier.Name,
		KeyContacts:          supplier.Contacts,
		PreviousNegotiations: previous,
		SuggestedStrategies: []string{
			"Focus on volume discounts",
			"Highlight long-term partnership benefits",
			"Negotiate payment terms extension",
		},
		PricingInsights: model.PricingInsights{
			CurrentPricing:  supplier.AvgPrice,
			MarketAverage:   supplier.AvgPrice * marketAverageFactor,
			SuggestedTarget: supplier.AvgPrice * suggestedTargetFactor,
		},
	}

	if s.generator != nil {
		narrative, genErr := s.generator.Generate(ctx, supplierAnalysisPrompt(*supplier))
		if genErr != nil {
			s.log.Warn().Err(genErr).Str("supplier_id", supplierID).Msg("dossier narrative generation failed, omitting narrative")
		} else {
			dossier.Narrative = narrative
		}
	}

	return dossier, nil
}

type StrategyInput struct {
	Supplier    string
	Category    string
	Description string
}

// Strategies returns negotiation strategies, generated when a gateway is
// configured and it answers with parseable JSON, otherwise the static set.
// Never an error: strategy generation always has a fallback.
func (s *NegotiationService) Strategies(ctx context.Context, input StrategyInput) ([]model.Strategy, error) {
	if s.generator != nil {
		raw, genErr := s.generator.Generate(ctx, strategyPrompt(input))
		if genErr == nil {
			var strategies []model.Strategy
			if jsonErr := json.Unmarshal([]byte(raw), &strategies); jsonErr == nil && len(strategies) > 0 {
				return strategies, nil
			}
			s.log.Warn().Str("supplier", input.Supplier).Msg("strategy response was not valid JSON, using fallback")
		} else {
			s.log.Warn().Err(genErr).Str("supplier", input.Supplier).Msg("strategy generation failed, using fallback")
		}
	}
	return fallbackStrategies(), nil
}

type DraftMessageInput struct {
	SupplierID string
	Kind       string
}

// DraftMessage drafts a supplier communication and logs it as a negotiation
// artifact. The gateway is optional; failures fall back to the template for
// the message kind (unknown kinds draft an inquiry).
func (s *NegotiationService) DraftMessage(ctx context.Context, input DraftMessageInput) (*model.Message, error) {
	supplier, err := s.getSupplier(ctx, input.SupplierID)
	if err != nil {
		return nil, err
	}

	kind := input.Kind
	if kind == "" {
		kind = "inquiry"
	}

	body := ""
	if s.generator != nil {
		generated, genErr := s.generator.Generate(ctx, messagePrompt(*supplier, kind))
		if genErr == nil {
			body = generated
		} else {
			s.log.Warn().Err(genErr).Str("supplier_id", input.SupplierID).Msg("message drafting failed, using template")
		}
	}
	if body == "" {
		body = messageTemplate(*supplier, kind)
	}

	message := &model.Message{
		Subject:       fmt.Sprintf("Re: %s with %s", capitalize(kind), supplier.Name),
		Body:          body,
		SuggestedTone: "Professional and direct",
		KeyPoints: []string{
			"Reference previous communication",
			"Be specific about needs",
			"Include timeline expectations",
		},
	}

	record := model.Negotiation{
		ID:         uuid.New().String(),
		SupplierID: supplier.ID,
		Kind:       kind,
		Subject:    message.Subject,
		Body:       message.Body,
		CreatedAt:  s.now(),
	}
	if err := s.negotiations.Append(ctx, record); err != nil {
		return nil, err
	}

	return message, nil
}

func strategyPrompt(input StrategyInput) string {
	return fmt.Sprintf(`Generate effective negotiation strategies for the following scenario:

Supplier: %s
Product Category: %s
Negotiation Goal: %s

Respond with a JSON array of objects, each with "name", "description" and
"suggested_approach" string fields, and nothing else.`,
		input.Supplier, input.Category, input.Description)
}

func fallbackStrategies() []model.Strategy {
	return []model.Strategy{
		{
			Name:              "Volume Discount",
			Description:       "Negotiate price reductions based on purchase volume",
			SuggestedApproach: "Propose 5-10% discount for orders over $10,000",
		},
		{
			Name:              "Early Payment Terms",
			Description:       "Offer faster payment for price reduction",
			SuggestedApproach: "Propose 2-3% discount for payment within 10 days",
		},
		{
			Name:              "Long-term Contract",
			Description:       "Secure better pricing with multi-year commitment",
			SuggestedApproach: "Propose 7-12% discount for 2-year supply agreement",
		},
	}
}

func messagePrompt(supplier model.Supplier, kind string) string {
	return fmt.Sprintf(`Draft a professional %s message to the supplier %s (%s).
Keep it short, courteous and specific, and sign it "Procurement Team".`,
		kind, supplier.Name, supplier.Description)
}

func messageTemplate(supplier model.Supplier, kind string) string {
	templates := map[string]string{
		"inquiry": fmt.Sprintf(
			"Dear %s,\n\nWe are interested in your products and would like to request more information about your pricing and availability for our upcoming projects.\n\nBest regards,\nProcurement Team",
			supplier.Name),
		"negotiation": fmt.Sprintf(
			"Dear %s,\n\nThank you for your quote. We would like to discuss the possibility of a volume discount based on our projected annual needs.\n\nBest regards,\nProcurement Team",
			supplier.Name),
		"followup": fmt.Sprintf(
			"Dear %s,\n\nI'm following up on our previous conversation regarding pricing. Have you had a chance to review our proposal?\n\nBest regards,\nProcurement Team",
			supplier.Name),
	}
	if body, ok := templates[kind]; ok {
		return body
	}
	return templates["inquiry"]
}
