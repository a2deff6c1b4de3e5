package model

import "time"

// Negotiation is a logged negotiation artifact (a drafted message or a
// generated dossier). Kept for future history features; nothing reads it back
// yet besides dossier assembly.
type Negotiation struct {
	ID         string    `json:"id"`
	SupplierID string    `json:"supplier_id"`
	Kind       string    `json:"kind"`
	Subject    string    `json:"subject"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}

// PricingInsights are derived from a supplier's average price with fixed
// multipliers (0.95 market, 0.90 target).
type PricingInsights struct {
	CurrentPricing  float64 `json:"current_pricing"`
	MarketAverage   float64 `json:"market_average"`
	SuggestedTarget float64 `json:"suggested_target"`
}

// Dossier is the negotiation briefing for one supplier. Narrative carries the
// raw text-generation output when a gateway is configured; it is untrusted
// free text and never validated against a schema.
type Dossier struct {
	SupplierName         string          `json:"supplier_name"`
	KeyContacts          []Contact       `json:"key_contacts"`
	PreviousNegotiations []Negotiation   `json:"previous_negotiations"`
	SuggestedStrategies  []string        `json:"suggested_strategies"`
	PricingInsights      PricingInsights `json:"pricing_insights"`
	Narrative            string          `json:"narrative,omitempty"`
}

// Strategy is a single negotiation strategy suggestion.
type Strategy struct {
	Name              string `json:"name"`
	Description       string `json:"description"`
	SuggestedApproach string `json:"suggested_approach"`
}

// Message is a drafted supplier communication.
type Message struct {
	Subject       string   `json:"subject"`
	Body          string   `json:"body"`
	SuggestedTone string   `json:"suggested_tone"`
	KeyPoints     []string `json:"key_points"`
}
