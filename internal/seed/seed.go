// Package seed provides the built-in fixtures the service boots with. They
// stand in for a real supplier master and regulation catalogue.
package seed

import (
	"time"

	"github.com/nurzhas/procurement-api/internal/model"
)

func Suppliers() []model.Supplier {
	return []model.Supplier{
		{
			ID:                  "sup-001",
			Name:                "TechComponents Inc.",
			Description:         "Leading provider of electronic components",
			Categories:          []string{"electronics", "hardware"},
			Rating:              4.7,
			AvgPrice:            42.50,
			SustainabilityScore: 85,
			Locations:           []string{"USA", "Mexico", "Taiwan"},
			Contacts: []model.Contact{
				{Name: "John Smith", Role: "Account Manager", Email: "john@techcomp.com"},
			},
		},
		{
			ID:                  "sup-002",
			Name:                "Global Materials Co.",
			Description:         "Sustainable raw materials supplier",
			Categories:          []string{"raw materials", "chemicals", "metals"},
			Rating:              4.2,
			AvgPrice:            28.75,
			SustainabilityScore: 92,
			Locations:           []string{"Germany", "China", "Brazil"},
			Contacts: []model.Contact{
				{Name: "Maria Garcia", Role: "Sales Director", Email: "maria@globalmaterials.com"},
			},
		},
		{
			ID:                  "sup-003",
			Name:                "PackageSolutions Ltd.",
			Description:         "Innovative packaging solutions",
			Categories:          []string{"packaging", "paper products"},
			Rating:              4.5,
			AvgPrice:            18.25,
			SustainabilityScore: 78,
			Locations:           []string{"UK", "France", "India"},
			Contacts: []model.Contact{
				{Name: "David Wilson", Role: "Regional Manager", Email: "david@packagesolutions.com"},
			},
		},
		{
			ID:                  "sup-004",
			Name:                "QuickLogistics",
			Description:         "Fast and reliable shipping services",
			Categories:          []string{"logistics", "transportation"},
			Rating:              4.0,
			AvgPrice:            65.30,
			SustainabilityScore: 70,
			Locations:           []string{"Canada", "USA", "Mexico"},
			Contacts: []model.Contact{
				{Name: "Sarah Johnson", Role: "Operations Manager", Email: "sarah@quicklogistics.com"},
			},
		},
		{
			ID:                  "sup-005",
			Name:                "EcoMaterials",
			Description:         "Environmentally friendly manufacturing materials",
			Categories:          []string{"raw materials", "sustainable", "packaging"},
			Rating:              4.8,
			AvgPrice:            35.45,
			SustainabilityScore: 98,
			Locations:           []string{"Sweden", "Denmark", "Germany"},
			Contacts: []model.Contact{
				{Name: "Erik Larsson", Role: "Sustainability Director", Email: "erik@ecomaterials.com"},
			},
		},
	}
}

func ComplianceRequirements() []model.ComplianceRequirement {
	return []model.ComplianceRequirement{
		{
			ID:          "req-001",
			Name:        "GDPR",
			Description: "General Data Protection Regulation",
			Industry:    "all",
			Regions:     []string{"EU", "global"},
			Requirements: []string{
				"Data processing agreements",
				"Privacy impact assessments",
				"Data breach notification procedures",
			},
		},
		{
			ID:          "req-002",
			Name:        "REACH",
			Description: "Registration, Evaluation, Authorization and Restriction of Chemicals",
			Industry:    "manufacturing",
			Regions:     []string{"EU", "global"},
			Requirements: []string{
				"Chemical registration",
				"Safety data sheets",
				"Substitute hazardous substances",
			},
		},
		{
			ID:          "req-003",
			Name:        "RoHS",
			Description: "Restriction of Hazardous Substances",
			Industry:    "electronics",
			Regions:     []string{"EU", "global"},
			Requirements: []string{
				"Limit use of hazardous materials",
				"Testing and certification",
				"Declaration of conformity",
			},
		},
		{
			ID:          "req-004",
			Name:        "CCPA",
			Description: "California Consumer Privacy Act",
			Industry:    "all",
			Regions:     []string{"USA"},
			Requirements: []string{
				"Privacy policy updates",
				"Data inventory",
				"Consumer rights processes",
			},
		},
		{
			ID:          "req-005",
			Name:        "ISO 9001",
			Description: "Quality Management System Standard",
			Industry:    "all",
			Regions:     []string{"global"},
			Requirements: []string{
				"Quality management documentation",
				"Process approach to management",
				"Continuous improvement mechanisms",
			},
		},
	}
}

func Orders() []model.Order {
	return []model.Order{
		{
			ID:           "ord-001",
			SupplierID:   "sup-001",
			SupplierName: "TechComponents Inc.",
			Status:       model.OrderStatusDelivered,
			CreatedAt:    time.Date(2024, 3, 1, 10, 15, 30, 0, time.UTC),
			UpdatedAt:    time.Date(2024, 3, 10, 16, 22, 45, 0, time.UTC),
			Products: []model.OrderProduct{
				{ID: "prod-001", Name: "Microcontroller XC-42", Quantity: 500, Price: 12.50},
			},
			EstimatedDelivery: time.Date(2024, 3, 15, 10, 15, 30, 0, time.UTC),
			TotalAmount:       6250.00,
			PaymentTerms:      "Net 30",
			Notes:             "Quarterly stock replenishment",
		},
		{
			ID:           "ord-002",
			SupplierID:   "sup-003",
			SupplierName: "PackageSolutions Ltd.",
			Status:       model.OrderStatusShipped,
			CreatedAt:    time.Date(2024, 3, 5, 9, 30, 0, 0, time.UTC),
			UpdatedAt:    time.Date(2024, 3, 12, 11, 45, 20, 0, time.UTC),
			Products: []model.OrderProduct{
				{ID: "prod-102", Name: "Biodegradable Packaging Box M", Quantity: 1000, Price: 1.25},
				{ID: "prod-103", Name: "Cushioning Material Roll", Quantity: 50, Price: 15.75},
			},
			EstimatedDelivery: time.Date(2024, 3, 19, 9, 30, 0, 0, time.UTC),
			TotalAmount:       2037.50,
			PaymentTerms:      "Net 45",
			Notes:             "Urgent shipment for new product launch",
		},
	}
}
