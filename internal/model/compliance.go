package model

// Wildcard values accepted by requirement filtering. "all" matches any
// industry, "global" matches any region. They are never compared as literal
// industry/region names.
const (
	IndustryAll  = "all"
	RegionGlobal = "global"
)

// ComplianceRequirement is static reference data describing a regulation and
// the checklist items it implies.
type ComplianceRequirement struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Industry     string   `json:"industry"`
	Regions      []string `json:"regions"`
	Requirements []string `json:"requirements"`
}

// MatchesIndustry reports whether the requirement applies to the industry.
// A requirement tagged "all" applies everywhere; the caller passing "all"
// matches every requirement.
func (r ComplianceRequirement) MatchesIndustry(industry string) bool {
	return industry == IndustryAll || r.Industry == IndustryAll || r.Industry == industry
}

// MatchesRegion reports whether the requirement applies to the region.
// A requirement listing "global" applies everywhere; the caller passing
// "global" matches every requirement.
func (r ComplianceRequirement) MatchesRegion(region string) bool {
	if region == RegionGlobal {
		return true
	}
	for _, reg := range r.Regions {
		if reg == region || reg == RegionGlobal {
			return true
		}
	}
	return false
}
