package model

import "time"

// Alternate id types recognised on an award.
const (
	IDTypePrintID    = "ORIGINAL_PRINT_ID"
	IDTypeOrigMatter = "ORIGINATING_MATTER"
)

// AwardAlternateID is a secondary identifier attached to an award.
type AwardAlternateID struct {
	ID     string `json:"id"`
	IDType string `json:"type"`
}

// AwardClassification is an employment classification listed on an award.
type AwardClassification struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Active bool   `json:"active"`
	Note   string `json:"note"`
}

// Award represents an industrial award record as stored in the `awards`
// table. The nested alternate id and classification collections are
// persisted as JSON columns; json tags on the nested types define that
// column format as well as the API shape.
//
// Fields:
//  ID              – primary key identifier (UUID string).
//  ExternalID      – identifier from the upstream registry.
//  Name            – award title.
//  IndustryName    – industry the award covers.
//  CommonRule      – optional common-rule declaration (nullable).
//  AlternateIDs    – secondary identifiers (JSON array).
//  OperativeDate   – when the award came into effect.
//  ExpiredDate     – when the award ceased, if it has (nullable).
//  Classifications – employment classifications (JSON array).
type Award struct {
	ID              string                // awards.id
	ExternalID      string                // awards.external_id
	Name            string                // awards.name
	IndustryName    string                // awards.industry_name
	CommonRule      *string               // awards.common_rule (nullable)
	AlternateIDs    []AwardAlternateID    // awards.alternate_ids (JSON array)
	OperativeDate   time.Time             // awards.operative_date
	ExpiredDate     *time.Time            // awards.expired_date (nullable)
	Classifications []AwardClassification // awards.classifications (JSON array)
}
