package models

// DocumentDetail is a read-only reference record keyed by country and
// document type. This service never writes to the underlying table.
type DocumentDetail struct {
	ID           string `json:"id"`
	Country      string `json:"country"`
	DocumentType string `json:"documentType"`
	Name         string `json:"name"`
	Description  string `json:"description"`
}
