package models

// MaxDocumentLength is the hard ceiling on analysable document text.
const MaxDocumentLength = 10000

// DocumentAnalysisRequest is the payload for document analysis.
type DocumentAnalysisRequest struct {
	DocumentText string `json:"documentText"`
	DocumentType string `json:"documentType,omitempty"`
	Jurisdiction string `json:"jurisdiction"`
	AnalysisType string `json:"analysisType"`
}

// Compliance groups jurisdiction-specific findings for a document.
type Compliance struct {
	Jurisdiction string   `json:"jurisdiction"`
	Requirements []string `json:"requirements"`
	Violations   []string `json:"violations"`
}

// DocumentAnalysisResponse is the enriched result of a document analysis.
type DocumentAnalysisResponse struct {
	ID              string     `json:"id"`
	Summary         string     `json:"summary"`
	KeyPoints       []string   `json:"keyPoints"`
	Risks           []string   `json:"risks"`
	Recommendations []string   `json:"recommendations"`
	Compliance      Compliance `json:"compliance"`
	Confidence      float64    `json:"confidence"`
}

// AnalysisType describes one entry in the supported analysis catalog.
type AnalysisType struct {
	Type          string  `json:"type"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	BaseCost      float64 `json:"baseCost"`
	EstimatedTime string  `json:"estimatedTime"`
}
