package models

// LegalQuery is the payload for a legal advice request.
type LegalQuery struct {
	Query        string         `json:"query"`
	Jurisdiction string         `json:"jurisdiction"`
	UserID       string         `json:"userId,omitempty"`
	Context      *AdviceContext `json:"context,omitempty"`
}

// AdviceContext carries optional situational data used by the contextual
// advice prompt.
type AdviceContext struct {
	PreviousQueries []string `json:"previousQueries,omitempty"`
	UserType        string   `json:"userType,omitempty"` // "individual", "business" or "organization"
	Urgency         string   `json:"urgency,omitempty"`  // "low", "medium" or "high"
}

// LegalAdviceResponse is the normalized output of an advice generation.
type LegalAdviceResponse struct {
	Summary      string     `json:"summary"`
	ActionSteps  []string   `json:"actionSteps"`
	RelevantLaws []string   `json:"relevantLaws"`
	Sources      []string   `json:"sources"`
	Templates    []Template `json:"templates,omitempty"`
	Disclaimer   string     `json:"disclaimer,omitempty"`
}

// Template is a generated or catalogued legal document template.
type Template struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	UsageContext string   `json:"usageContext"`
	Jurisdiction string   `json:"jurisdiction"`
	Variables    []string `json:"variables"`
}

// TemplateRequest is the payload for template generation.
type TemplateRequest struct {
	TemplateType   string            `json:"templateType"`
	Jurisdiction   string            `json:"jurisdiction"`
	Context        string            `json:"context"`
	Customizations map[string]string `json:"customizations,omitempty"`
}

// CatalogTemplate describes a ready-made template in the static catalog.
type CatalogTemplate struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Jurisdiction string   `json:"jurisdiction"`
	Fields       []string `json:"fields"`
	Cost         float64  `json:"cost"`
}
