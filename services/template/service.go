package template

import (
	"context"

	"legalease/models"
	"legalease/services/advisor"
)

const (
	defaultPageSize = 10
	maxPageSize     = 50
)

// CatalogPage is one page of the static template catalog.
type CatalogPage struct {
	Templates    []models.CatalogTemplate `json:"templates"`
	Jurisdiction string                   `json:"jurisdiction"`
	Categories   []string                 `json:"categories"`
	Page         int                      `json:"page"`
	Limit        int                      `json:"limit"`
	Total        int                      `json:"total"`
}

// Service generates templates via AI and serves the static catalog.
type Service interface {
	Generate(ctx context.Context, req models.TemplateRequest) (*models.Template, error)
	Catalog(jurisdiction, category string, page, limit int) CatalogPage
}

type DefaultTemplateService struct {
	Advisor advisor.Service
}

func NewDefaultTemplateService(adv advisor.Service) *DefaultTemplateService {
	return &DefaultTemplateService{Advisor: adv}
}

func (s *DefaultTemplateService) Generate(ctx context.Context, req models.TemplateRequest) (*models.Template, error) {
	return s.Advisor.GenerateTemplate(ctx, req)
}

// Catalog filters by category and paginates. An unknown category yields an
// empty page, not an error.
func (s *DefaultTemplateService) Catalog(jurisdiction, category string, page, limit int) CatalogPage {
	if jurisdiction == "" {
		jurisdiction = "GENERAL"
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	var filtered []models.CatalogTemplate
	for _, entry := range catalogEntries {
		if category != "" && entry.Category != category {
			continue
		}
		entry.Jurisdiction = jurisdiction
		filtered = append(filtered, entry)
	}

	total := len(filtered)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return CatalogPage{
		Templates:    filtered[start:end],
		Jurisdiction: jurisdiction,
		Categories:   catalogCategories,
		Page:         page,
		Limit:        limit,
		Total:        total,
	}
}
