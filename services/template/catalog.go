package template

import "legalease/models"

// Categories covered by the catalog, in display order.
var catalogCategories = []string{"debt-collection", "housing", "harassment", "employment", "litigation"}

// catalogEntries is the static template catalog. Costs are denominated in ETH.
var catalogEntries = []models.CatalogTemplate{
	{
		ID:          "demand-letter",
		Title:       "Demand Letter",
		Description: "Professional demand letter for unpaid debts or services",
		Category:    "debt-collection",
		Fields:      []string{"debtor_name", "amount_owed", "due_date", "description"},
		Cost:        0.02,
	},
	{
		ID:          "lease-termination",
		Title:       "Lease Termination Notice",
		Description: "Formal notice to terminate a rental lease agreement",
		Category:    "housing",
		Fields:      []string{"landlord_name", "tenant_name", "property_address", "termination_date"},
		Cost:        0.02,
	},
	{
		ID:          "cease-desist",
		Title:       "Cease and Desist Letter",
		Description: "Legal notice to stop unwanted behavior or harassment",
		Category:    "harassment",
		Fields:      []string{"recipient_name", "behavior_description", "consequences"},
		Cost:        0.03,
	},
	{
		ID:          "employment-complaint",
		Title:       "Employment Complaint Letter",
		Description: "Formal complaint about workplace issues",
		Category:    "employment",
		Fields:      []string{"employer_name", "issue_description", "desired_resolution"},
		Cost:        0.02,
	},
	{
		ID:          "small-claims-demand",
		Title:       "Small Claims Demand Letter",
		Description: "Pre-litigation demand letter for small claims court",
		Category:    "litigation",
		Fields:      []string{"defendant_name", "claim_amount", "incident_description", "deadline"},
		Cost:        0.04,
	},
}
