package repository

import (
	"time"

	"github.com/sangkips/bizdesk-api/internal/domain/entity"
	"gorm.io/gorm"
)

// Stores groups the tenant stores of every document collection
type Stores struct {
	Clients    *TenantStore[entity.Client, *entity.Client]
	Quotes     *TenantStore[entity.Quote, *entity.Quote]
	Invoices   *TenantStore[entity.Invoice, *entity.Invoice]
	Projects   *TenantStore[entity.Project, *entity.Project]
	Files      *TenantStore[entity.File, *entity.File]
	AIFeedback *TenantStore[entity.AIFeedback, *entity.AIFeedback]
}

// NewStores builds the tenant stores with their sortable fields
func NewStores(db *gorm.DB, now func() time.Time) *Stores {
	return &Stores{
		Clients: NewTenantStore[entity.Client](db, CollectionConfig{
			Resource: "Klant",
			Orderable: map[string]string{
				"name":    "name",
				"company": "company",
				"status":  "status",
			},
		}, now),
		Quotes: NewTenantStore[entity.Quote](db, CollectionConfig{
			Resource: "Offerte",
			Orderable: map[string]string{
				"nummer":    "number",
				"datum":     "date",
				"geldigTot": "valid_until",
				"totaal":    "total",
				"status":    "status",
				"klantNaam": "client_name",
			},
		}, now),
		Invoices: NewTenantStore[entity.Invoice](db, CollectionConfig{
			Resource: "Factuur",
			Orderable: map[string]string{
				"nummer":       "number",
				"factuurdatum": "issue_date",
				"vervaldatum":  "due_date",
				"totaal":       "total",
				"status":       "status",
				"klantNaam":    "client_name",
			},
		}, now),
		Projects: NewTenantStore[entity.Project](db, CollectionConfig{
			Resource: "Project",
			Orderable: map[string]string{
				"naam":       "name",
				"status":     "status",
				"startdatum": "start_date",
				"einddatum":  "end_date",
			},
		}, now),
		Files: NewTenantStore[entity.File](db, CollectionConfig{
			Resource:  "File",
			Orderable: map[string]string{"name": "name", "size": "size"},
		}, now),
		AIFeedback: NewTenantStore[entity.AIFeedback](db, CollectionConfig{
			Resource:  "Feedback",
			Orderable: map[string]string{"beoordeling": "rating"},
		}, now),
	}
}
