package domain

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID             uuid.UUID           `gorm:"type:uuid;primaryKey" json:"-"`
	ProductID      string              `gorm:"uniqueIndex;size:60" json:"productId"`
	Name           string              `gorm:"size:180" json:"name"`
	Price          float64             `gorm:"type:decimal(12,2)" json:"price"`
	Images         []string            `gorm:"type:jsonb;serializer:json" json:"images"`
	Inventory      string              `gorm:"size:40" json:"inventory"`
	Description    string              `gorm:"type:text" json:"description"`
	Specifications []string            `gorm:"type:jsonb;serializer:json" json:"specifications"`
	Attributes     map[string][]string `gorm:"type:jsonb;serializer:json" json:"attributes"`
	Videos         []string            `gorm:"type:jsonb;serializer:json" json:"videos"`
	CreatedAt      time.Time           `json:"-"`
	UpdatedAt      time.Time           `json:"-"`
}

// MissingSelections lists the declared attributes that have no chosen value.
// Add to cart must abort while this is non-empty.
func (p *Product) MissingSelections(selected map[string]string) []string {
	missing := []string{}
	for name := range p.Attributes {
		if selected[name] == "" {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}

type ProductRepo interface {
	Save(ctx context.Context, p *Product) error
	FindByProductID(ctx context.Context, productID string) (*Product, error)
	List(ctx context.Context) ([]Product, error)
	Count(ctx context.Context) (int64, error)
}
