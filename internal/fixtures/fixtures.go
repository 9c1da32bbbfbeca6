// Package fixtures holds the seed data shipped with the application. It is
// the default state whenever no persisted override exists and the wholesale
// replacement whenever a persisted blob turns out malformed.
package fixtures

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/phenrril/ritushop/internal/domain"
)

//go:embed products.json hero.json stories.json seller.json
var fs embed.FS

// Products returns the fixture catalog in file order.
func Products() []domain.Product {
	var data struct {
		Products []domain.Product `json:"products"`
	}
	decode("products.json", &data)
	return data.Products
}

func Hero() domain.HeroContent {
	var h domain.HeroContent
	decode("hero.json", &h)
	return h
}

func Stories() domain.StoriesContent {
	var s domain.StoriesContent
	decode("stories.json", &s)
	return s
}

func Seller() domain.Seller {
	var s domain.Seller
	decode("seller.json", &s)
	return s
}

// DefaultUser is the identity seeded into the client store on first visit.
func DefaultUser() domain.UserRecord {
	s := Seller()
	return domain.UserRecord{SellerID: s.SellerID, Name: s.Name, Email: s.Email}
}

// A fixture that does not decode is a build defect, not a runtime condition.
func decode(name string, v any) {
	b, err := fs.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("fixtures: read %s: %v", name, err))
	}
	if err := json.Unmarshal(b, v); err != nil {
		panic(fmt.Sprintf("fixtures: decode %s: %v", name, err))
	}
}
