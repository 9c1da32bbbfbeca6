package domain

// Seller is the single business profile shipped with the fixtures,
// read-only at runtime.
type Seller struct {
	SiteID       string `json:"siteId"`
	SellerID     string `json:"sellerId"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	WorkAddress  string `json:"workAddress"`
	BusinessName string `json:"businessName"`
	BusinessType string `json:"businessType"`
}

// UserRecord is the locally stored identity, persisted under the userData
// key. Editing rights derive from it through an explicit policy, never from
// the storage lookup itself.
type UserRecord struct {
	SellerID string `json:"sellerId"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}
