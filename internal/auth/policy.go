// Package auth decides who may edit storefront content. The decision is an
// explicit policy over the presented identity, decoupled from wherever that
// identity happens to be stored.
package auth

import "github.com/phenrril/ritushop/internal/domain"

type Policy func(domain.UserRecord) bool

// SellerOnly authorizes exactly the configured seller identity.
func SellerOnly(sellerID string) Policy {
	return func(u domain.UserRecord) bool {
		return sellerID != "" && u.SellerID == sellerID
	}
}
