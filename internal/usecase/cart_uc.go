package usecase

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/phenrril/ritushop/internal/domain"
)

// KeyCart is the client-store key the cart collection is persisted under.
const KeyCart = "cart"

// CartUC persists the whole cart collection after every mutation. Each
// operation is a synchronous read-modify-write of the full collection.
type CartUC struct {
	Store domain.ClientStore
}

// Load reads the visitor's cart; an absent or malformed blob is an empty
// cart.
func (uc *CartUC) Load(r *http.Request) domain.Cart {
	var c domain.Cart
	if !uc.Store.Load(r, KeyCart, &c) {
		return domain.Cart{}
	}
	return c
}

// Add appends the line and persists. Duplicate productIds stay as separate
// lines.
func (uc *CartUC) Add(w http.ResponseWriter, r *http.Request, line domain.CartLine) domain.Cart {
	c := uc.Load(r)
	c.Add(line)
	uc.persist(w, c)
	return c
}

// UpdateQuantity sets the quantity of the matching line and persists; an
// absent productId leaves the cart as it was.
func (uc *CartUC) UpdateQuantity(w http.ResponseWriter, r *http.Request, productID string, quantity int) domain.Cart {
	c := uc.Load(r)
	c.UpdateQuantity(productID, quantity)
	uc.persist(w, c)
	return c
}

func (uc *CartUC) Remove(w http.ResponseWriter, r *http.Request, productID string) domain.Cart {
	c := uc.Load(r)
	c.Remove(productID)
	uc.persist(w, c)
	return c
}

func (uc *CartUC) Clear(w http.ResponseWriter) {
	uc.Store.Remove(w, KeyCart)
}

func (uc *CartUC) persist(w http.ResponseWriter, c domain.Cart) {
	if err := uc.Store.Save(w, KeyCart, c); err != nil {
		log.Error().Err(err).Msg("persist cart")
	}
}
