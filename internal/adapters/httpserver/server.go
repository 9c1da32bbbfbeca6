package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/phenrril/ritushop/internal/adapters/whatsapp"
	"github.com/phenrril/ritushop/internal/auth"
	"github.com/phenrril/ritushop/internal/content"
	"github.com/phenrril/ritushop/internal/domain"
	"github.com/phenrril/ritushop/internal/usecase"
)

type Server struct {
	mux       *http.ServeMux
	catalog   *usecase.CatalogUC
	cart      *usecase.CartUC
	content   *usecase.ContentUC
	rotator   *content.Rotator
	seller    domain.Seller
	authorize auth.Policy
}

func New(catalog *usecase.CatalogUC, cart *usecase.CartUC, cnt *usecase.ContentUC, rot *content.Rotator, seller domain.Seller, authorize auth.Policy) http.Handler {
	s := &Server{
		mux:       http.NewServeMux(),
		catalog:   catalog,
		cart:      cart,
		content:   cnt,
		rotator:   rot,
		seller:    seller,
		authorize: authorize,
	}
	s.routes()
	return Chain(s.mux,
		Gzip,
		RequestID,
		Recovery,
		Logging,
	)
}

func (s *Server) routes() {
	s.mux.HandleFunc("/api/catalog", s.handleCatalog)
	s.mux.HandleFunc("/api/catalog/", s.handleCatalogItem)

	s.mux.HandleFunc("/api/cart", s.handleCart)
	s.mux.HandleFunc("/api/cart/update", s.handleCartUpdate)
	s.mux.HandleFunc("/api/cart/remove", s.handleCartRemove)
	s.mux.HandleFunc("/api/cart/enquiry", s.handleCartEnquiry)

	s.mux.HandleFunc("/api/content/hero", s.handleHero)
	s.mux.HandleFunc("/api/content/hero/", s.handleHeroAction)
	s.mux.HandleFunc("/api/content/stories", s.handleStories)
	s.mux.HandleFunc("/api/content/stories/", s.handleStoriesAction)

	s.mux.HandleFunc("/api/seller", s.handleSeller)
	s.mux.HandleFunc("/api/session", s.handleSession)

	s.mux.HandleFunc("/admin/export/xlsx", s.handleExportXLSX)

	s.mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, map[string]string{"status": "ok"})
	})
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", 405)
		return
	}
	list, err := s.catalog.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("list catalog")
		http.Error(w, "catalog", 500)
		return
	}
	writeJSON(w, 200, map[string]any{"items": list, "total": len(list)})
}

func (s *Server) handleCatalogItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", 405)
		return
	}
	rest := strings.TrimPrefix(r.URL.Path, "/api/catalog/")
	if id, ok := strings.CutSuffix(rest, "/enquiry"); ok {
		s.handleProductEnquiry(w, r, id)
		return
	}
	p, err := s.catalog.GetByProductID(r.Context(), rest)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, 200, p)
}

// handleProductEnquiry builds the single-product deep link. Query params
// other than qty are taken as attribute selections.
func (s *Server) handleProductEnquiry(w http.ResponseWriter, r *http.Request, productID string) {
	p, err := s.catalog.GetByProductID(r.Context(), productID)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	q := r.URL.Query()
	qty := 1
	if n, err := strconv.Atoi(q.Get("qty")); err == nil && n > 0 {
		qty = n
	}
	selected := map[string]string{}
	for k := range q {
		if k == "qty" {
			continue
		}
		selected[k] = q.Get(k)
	}
	if missing := p.MissingSelections(selected); len(missing) > 0 {
		writeJSON(w, 422, map[string]any{"error": "Please select all options", "missing": missing})
		return
	}
	msg := whatsapp.EnquiryMessage(p.Name, qty, selected)
	writeJSON(w, 200, map[string]string{"message": msg, "url": whatsapp.Link(s.seller.Phone, msg)})
}

func (s *Server) handleCart(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		c := s.cart.Load(r)
		writeCartJSON(w, 200, c)
	case http.MethodPost:
		var req struct {
			ProductID          string            `json:"productId"`
			Quantity           int               `json:"quantity"`
			SelectedAttributes map[string]string `json:"selectedAttributes"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "json", 400)
			return
		}
		if req.Quantity < 1 {
			http.Error(w, "quantity", 400)
			return
		}
		p, err := s.catalog.GetByProductID(r.Context(), req.ProductID)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		if missing := p.MissingSelections(req.SelectedAttributes); len(missing) > 0 {
			writeJSON(w, 422, map[string]any{"error": "Please select all options", "missing": missing})
			return
		}
		image := ""
		if len(p.Images) > 0 {
			image = p.Images[0]
		}
		sel := req.SelectedAttributes
		if sel == nil {
			sel = map[string]string{}
		}
		c := s.cart.Add(w, r, domain.CartLine{
			ProductID:          p.ProductID,
			Name:               p.Name,
			Price:              p.Price,
			Quantity:           req.Quantity,
			Image:              image,
			SelectedAttributes: sel,
		})
		writeCartJSON(w, 201, c)
	default:
		http.Error(w, "method", 405)
	}
}

func (s *Server) handleCartUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	var req struct {
		ProductID string `json:"productId"`
		Op        string `json:"op"`
		Qty       int    `json:"qty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "json", 400)
		return
	}
	c := s.cart.Load(r)
	line := c.Find(req.ProductID)
	if line == nil {
		// absent productId is a no-op, no line is created
		writeCartJSON(w, 200, c)
		return
	}
	q := line.Quantity
	switch req.Op {
	case "inc":
		q++
	case "dec":
		// the decrement control clamps at 1; the store itself does not
		if q > 1 {
			q--
		}
	case "set":
		if req.Qty < 1 {
			http.Error(w, "qty", 400)
			return
		}
		q = req.Qty
	default:
		http.Error(w, "op", 400)
		return
	}
	c = s.cart.UpdateQuantity(w, r, req.ProductID, q)
	writeCartJSON(w, 200, c)
}

func (s *Server) handleCartRemove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	var req struct {
		ProductID string `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "json", 400)
		return
	}
	c := s.cart.Remove(w, r, req.ProductID)
	writeCartJSON(w, 200, c)
}

func (s *Server) handleCartEnquiry(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", 405)
		return
	}
	c := s.cart.Load(r)
	if len(c.Lines) == 0 {
		http.Error(w, "cart empty", 400)
		return
	}
	msg := whatsapp.OrderMessage(c)
	writeJSON(w, 200, map[string]string{"message": msg, "url": whatsapp.Link(s.seller.Phone, msg)})
}

func (s *Server) handleSeller(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", 405)
		return
	}
	writeJSON(w, 200, s.seller)
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, 200, s.content.User(w, r))
	case http.MethodPut:
		var u domain.UserRecord
		if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
			http.Error(w, "json", 400)
			return
		}
		if err := s.content.SetUser(w, u); err != nil {
			http.Error(w, "session", 500)
			return
		}
		writeJSON(w, 200, u)
	case http.MethodDelete:
		s.content.ClearUser(w)
		w.WriteHeader(204)
	default:
		http.Error(w, "method", 405)
	}
}

func writeCartJSON(w http.ResponseWriter, code int, c domain.Cart) {
	writeJSON(w, code, map[string]any{"lines": c.Lines, "total": c.Total(), "count": c.Count()})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
