package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phenrril/ritushop/internal/adapters/clientstore"
	"github.com/phenrril/ritushop/internal/auth"
	"github.com/phenrril/ritushop/internal/content"
	"github.com/phenrril/ritushop/internal/domain"
	"github.com/phenrril/ritushop/internal/usecase"
)

type stubProducts struct {
	items []domain.Product
}

func (s *stubProducts) Save(context.Context, *domain.Product) error { return nil }

func (s *stubProducts) FindByProductID(_ context.Context, productID string) (*domain.Product, error) {
	for i := range s.items {
		if s.items[i].ProductID == productID {
			return &s.items[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubProducts) List(context.Context) ([]domain.Product, error) {
	return s.items, nil
}

func (s *stubProducts) Count(context.Context) (int64, error) {
	return int64(len(s.items)), nil
}

// client replays the cookies a handler set, the way a browser carries state
// from one request to the next.
type client struct {
	t       *testing.T
	h       http.Handler
	rot     *content.Rotator
	cookies map[string]*http.Cookie
}

func (c *client) do(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(c.t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	c.h.ServeHTTP(rec, req)
	for _, ck := range rec.Result().Cookies() {
		if ck.MaxAge < 0 {
			delete(c.cookies, ck.Name)
		} else {
			c.cookies[ck.Name] = ck
		}
	}
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func newTestClient(t *testing.T) *client {
	return newTestClientWithRotation(t, time.Hour)
}

func newTestClientWithRotation(t *testing.T, interval time.Duration) *client {
	t.Helper()
	repo := &stubProducts{items: []domain.Product{
		{
			ProductID: "prod_001",
			Name:      "Rose Lipstick",
			Price:     299,
			Images:    []string{"/img/lipstick.jpg"},
			Attributes: map[string][]string{
				"Color": {"Red", "Nude"},
				"Size":  {"Small", "Large"},
			},
		},
		{ProductID: "prod_002", Name: "Face Serum", Price: 549.5},
	}}

	store := clientstore.New("test-secret")
	seller := domain.Seller{SellerID: "ritu_beauty_001", Name: "Ritu", Phone: "+91 98765 43210"}
	authorize := auth.SellerOnly(seller.SellerID)
	cnt := &usecase.ContentUC{
		Store:     store,
		Authorize: authorize,
		HeroDefault: domain.HeroContent{Slides: []domain.Slide{
			{ID: "slide_1", Image: "/img/1.jpg", Tagline: "One", TextColor: domain.TextColorWhite},
			{ID: "slide_2", Image: "/img/2.jpg", Tagline: "Two", TextColor: domain.TextColorPurple},
		}},
		StoriesDefault: domain.StoriesContent{Visible: true, Title: "Our Story"},
		DefaultUser:    domain.UserRecord{SellerID: seller.SellerID, Name: seller.Name},
	}
	rot := content.NewRotator(2, interval)
	t.Cleanup(rot.Stop)

	h := New(
		&usecase.CatalogUC{Products: repo},
		&usecase.CartUC{Store: store},
		cnt,
		rot,
		seller,
		authorize,
	)
	return &client{t: t, h: h, rot: rot, cookies: map[string]*http.Cookie{}}
}

func TestCatalogList(t *testing.T) {
	c := newTestClient(t)

	rec := c.do(http.MethodGet, "/api/catalog", nil)
	require.Equal(t, 200, rec.Code)

	var resp struct {
		Items []domain.Product `json:"items"`
		Total int              `json:"total"`
	}
	decodeBody(t, rec, &resp)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, "prod_001", resp.Items[0].ProductID)
}

func TestCatalogItem(t *testing.T) {
	c := newTestClient(t)

	rec := c.do(http.MethodGet, "/api/catalog/prod_001", nil)
	require.Equal(t, 200, rec.Code)

	var p domain.Product
	decodeBody(t, rec, &p)
	assert.Equal(t, "Rose Lipstick", p.Name)

	rec = c.do(http.MethodGet, "/api/catalog/prod_999", nil)
	assert.Equal(t, 404, rec.Code)
}

func TestCartAddRejectsMissingSelections(t *testing.T) {
	c := newTestClient(t)

	rec := c.do(http.MethodPost, "/api/cart", map[string]any{
		"productId": "prod_001", "quantity": 1,
		"selectedAttributes": map[string]string{"Color": "Red"},
	})
	require.Equal(t, 422, rec.Code)

	var resp struct {
		Error   string   `json:"error"`
		Missing []string `json:"missing"`
	}
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Please select all options", resp.Error)
	assert.Equal(t, []string{"Size"}, resp.Missing)

	// the rejected add must not have written a cart
	_, ok := c.cookies[usecase.KeyCart]
	assert.False(t, ok)
	rec = c.do(http.MethodGet, "/api/cart", nil)
	var cart struct {
		Count int `json:"count"`
	}
	decodeBody(t, rec, &cart)
	assert.Equal(t, 0, cart.Count)
}

func TestCartAddAndDuplicateLines(t *testing.T) {
	c := newTestClient(t)

	rec := c.do(http.MethodPost, "/api/cart", map[string]any{
		"productId": "prod_002", "quantity": 2,
	})
	require.Equal(t, 201, rec.Code)

	rec = c.do(http.MethodPost, "/api/cart", map[string]any{
		"productId": "prod_002", "quantity": 1,
	})
	require.Equal(t, 201, rec.Code)

	var resp struct {
		Lines []domain.CartLine `json:"lines"`
		Total float64           `json:"total"`
		Count int               `json:"count"`
	}
	decodeBody(t, rec, &resp)
	assert.Len(t, resp.Lines, 2)
	assert.Equal(t, 3, resp.Count)
	assert.InDelta(t, 1648.5, resp.Total, 0.001)
}

func TestCartAddQuantityValidation(t *testing.T) {
	c := newTestClient(t)

	rec := c.do(http.MethodPost, "/api/cart", map[string]any{
		"productId": "prod_002", "quantity": 0,
	})
	assert.Equal(t, 400, rec.Code)

	rec = c.do(http.MethodPost, "/api/cart", map[string]any{
		"productId": "prod_999", "quantity": 1,
	})
	assert.Equal(t, 404, rec.Code)
}

func TestCartUpdateDecClampsAtOne(t *testing.T) {
	c := newTestClient(t)
	c.do(http.MethodPost, "/api/cart", map[string]any{"productId": "prod_002", "quantity": 1})

	rec := c.do(http.MethodPost, "/api/cart/update", map[string]any{"productId": "prod_002", "op": "dec"})
	require.Equal(t, 200, rec.Code)

	var resp struct {
		Lines []domain.CartLine `json:"lines"`
	}
	decodeBody(t, rec, &resp)
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, 1, resp.Lines[0].Quantity)
}

func TestCartUpdateAbsentIDIsNoOp(t *testing.T) {
	c := newTestClient(t)
	c.do(http.MethodPost, "/api/cart", map[string]any{"productId": "prod_002", "quantity": 2})

	rec := c.do(http.MethodPost, "/api/cart/update", map[string]any{"productId": "prod_999", "op": "inc"})
	require.Equal(t, 200, rec.Code)

	var resp struct {
		Lines []domain.CartLine `json:"lines"`
	}
	decodeBody(t, rec, &resp)
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, "prod_002", resp.Lines[0].ProductID)
	assert.Equal(t, 2, resp.Lines[0].Quantity)
}

func TestCartRemoveEndpoint(t *testing.T) {
	c := newTestClient(t)
	c.do(http.MethodPost, "/api/cart", map[string]any{"productId": "prod_002", "quantity": 2})

	rec := c.do(http.MethodPost, "/api/cart/remove", map[string]any{"productId": "prod_002"})
	require.Equal(t, 200, rec.Code)

	var resp struct {
		Count int `json:"count"`
	}
	decodeBody(t, rec, &resp)
	assert.Equal(t, 0, resp.Count)
}

func TestCartEnquiry(t *testing.T) {
	c := newTestClient(t)

	rec := c.do(http.MethodGet, "/api/cart/enquiry", nil)
	assert.Equal(t, 400, rec.Code)

	c.do(http.MethodPost, "/api/cart", map[string]any{"productId": "prod_002", "quantity": 2})
	rec = c.do(http.MethodGet, "/api/cart/enquiry", nil)
	require.Equal(t, 200, rec.Code)

	var resp struct {
		Message string `json:"message"`
		URL     string `json:"url"`
	}
	decodeBody(t, rec, &resp)
	assert.Contains(t, resp.Message, "Face Serum (2x)")
	assert.Contains(t, resp.Message, "Total: ₹1099")
	assert.Contains(t, resp.URL, "https://wa.me/919876543210?text=")
}

func TestProductEnquiry(t *testing.T) {
	c := newTestClient(t)

	rec := c.do(http.MethodGet, "/api/catalog/prod_001/enquiry?qty=2&Color=Red&Size=Small", nil)
	require.Equal(t, 200, rec.Code)

	var resp struct {
		Message string `json:"message"`
		URL     string `json:"url"`
	}
	decodeBody(t, rec, &resp)
	assert.Contains(t, resp.Message, "Product: Rose Lipstick")
	assert.Contains(t, resp.Message, "Quantity: 2")
	assert.Contains(t, resp.Message, "Color: Red")
	assert.Contains(t, resp.URL, "https://wa.me/919876543210?text=")

	rec = c.do(http.MethodGet, "/api/catalog/prod_001/enquiry?Color=Red", nil)
	assert.Equal(t, 422, rec.Code)
}

func TestHeroEditForbiddenForVisitor(t *testing.T) {
	c := newTestClient(t)

	rec := c.do(http.MethodPut, "/api/session", domain.UserRecord{SellerID: "visitor"})
	require.Equal(t, 200, rec.Code)

	rec = c.do(http.MethodPost, "/api/content/hero/edit", nil)
	assert.Equal(t, 403, rec.Code)
}

func TestHeroEditLifecycle(t *testing.T) {
	c := newTestClient(t)

	rec := c.do(http.MethodPost, "/api/content/hero/edit", nil)
	require.Equal(t, 200, rec.Code)

	rec = c.do(http.MethodGet, "/api/content/hero", nil)
	var state struct {
		Hero    domain.HeroContent `json:"hero"`
		Editing bool               `json:"editing"`
	}
	decodeBody(t, rec, &state)
	assert.True(t, state.Editing)

	rec = c.do(http.MethodPost, "/api/content/hero/slide", map[string]any{
		"index": 0, "field": "tagline", "value": "Changed",
	})
	require.Equal(t, 200, rec.Code)

	// the live section still shows the old tagline until save
	rec = c.do(http.MethodGet, "/api/content/hero", nil)
	decodeBody(t, rec, &state)
	assert.Equal(t, "One", state.Hero.Slides[0].Tagline)

	rec = c.do(http.MethodPost, "/api/content/hero/save", nil)
	require.Equal(t, 200, rec.Code)

	rec = c.do(http.MethodGet, "/api/content/hero", nil)
	decodeBody(t, rec, &state)
	assert.False(t, state.Editing)
	assert.Equal(t, "Changed", state.Hero.Slides[0].Tagline)
}

func TestHeroEditSuspendsRotation(t *testing.T) {
	c := newTestClientWithRotation(t, 20*time.Millisecond)
	ch := make(chan int, 16)
	c.rot.OnAdvance(func(i int) { ch <- i })
	c.rot.Start()

	rec := c.do(http.MethodPost, "/api/content/hero/edit", nil)
	require.Equal(t, 200, rec.Code)

	// drain whatever fired before the suspend took hold
	deadline := time.After(60 * time.Millisecond)
drain:
	for {
		select {
		case <-ch:
		case <-deadline:
			break drain
		}
	}

	select {
	case idx := <-ch:
		t.Fatalf("rotated to %d while editing", idx)
	case <-time.After(80 * time.Millisecond):
	}

	// save re-arms the schedule
	rec = c.do(http.MethodPost, "/api/content/hero/save", nil)
	require.Equal(t, 200, rec.Code)

	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("rotation did not resume after save")
	}
}

func TestHeroSlideAddValidation(t *testing.T) {
	c := newTestClient(t)
	c.do(http.MethodPost, "/api/content/hero/edit", nil)

	rec := c.do(http.MethodPost, "/api/content/hero/slide/add", map[string]any{
		"image": "", "tagline": "Three",
	})
	assert.Equal(t, 400, rec.Code)

	rec = c.do(http.MethodPost, "/api/content/hero/slide/add", map[string]any{
		"image": "/img/3.jpg", "tagline": "Three", "textColor": "purple",
	})
	require.Equal(t, 200, rec.Code)

	var resp struct {
		Draft domain.HeroContent `json:"draft"`
	}
	decodeBody(t, rec, &resp)
	assert.Len(t, resp.Draft.Slides, 3)
}

func TestHeroNavigation(t *testing.T) {
	c := newTestClient(t)

	rec := c.do(http.MethodPost, "/api/content/hero/next", nil)
	require.Equal(t, 200, rec.Code)

	var resp struct {
		Current int `json:"current"`
	}
	decodeBody(t, rec, &resp)
	assert.Equal(t, 1, resp.Current)

	rec = c.do(http.MethodPost, "/api/content/hero/select", map[string]any{"index": 0})
	decodeBody(t, rec, &resp)
	assert.Equal(t, 0, resp.Current)
}

func TestStoriesActionsNeedDraft(t *testing.T) {
	c := newTestClient(t)

	rec := c.do(http.MethodPost, "/api/content/stories/visibility", nil)
	assert.Equal(t, 409, rec.Code)

	rec = c.do(http.MethodPost, "/api/content/stories/save", nil)
	assert.Equal(t, 409, rec.Code)
}

func TestStoriesVisibilityToggle(t *testing.T) {
	c := newTestClient(t)
	c.do(http.MethodPost, "/api/content/stories/edit", nil)

	rec := c.do(http.MethodPost, "/api/content/stories/visibility", nil)
	require.Equal(t, 200, rec.Code)
	rec = c.do(http.MethodPost, "/api/content/stories/save", nil)
	require.Equal(t, 200, rec.Code)

	rec = c.do(http.MethodGet, "/api/content/stories", nil)
	var state struct {
		Stories domain.StoriesContent `json:"stories"`
		Editing bool                  `json:"editing"`
	}
	decodeBody(t, rec, &state)
	assert.False(t, state.Stories.Visible)
	assert.False(t, state.Editing)
}

func TestSessionSeedsDefaultUser(t *testing.T) {
	c := newTestClient(t)

	rec := c.do(http.MethodGet, "/api/session", nil)
	require.Equal(t, 200, rec.Code)

	var u domain.UserRecord
	decodeBody(t, rec, &u)
	assert.Equal(t, "ritu_beauty_001", u.SellerID)
}

func TestSellerEndpoint(t *testing.T) {
	c := newTestClient(t)

	rec := c.do(http.MethodGet, "/api/seller", nil)
	require.Equal(t, 200, rec.Code)

	var s domain.Seller
	decodeBody(t, rec, &s)
	assert.Equal(t, "+91 98765 43210", s.Phone)
}

func TestExportRequiresSeller(t *testing.T) {
	c := newTestClient(t)

	c.do(http.MethodPut, "/api/session", domain.UserRecord{SellerID: "visitor"})
	rec := c.do(http.MethodGet, "/admin/export/xlsx", nil)
	assert.Equal(t, 403, rec.Code)
}

func TestExportReturnsSpreadsheet(t *testing.T) {
	c := newTestClient(t)

	rec := c.do(http.MethodGet, "/admin/export/xlsx", nil)
	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "catalog.xlsx")
	assert.NotZero(t, rec.Body.Len())
}

func TestHealthz(t *testing.T) {
	c := newTestClient(t)
	rec := c.do(http.MethodGet, "/healthz", nil)
	assert.Equal(t, 200, rec.Code)
}
