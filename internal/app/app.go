package app

import (
	"context"
	"net/http"
	"os"

	"gorm.io/gorm"

	"github.com/phenrril/ritushop/internal/adapters/clientstore"
	"github.com/phenrril/ritushop/internal/adapters/httpserver"
	"github.com/phenrril/ritushop/internal/adapters/repo/postgres"
	"github.com/phenrril/ritushop/internal/auth"
	"github.com/phenrril/ritushop/internal/content"
	"github.com/phenrril/ritushop/internal/domain"
	"github.com/phenrril/ritushop/internal/fixtures"
	"github.com/phenrril/ritushop/internal/usecase"
)

type App struct {
	DB        *gorm.DB
	Catalog   *usecase.CatalogUC
	Cart      *usecase.CartUC
	Content   *usecase.ContentUC
	Store     *clientstore.Store
	Seller    domain.Seller
	Authorize auth.Policy
	Rotator   *content.Rotator
}

func NewApp(db *gorm.DB) (*App, error) {
	store := clientstore.New(os.Getenv("SESSION_KEY"))
	seller := fixtures.Seller()
	authorize := auth.SellerOnly(seller.SellerID)

	heroDefault := fixtures.Hero()

	app := &App{
		DB:        db,
		Store:     store,
		Seller:    seller,
		Authorize: authorize,
		Catalog:   &usecase.CatalogUC{Products: postgres.NewProductRepo(db)},
		Cart:      &usecase.CartUC{Store: store},
		Content: &usecase.ContentUC{
			Store:          store,
			Authorize:      authorize,
			HeroDefault:    heroDefault,
			StoriesDefault: fixtures.Stories(),
			DefaultUser:    fixtures.DefaultUser(),
		},
		Rotator: content.NewRotator(len(heroDefault.Slides), content.DefaultRotateInterval),
	}
	return app, nil
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(a.Catalog, a.Cart, a.Content, a.Rotator, a.Seller, a.Authorize)
}

// MigrateAndSeed creates the catalog table and upserts the fixture
// products. The catalog is read-only afterwards.
func (a *App) MigrateAndSeed() error {
	if err := a.DB.AutoMigrate(&domain.Product{}); err != nil {
		return err
	}
	ctx := context.Background()
	repo := postgres.NewProductRepo(a.DB)
	for _, p := range fixtures.Products() {
		existing, err := repo.FindByProductID(ctx, p.ProductID)
		if err == nil {
			p.ID = existing.ID
		} else if err != domain.ErrNotFound {
			return err
		}
		if err := repo.Save(ctx, &p); err != nil {
			return err
		}
	}
	return nil
}

// Start arms the hero rotation; Close tears it down.
func (a *App) Start() {
	a.Rotator.Start()
}

func (a *App) Close() {
	a.Rotator.Stop()
}
