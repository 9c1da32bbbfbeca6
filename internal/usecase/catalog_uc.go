package usecase

import (
	"context"
	"errors"

	"github.com/phenrril/ritushop/internal/domain"
)

type CatalogUC struct {
	Products domain.ProductRepo
}

func (uc *CatalogUC) List(ctx context.Context) ([]domain.Product, error) {
	return uc.Products.List(ctx)
}

func (uc *CatalogUC) GetByProductID(ctx context.Context, productID string) (*domain.Product, error) {
	if productID == "" {
		return nil, errors.New("empty product id")
	}
	return uc.Products.FindByProductID(ctx, productID)
}
