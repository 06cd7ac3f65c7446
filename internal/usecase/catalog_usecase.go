package usecase

import (
	"context"
	"time"

	"sincmart/internal/domain/entity"
	"sincmart/internal/domain/repository"
)

type CatalogUseCase struct {
	productRepo repository.ProductRepository
}

func NewCatalogUseCase(productRepo repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo: productRepo,
	}
}

type CreateProductInput struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Category    string                 `json:"category"`
	Price       float64                `json:"price"`
	ImageURL    string                 `json:"imageURL"`
	Attributes  map[string]interface{} `json:"attributes"`
}

type PagedProducts struct {
	Products []*entity.Product `json:"products"`
	Total    int64             `json:"total"`
}

func (uc *CatalogUseCase) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	return uc.productRepo.List(ctx)
}

// ListProductsPaged returns the requested page slice along with the full
// collection count. A page beyond the data yields an empty slice with the
// count intact.
func (uc *CatalogUseCase) ListProductsPaged(ctx context.Context, page, limit int) (*PagedProducts, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 5
	}

	offset := (page - 1) * limit

	products, total, err := uc.productRepo.ListPaged(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	if products == nil {
		products = []*entity.Product{}
	}

	return &PagedProducts{
		Products: products,
		Total:    total,
	}, nil
}

func (uc *CatalogUseCase) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

func (uc *CatalogUseCase) CreateProduct(ctx context.Context, input CreateProductInput) (*entity.Product, error) {
	product := &entity.Product{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		Attributes:  input.Attributes,
		CreatedAt:   time.Now(),
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct removes the matching record. Deleting an absent record is a
// no-op success with a zero deleted count.
func (uc *CatalogUseCase) DeleteProduct(ctx context.Context, id string) (int64, error) {
	return uc.productRepo.Delete(ctx, id)
}
