package handler

import (
	"github.com/labstack/echo/v4"

	"sincmart/internal/usecase"
	"sincmart/pkg/response"
	"sincmart/pkg/utils"
)

type ProductHandler struct {
	catalogUseCase *usecase.CatalogUseCase
}

func NewProductHandler(catalogUseCase *usecase.CatalogUseCase) *ProductHandler {
	return &ProductHandler{
		catalogUseCase: catalogUseCase,
	}
}

type createProductRequest struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Category    string                 `json:"category"`
	Price       float64                `json:"price"`
	ImageURL    string                 `json:"imageURL"`
	Attributes  map[string]interface{} `json:"attributes"`
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.catalogUseCase.ListProducts(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, products)
}

func (h *ProductHandler) ListProductsPaged(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	result, err := h.catalogUseCase.ListProductsPaged(c.Request().Context(), params.Page, params.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	id := c.Param("id")

	product, err := h.catalogUseCase.GetProduct(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.catalogUseCase.CreateProduct(c.Request().Context(), usecase.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Attributes:  req.Attributes,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, echo.Map{
		"insertedId": product.ID,
	})
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id := c.Param("id")

	deleted, err := h.catalogUseCase.DeleteProduct(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, echo.Map{
		"acknowledged": true,
		"deletedCount": deleted,
	})
}
