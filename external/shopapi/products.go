package shopapi

import (
	"context"
	"net/http"

	"StorefrontAPI/internal/model"
)

// productPayload is the raw catalog entry as the backend sends it. Optional
// fields are normalized into model.Product here, in one place, so views
// never see missing data.
type productPayload struct {
	ID          string  `json:"id"`
	MongoID     string  `json:"_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
	Image       string  `json:"image"`
}

func (p productPayload) normalize() model.Product {
	prod := model.Product{
		Name:        p.Name,
		Description: p.Description,
		Price:       model.CentsFromFloat(p.Price),
		Category:    p.Category,
		Image:       p.Image,
	}
	prod.ID = p.ID
	if prod.ID == "" {
		prod.ID = p.MongoID
	}
	if prod.Name == "" {
		prod.Name = "Untitled product"
	}
	if prod.Description == "" {
		prod.Description = "No description available."
	}
	if prod.Category == "" {
		prod.Category = "General"
	}
	if p.Stock > 0 {
		prod.Stock = p.Stock
	}
	return prod
}

// ProductInput is the create/update payload in the backend's field names.
type ProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
	Image       string  `json:"image"`
}

func (c *Client) ListProducts(ctx context.Context, token string) ([]model.Product, error) {
	var payload []productPayload
	if err := c.do(ctx, token, http.MethodGet, "/products", nil, &payload); err != nil {
		return nil, err
	}
	products := make([]model.Product, 0, len(payload))
	for _, p := range payload {
		products = append(products, p.normalize())
	}
	return products, nil
}

func (c *Client) CreateProduct(ctx context.Context, token string, in ProductInput) (model.Product, error) {
	var payload productPayload
	if err := c.do(ctx, token, http.MethodPost, "/products", in, &payload); err != nil {
		return model.Product{}, err
	}
	return payload.normalize(), nil
}

func (c *Client) UpdateProduct(ctx context.Context, token, id string, in ProductInput) (model.Product, error) {
	// update responses wrap the entity, unlike create
	var out struct {
		Product productPayload `json:"product"`
	}
	if err := c.do(ctx, token, http.MethodPut, "/products/"+id, in, &out); err != nil {
		return model.Product{}, err
	}
	return out.Product.normalize(), nil
}

func (c *Client) DeleteProduct(ctx context.Context, token, id string) error {
	return c.do(ctx, token, http.MethodDelete, "/products/"+id, nil, nil)
}
