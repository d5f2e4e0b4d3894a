package services

import (
	"context"
	"strings"

	"StorefrontAPI/external/shopapi"
	"StorefrontAPI/internal/model"
)

type ProductAPI interface {
	ListProducts(ctx context.Context, token string) ([]model.Product, error)
	CreateProduct(ctx context.Context, token string, in shopapi.ProductInput) (model.Product, error)
	UpdateProduct(ctx context.Context, token, id string, in shopapi.ProductInput) (model.Product, error)
	DeleteProduct(ctx context.Context, token, id string) error
}

// ProductService proxies catalog CRUD to the backend with form validation in
// front, so invalid submissions never issue a request.
type ProductService struct {
	API ProductAPI
}

func NewProductService(api ProductAPI) *ProductService {
	return &ProductService{API: api}
}

func validateProduct(in shopapi.ProductInput) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = "name is required"
	}
	if strings.TrimSpace(in.Description) == "" {
		errs["description"] = "description is required"
	}
	if in.Price <= 0 {
		errs["price"] = "price must be greater than zero"
	}
	if strings.TrimSpace(in.Category) == "" {
		errs["category"] = "category is required"
	}
	if in.Stock < 0 {
		errs["stock"] = "stock cannot be negative"
	}
	return errs
}

func (s *ProductService) List(ctx context.Context, sess *model.Session) ([]model.Product, error) {
	return s.API.ListProducts(ctx, sess.Token)
}

func (s *ProductService) Create(ctx context.Context, sess *model.Session, in shopapi.ProductInput) (model.Product, error) {
	if errs := validateProduct(in); len(errs) > 0 {
		return model.Product{}, errs
	}
	return s.API.CreateProduct(ctx, sess.Token, in)
}

func (s *ProductService) Update(ctx context.Context, sess *model.Session, id string, in shopapi.ProductInput) (model.Product, error) {
	if errs := validateProduct(in); len(errs) > 0 {
		return model.Product{}, errs
	}
	return s.API.UpdateProduct(ctx, sess.Token, id, in)
}

func (s *ProductService) Delete(ctx context.Context, sess *model.Session, id string) error {
	return s.API.DeleteProduct(ctx, sess.Token, id)
}
