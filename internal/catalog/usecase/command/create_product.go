package command

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/pkg/apperror"
	"github.com/tair/storefront/pkg/logger"
)

// CreateProductCommand represents the command to create a product
type CreateProductCommand struct {
	Name        string
	Description string
	Price       decimal.Decimal
	SalePrice   *decimal.Decimal
	Stock       *int
	ImageURL    string
	Image       *domain.ImageUpload
}

// CreateProductHandler handles product creation command
type CreateProductHandler struct {
	repo            domain.ProductRepository
	images          domain.ImageStore
	defaultImageURL string
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(repo domain.ProductRepository, images domain.ImageStore, defaultImageURL string) *CreateProductHandler {
	return &CreateProductHandler{repo: repo, images: images, defaultImageURL: defaultImageURL}
}

// Handle executes the create product command
func (h *CreateProductHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*domain.Product, error) {
	name, description, err := requireText(cmd.Name, cmd.Description)
	if err != nil {
		return nil, err
	}

	if cmd.SalePrice != nil {
		if cmd.SalePrice.IsNegative() {
			return nil, apperror.InvalidValue(domain.MsgNegativeSalePrice)
		}
		if cmd.SalePrice.GreaterThan(cmd.Price) {
			return nil, apperror.InvalidValue(domain.MsgSalePriceOverPrice)
		}
	}

	if cmd.Price.IsNegative() {
		return nil, apperror.InvalidValue(domain.MsgInvalidPrice)
	}

	product := &domain.Product{
		Name:        name,
		Description: description,
		Price:       cmd.Price,
		SalePrice:   nullDecimal(cmd.SalePrice),
		Stock:       normalizeStock(cmd.Stock),
		ImageURL:    strings.TrimSpace(cmd.ImageURL),
	}
	if product.ImageURL == "" {
		product.ImageURL = h.defaultImageURL
	}

	if err := h.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	// The object key needs the id, so the image is attached after insert
	if cmd.Image != nil && h.images != nil {
		url, err := h.images.Upload(ctx, domain.ImageKey(product.ID, cmd.Image.Filename), cmd.Image.ContentType, cmd.Image.Body, cmd.Image.Size)
		if err != nil {
			logger.Error(ctx).Err(err).Uint("product_id", product.ID).Msg("Product image upload failed")
		} else {
			updated, err := h.repo.UpdateLocked(ctx, product.ID, func(p *domain.Product) error {
				p.ImageURL = url
				return nil
			})
			if err != nil {
				return nil, err
			}
			product = updated
		}
	}

	logger.Info(ctx).
		Uint("product_id", product.ID).
		Str("name", product.Name).
		Msg("Product created")

	return product, nil
}

func requireText(name, description string) (string, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", apperror.InvalidValue(domain.MsgNoName)
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return "", "", apperror.InvalidValue(domain.MsgNoDescription)
	}
	return name, description, nil
}

// normalizeStock treats an absent or negative stock as unset
func normalizeStock(stock *int) *int {
	if stock == nil || *stock < 0 {
		return nil
	}
	v := *stock
	return &v
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}
