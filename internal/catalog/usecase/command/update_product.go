package command

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/pkg/apperror"
	"github.com/tair/storefront/pkg/logger"
)

// UpdateProductCommand represents the command to update a product
type UpdateProductCommand struct {
	ID          uint
	Name        string
	Description string
	Price       decimal.Decimal
	SalePrice   *decimal.Decimal
	Stock       *int
	ImageURL    string
	Image       *domain.ImageUpload
}

// UpdateProductHandler handles product update command
type UpdateProductHandler struct {
	repo   domain.ProductRepository
	images domain.ImageStore
	cache  domain.ProductCache
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(repo domain.ProductRepository, images domain.ImageStore, cache domain.ProductCache) *UpdateProductHandler {
	return &UpdateProductHandler{repo: repo, images: images, cache: cache}
}

// Handle executes the update product command
func (h *UpdateProductHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*domain.Product, error) {
	if cmd.ID == 0 {
		return nil, apperror.InvalidValue(domain.MsgInvalidProductID)
	}

	name, description, err := requireText(cmd.Name, cmd.Description)
	if err != nil {
		return nil, err
	}

	// A negative sale price on update takes the product off sale
	salePrice := cmd.SalePrice
	if salePrice != nil && salePrice.IsNegative() {
		salePrice = nil
	}
	if salePrice != nil && cmd.Price.LessThan(*salePrice) {
		return nil, apperror.InvalidValue(domain.MsgSalePriceOverPrice)
	}

	if cmd.Price.IsNegative() {
		return nil, apperror.InvalidValue(domain.MsgInvalidPrice)
	}

	imageURL := strings.TrimSpace(cmd.ImageURL)
	if cmd.Image != nil && h.images != nil {
		url, err := h.images.Upload(ctx, domain.ImageKey(cmd.ID, cmd.Image.Filename), cmd.Image.ContentType, cmd.Image.Body, cmd.Image.Size)
		if err != nil {
			logger.Error(ctx).Err(err).Uint("product_id", cmd.ID).Msg("Product image upload failed")
		} else {
			imageURL = url
		}
	}

	product, err := h.repo.UpdateLocked(ctx, cmd.ID, func(p *domain.Product) error {
		p.Name = name
		p.Description = description
		p.Price = cmd.Price
		p.SalePrice = nullDecimal(salePrice)
		p.Stock = normalizeStock(cmd.Stock)
		if imageURL != "" {
			p.ImageURL = imageURL
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if h.cache != nil {
		if err := h.cache.Invalidate(ctx, product.ID); err != nil {
			logger.Warn(ctx).Err(err).Uint("product_id", product.ID).Msg("Failed to invalidate product cache")
		}
	}

	logger.Info(ctx).
		Uint("product_id", product.ID).
		Uint("version", product.Version).
		Msg("Product updated")

	return product, nil
}
