package commands

import (
	"context"
	"log/slog"

	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/core/domain/model/product"
)

// CreateProductCommandHandler turns a CreateProductCommand into a validated
// Product. The price is validated before the product itself, so a record
// with both a bad price and a bad name reports the price.
type CreateProductCommandHandler struct {
	logger *slog.Logger
}

// NewCreateProductCommandHandler creates a handler that logs every outcome to logger.
func NewCreateProductCommandHandler(logger *slog.Logger) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		logger: logger,
	}
}

// Handle builds the product described by cmd.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	price, err := kernel.MoneyJPYFromNumber(cmd.Price())
	if err != nil {
		h.logger.WarnContext(ctx, "product price rejected",
			slog.String("operation", "CreateProduct"),
			slog.String("product_id", cmd.ProductID()),
			slog.Any("error", err),
		)
		return nil, err
	}

	p, err := product.NewProduct(product.Props{
		ProductID: cmd.ProductID(),
		Name:      cmd.Name(),
		Price:     price,
		Status:    product.Status(cmd.Status()),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "product rejected",
			slog.String("operation", "CreateProduct"),
			slog.String("product_id", cmd.ProductID()),
			slog.Any("error", err),
		)
		return nil, err
	}

	h.logger.DebugContext(ctx, "product created",
		slog.String("product_id", p.ProductID()),
		slog.String("price", p.Price().String()),
		slog.String("status", p.Status().String()),
	)
	return p, nil
}
