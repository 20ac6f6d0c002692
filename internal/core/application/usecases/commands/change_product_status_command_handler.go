package commands

import (
	"context"
	"log/slog"

	"catalog/internal/core/domain/model/product"
)

// ChangeProductStatusCommandHandler applies Activate or Deactivate.
// The product passed in the command is never modified.
type ChangeProductStatusCommandHandler struct {
	logger *slog.Logger
}

// NewChangeProductStatusCommandHandler creates a handler that logs transitions to logger.
func NewChangeProductStatusCommandHandler(logger *slog.Logger) ChangeProductStatusCommandHandler {
	return ChangeProductStatusCommandHandler{
		logger: logger,
	}
}

// Handle returns the product in the target status. When the product is
// already there the same instance comes back.
func (h *ChangeProductStatusCommandHandler) Handle(ctx context.Context, cmd ChangeProductStatusCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	current := cmd.Product()

	var next *product.Product
	if cmd.Target() == product.Active {
		next = current.Activate()
	} else {
		next = current.Deactivate()
	}

	if next != current {
		h.logger.InfoContext(ctx, "product status changed",
			slog.String("product_id", next.ProductID()),
			slog.String("from", current.Status().String()),
			slog.String("to", next.Status().String()),
		)
	}
	return next, nil
}
