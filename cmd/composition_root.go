package cmd

import (
	"io"
	"log/slog"

	"catalog/internal/core/application/usecases/commands"
)

type CompositionRoot struct {
	logger *slog.Logger
}

// NewCompositionRoot wires the application services. Handler logs go to w.
func NewCompositionRoot(cfg Config, w io.Writer) CompositionRoot {
	return CompositionRoot{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)})),
	}
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.logger)
}

func (c *CompositionRoot) CreateChangeProductStatusCommandHandler() commands.ChangeProductStatusCommandHandler {
	return commands.NewChangeProductStatusCommandHandler(c.logger)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
