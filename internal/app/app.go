package app

import (
	"context"
	"fmt"

	"github.com/sumanthj/resumeforge/internal/config"
)

// App is the dependency container for the CLI application
type App struct {
	Config *config.Config
}

// NewApp loads configuration and returns a new App instance. Database setup
// happens in the command layer so this package stays a leaf the storage
// code can import for its error types.
func NewApp(ctx context.Context) (*App, error) {
	if err := config.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	return &App{Config: config.AppConfig}, nil
}
