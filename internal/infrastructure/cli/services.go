package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/felixgeelhaar/srclist/internal/application"
	"github.com/felixgeelhaar/srclist/internal/domain"
	"github.com/felixgeelhaar/srclist/internal/infrastructure/config"
	"github.com/felixgeelhaar/srclist/internal/infrastructure/discovery"
	"github.com/felixgeelhaar/srclist/internal/infrastructure/storage"
)

// Services bundles the wired application services for one project root.
type Services struct {
	Root        string
	Conventions domain.Conventions
	Generate    *application.GenerateService
	Apply       *application.ApplyService
	History     *application.HistoryService
}

func loadServices(root string) (*Services, error) {
	conv, err := config.Load(root)
	if err != nil {
		return nil, err
	}

	repo := storage.NewFilesystemRepository(root, conv)
	scanner := discovery.NewScanner(root)
	history := application.NewHistoryService(repo)

	return &Services{
		Root:        root,
		Conventions: conv,
		Generate:    application.NewGenerateService(scanner, conv),
		Apply:       application.NewApplyService(repo, history, conv),
		History:     history,
	}, nil
}

func getProjectRoot() (string, error) {
	if projectPath != "" {
		abs, err := filepath.Abs(projectPath)
		if err != nil {
			return "", fmt.Errorf("invalid project path %q: %w", projectPath, err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return "", fmt.Errorf("project path %q: %w", abs, err)
		}
		if !info.IsDir() {
			return "", fmt.Errorf("project path %q is not a directory", abs)
		}
		return abs, nil
	}
	return os.Getwd()
}

func loadServicesForCurrentDir() (*Services, error) {
	root, err := getProjectRoot()
	if err != nil {
		return nil, err
	}
	return loadServices(root)
}
