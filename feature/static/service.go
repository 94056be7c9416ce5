package static

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Report describes the state of the document root.
type Report struct {
	Root         string `json:"root"`
	LandingPage  string `json:"landing_page"`
	LandingFound bool   `json:"landing_found"`
}

// Service owns the document root served by the feature.
type Service struct {
	root   string
	logger *zap.Logger
}

// NewService creates a new static file service rooted at root.
func NewService(root string, logger *zap.Logger) *Service {
	return &Service{root: root, logger: logger}
}

// Root returns the document root.
func (s *Service) Root() string {
	return s.root
}

// Check reports whether the landing page exists under the document root.
// A missing landing page is not an error: those requests answer 404.
func (s *Service) Check() (*Report, error) {
	report := &Report{Root: s.root, LandingPage: LandingPage}

	info, err := os.Stat(filepath.Join(s.root, filepath.FromSlash(LandingPage)))
	switch {
	case errors.Is(err, os.ErrNotExist):
		return report, nil
	case err != nil:
		return nil, fmt.Errorf("failed to stat landing page: %w", err)
	}

	report.LandingFound = info.Mode().IsRegular()
	return report, nil
}
