package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Load reads a profile from a JSON or YAML file. The profile store itself is
// external; this is the read-only side of that contract. Partial profiles
// are valid; only structurally nonsensical values are rejected.
func Load(path string) (*CompanyProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}

	var p CompanyProfile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("parsing profile %q: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("parsing profile %q: %w", path, err)
		}
	}

	if err := p.Check(); err != nil {
		return nil, err
	}

	return &p, nil
}

// Check validates field-level constraints (state length, ZIP format,
// non-negative amounts, OSHA enum). Absent fields always pass.
func (p *CompanyProfile) Check() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}
	return nil
}

// CheckForAnalysis enforces the preconditions for scoring: an analysis
// against an unidentified profile is refused.
func (p *CompanyProfile) CheckForAnalysis() error {
	if p == nil {
		return fmt.Errorf("company profile is required")
	}
	if p.DisplayName() == "" {
		return fmt.Errorf("company profile has no company name")
	}
	return p.Check()
}
