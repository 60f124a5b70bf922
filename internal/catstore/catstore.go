// Package catstore loads and saves user-defined category rules from YAML.
package catstore

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/yog-singh/expense-tracker/internal/logging"
	"github.com/yog-singh/expense-tracker/internal/models"
)

// RuleStore manages the category rules YAML file. User rules extend the
// built-in tables; they never replace them.
type RuleStore struct {
	RulesFile string
	logger    logging.Logger
}

// NewRuleStore creates a store for the given rules file. An empty filename
// defaults to "categories.yaml".
func NewRuleStore(rulesFile string, logger logging.Logger) *RuleStore {
	if rulesFile == "" {
		rulesFile = "categories.yaml"
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &RuleStore{RulesFile: rulesFile, logger: logger}
}

// findConfigFile looks for the rules file in the standard locations:
// the path as given, ./config/, and ~/.config/expense-tracker/.
func (s *RuleStore) findConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".config", "expense-tracker", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}
	return "", os.ErrNotExist
}

// LoadRules loads category rules from the YAML file. A missing file is not
// an error: it yields an empty rule set.
func (s *RuleStore) LoadRules() ([]models.CategoryRule, error) {
	filePath, err := s.findConfigFile(s.RulesFile)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("Category rules file not found, using built-in rules only",
				logging.Field{Key: "file", Value: s.RulesFile})
			return []models.CategoryRule{}, nil
		}
		return nil, fmt.Errorf("error resolving category rules file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading category rules file: %w", err)
	}

	var config models.CategoryRulesConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing category rules file: %w", err)
	}

	s.logger.Debug("Loaded category rules",
		logging.Field{Key: "file", Value: filePath},
		logging.Field{Key: "count", Value: len(config.Rules)})
	return config.Rules, nil
}

// SaveRules writes category rules back to the YAML file, creating parent
// directories as needed.
func (s *RuleStore) SaveRules(rules []models.CategoryRule) error {
	data, err := yaml.Marshal(models.CategoryRulesConfig{Rules: rules})
	if err != nil {
		return fmt.Errorf("error marshaling category rules: %w", err)
	}

	dir := filepath.Dir(s.RulesFile)
	if dir != "." {
		if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
			return fmt.Errorf("error creating config directory: %w", err)
		}
	}

	if err := os.WriteFile(s.RulesFile, data, models.PermissionDataFile); err != nil {
		return fmt.Errorf("error writing category rules file: %w", err)
	}
	return nil
}
