package config

import (
	"fmt"
	"os"

	"rupeewise/internal/models"

	"gopkg.in/yaml.v3"
)

// categoriesFile is the YAML shape of a category override file:
//
//	income:
//	  - Cash
//	  - Bank
//	expense:
//	  - Grocery
//	  - Rent
type categoriesFile struct {
	Income  []string `yaml:"income"`
	Expense []string `yaml:"expense"`
}

// LoadCategoryOverrides replaces the built-in category label sets from an
// optional YAML file. An empty path or missing file keeps the defaults; a
// malformed file is an error so a typo cannot silently drop categories.
func LoadCategoryOverrides(path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			Logger.Debugf("Categories file not found, keeping defaults: %s", path)
			return nil
		}
		return fmt.Errorf("error reading categories file: %w", err)
	}

	var overrides categoriesFile
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return fmt.Errorf("error parsing categories file: %w", err)
	}

	models.SetCategories(overrides.Income, overrides.Expense)
	Logger.WithField("file", path).Info("Loaded category overrides")
	return nil
}
