package restaurant

import (
	"fmt"

	"lamaison/models"

	"github.com/spf13/viper"
)

// LoadMenuFile reads a menu catalog from a YAML file with a top-level
// "menu" key. Used to override the built-in data without a rebuild.
func LoadMenuFile(path string) ([]models.MenuCategory, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read menu file: %w", err)
	}
	var categories []models.MenuCategory
	if err := v.UnmarshalKey("menu", &categories); err != nil {
		return nil, fmt.Errorf("parse menu file: %w", err)
	}
	return categories, nil
}

// LoadScheduleFile reads a weekly schedule from a YAML file with a
// top-level "schedule" key.
func LoadScheduleFile(path string) ([]models.DaySchedule, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read schedule file: %w", err)
	}
	var days []models.DaySchedule
	if err := v.UnmarshalKey("schedule", &days); err != nil {
		return nil, fmt.Errorf("parse schedule file: %w", err)
	}
	return days, nil
}
