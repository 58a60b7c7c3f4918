package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/hrayfi/hrayfi-cli/pkg/catalog"
	"github.com/hrayfi/hrayfi-cli/pkg/models"
)

// ParseID parses a positive numeric entity id from a command argument.
func ParseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q (must be a positive number)", arg)
	}
	return id, nil
}

// ParsePrice parses a decimal price from a flag value.
func ParsePrice(arg string) (models.Price, error) {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid price %q (must be a non-negative decimal)", arg)
	}
	return models.Price(v), nil
}

// ValidateSortKey checks a --sort flag value against the known keys.
func ValidateSortKey(value string) (catalog.SortKey, error) {
	for _, key := range catalog.ValidSortKeys {
		if string(key) == value {
			return key, nil
		}
	}
	return "", fmt.Errorf("invalid sort key %q (must be one of: popularity, newest, price-low, price-high, rating)", value)
}

// ValidateImagePath checks that an --image flag points at a readable file.
func ValidateImagePath(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("image does not exist: %s", path)
		}
		return fmt.Errorf("error accessing image: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("image path is a directory, expected file: %s", path)
	}
	return nil
}
