package models

// Settings represents the application configuration
type Settings struct {
	API APISettings `yaml:"api"`
	UI  UISettings  `yaml:"ui"`
}

// APISettings controls how the client reaches the marketplace backend
type APISettings struct {
	BaseURL string `yaml:"base_url"`
	ChatURL string `yaml:"chat_url,omitempty"`
}

// UISettings controls UI preferences
type UISettings struct {
	PageSize    int    `yaml:"page_size"`
	Currency    string `yaml:"currency"`
	DefaultSort string `yaml:"default_sort"` // "popularity", "newest", "price-low", "price-high", "rating"
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		API: APISettings{
			BaseURL: "https://api.achrafmansari.com",
		},
		UI: UISettings{
			PageSize:    12,
			Currency:    "$",
			DefaultSort: "popularity",
		},
	}
}
