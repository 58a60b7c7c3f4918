package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Price is a product price. The backend transmits prices as decimal strings
// ("299.00"); Price parses them once at the decode boundary so the rest of
// the client works with a numeric value.
type Price float64

func (p *Price) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		*p = 0
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var err error
		s, err = strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("invalid price %s: %w", string(data), err)
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid price %q: %w", s, err)
	}
	*p = Price(v)
	return nil
}

// MarshalJSON round-trips the backend's decimal-string convention.
func (p Price) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p Price) String() string {
	return strconv.FormatFloat(float64(p), 'f', 2, 64)
}

type Category struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

type Region struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

type Artisan struct {
	ID        int    `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Email     string `json:"email,omitempty" yaml:"email,omitempty"`
	Biography string `json:"biography" yaml:"biography"`
	Phone     string `json:"phone" yaml:"phone"`
	Region    Region `json:"region" yaml:"region"`
	MainImage string `json:"main_image,omitempty" yaml:"main_image,omitempty"`
}

// Product as served by the backend. Category and Region are always
// populated; Artisan can be absent on some listings, so it stays a pointer.
type Product struct {
	ID                   int      `json:"id" yaml:"id"`
	Name                 string   `json:"name" yaml:"name"`
	Description          string   `json:"description" yaml:"description"`
	Materials            string   `json:"materials" yaml:"materials"`
	Dimensions           string   `json:"dimensions" yaml:"dimensions"`
	CulturalSignificance string   `json:"cultural_significance" yaml:"cultural_significance"`
	Category             Category `json:"category" yaml:"category"`
	Region               Region   `json:"region" yaml:"region"`
	Artisan              *Artisan `json:"artisan,omitempty" yaml:"artisan,omitempty"`
	MainImage            string   `json:"main_image,omitempty" yaml:"main_image,omitempty"`
	Price                Price    `json:"price" yaml:"price"`
	Rating               float64  `json:"rating,omitempty" yaml:"rating,omitempty"`
	ReviewCount          int      `json:"review_count,omitempty" yaml:"review_count,omitempty"`
}

// ArtisanName tolerates products listed without their artisan.
func (p Product) ArtisanName() string {
	if p.Artisan == nil {
		return ""
	}
	return p.Artisan.Name
}
