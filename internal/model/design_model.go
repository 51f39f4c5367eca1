package model

import (
	"encoding/json"
	"time"
)

// CustomDesign is customer artwork placed on a product. The image itself
// lives on the hosting service; we keep the URL and the placement data
// the storefront designer produced.
type CustomDesign struct {
	DesignID   int64           `json:"designid"`
	CustomerID *int64          `json:"customerid,omitempty"`
	ProductID  int64           `json:"productid"`
	ImageURL   string          `json:"image_url"`
	Placement  json.RawMessage `json:"placement,omitempty"` // designer canvas JSON, stored as-is
	CreatedAt  time.Time       `json:"created_at"`
}

type HomepageSection struct {
	SectionID int64   `json:"sectionid"`
	Title     string  `json:"title"`
	Body      *string `json:"body,omitempty"`
	ImageURL  *string `json:"image_url,omitempty"`
	Position  int     `json:"position"`
	Visible   bool    `json:"visible"`
}
