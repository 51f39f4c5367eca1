package model

import "time"

type Product struct {
	ProductID   int64      `json:"productid"`
	CategoryID  *int64     `json:"categoryid,omitempty"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	Price       float64    `json:"price"`
	Colors      []string   `json:"colors"`
	Sizes       []string   `json:"sizes"`
	ImageURL    *string    `json:"image_url,omitempty"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

type Category struct {
	CategoryID int64  `json:"categoryid"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	SortOrder  int    `json:"sort_order"`
}
