package domain

import "time"

// DefaultProductPlatform is assumed when a stored product predates the
// platform column.
const DefaultProductPlatform = "shopify"

// Product is an item a user saved for video generation. Records are written
// by the ingestion pipeline; this service only lists them.
type Product struct {
	ID          string
	OwnerID     string
	Title       string
	Description *string
	Price       *float64
	Currency    *string
	Amount      *float64
	ImageURL    *string
	Images      []string
	URL         string
	Platform    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
