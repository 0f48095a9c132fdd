package models

// CatalogService represents a service offered on the platform.
type CatalogService struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"` // e.g., "Deep Cleaning", "Garden Waste Pickup"
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Discount     float64 `json:"discount"` // percentage, 0 when none
	Availability bool    `json:"availability"`
	ImageURL     string  `json:"imageUrl,omitempty"`

	// DisplayPrice is derived by the gateway: discounted price formatted
	// as a currency string with a discount annotation.
	DisplayPrice string `json:"displayPrice,omitempty"`
}
