package model

// Product represents a stock item in the catalogue.
type Product struct {
	ID         int64  `json:"id" db:"id"`
	Name       string `json:"name" db:"name"`
	CategoryID int64  `json:"category_id" db:"category_id"`
	ImageURL   string `json:"image_url" db:"image_url"`
	Quantity   int    `json:"quantity" db:"quantity"`
}

// ProductInput is the create/update payload for a product.
type ProductInput struct {
	Name       string `json:"name"`
	CategoryID int64  `json:"category_id"`
	ImageURL   string `json:"image_url"`
	Quantity   int    `json:"quantity"`
}

// Validate checks the fields the backend would reject anyway.
func (in ProductInput) Validate() error {
	if in.Name == "" {
		return ErrInvalidName
	}
	if in.CategoryID <= 0 {
		return ErrInvalidID
	}
	if in.Quantity < 0 {
		return ErrInvalidQuantity
	}
	return nil
}
