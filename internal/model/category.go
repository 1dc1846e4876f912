package model

// Category groups products in the catalogue.
type Category struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// CategoryInput is the create/update payload for a category.
type CategoryInput struct {
	Name string `json:"name"`
}

// Validate checks the fields the backend would reject anyway.
func (in CategoryInput) Validate() error {
	if in.Name == "" {
		return ErrInvalidName
	}
	return nil
}
