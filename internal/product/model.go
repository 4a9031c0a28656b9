package product

// Product is a single catalog piece. Price is in whole lek, no minor units.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       int64    `json:"price"`
	Category    string   `json:"category"`
	Images      []string `json:"images"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Size        string   `json:"size"`
}

// Clone returns a deep copy so callers can hold a snapshot that later edits cannot reach.
func (p Product) Clone() Product {
	c := p
	c.Images = cloneStrings(p.Images)
	c.Tags = cloneStrings(p.Tags)
	return c
}

// Validate checks the fields an edited product must satisfy before it is saved.
func (p Product) Validate() error {
	if p.ID == "" {
		return ErrMissingID
	}
	if p.Name == "" {
		return ErrEmptyName
	}
	if p.Price < 0 {
		return ErrNegativePrice
	}
	return nil
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// CloneAll deep copies a product list.
func CloneAll(products []Product) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		out = append(out, p.Clone())
	}
	return out
}
