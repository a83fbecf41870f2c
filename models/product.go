package models

// Product is a template schema with no endpoints. Collection: "product".
type Product struct {
	Title       string   `json:"title" binding:"required"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"required,min=0"`
	Category    string   `json:"category" binding:"required"`
	InStock     *bool    `json:"in_stock"`
}

func (Product) Kind() Kind { return KindProduct }

func (p Product) WithDefaults() Product {
	if p.InStock == nil {
		inStock := true
		p.InStock = &inStock
	}
	return p
}

func ParseProduct(raw map[string]any) (Product, error) {
	var p Product
	if err := decode(raw, &p); err != nil {
		return Product{}, err
	}
	p = p.WithDefaults()
	if err := Validate(&p); err != nil {
		return Product{}, err
	}
	return p, nil
}
