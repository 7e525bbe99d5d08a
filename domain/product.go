package domain

// Product is one record of the product service. Quantity is the current stock,
// consulted and decremented by the order workflow.
type Product struct {
	ID          int     `json:"id"`
	ProductName string  `json:"productname"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// ProductUpdate carries the optional fields of a product update command; nil means
// "leave unchanged". At least one field must be set.
type ProductUpdate struct {
	ProductName *string
	Description *string
	Price       *float64
	Quantity    *int
}

// Empty reports whether no field is set.
func (p ProductUpdate) Empty() bool {
	return p.ProductName == nil && p.Description == nil && p.Price == nil && p.Quantity == nil
}
