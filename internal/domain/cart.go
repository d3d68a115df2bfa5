package domain

type CartItem struct {
	ID       int     `json:"id"`
	Quantity int     `json:"quantity"`
	Product  Product `json:"product"`
}

// Cart is the backend-owned cart for the authenticated user. TotalPrice is
// the pre-discount subtotal; FinalPrice is what the backend computed after
// applying the coupon, never derived locally.
type Cart struct {
	ID             int        `json:"id"`
	Items          []CartItem `json:"items"`
	TotalPrice     float64    `json:"total_price"`
	DiscountAmount float64    `json:"discount_amount"`
	FinalPrice     float64    `json:"final_price"`
	CouponCode     *string    `json:"coupon_code"`
}

func (c Cart) IsEmpty() bool { return len(c.Items) == 0 }
