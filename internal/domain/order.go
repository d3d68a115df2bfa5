package domain

// Order statuses as the backend emits them. The admin UI offers every status
// except the current one; legality of a transition is the backend's concern.
const (
	StatusPendingPayment = "pending_payment"
	StatusPaid           = "paid"
	StatusShipped        = "shipped"
	StatusDelivered      = "delivered"
	StatusCancelled      = "cancelled"
)

// AllStatuses is the fixed, ordered set shown as transition buttons.
var AllStatuses = []string{
	StatusPendingPayment,
	StatusPaid,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
}

type ProductRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type OrderItem struct {
	Quantity        int         `json:"quantity"`
	PriceAtPurchase float64     `json:"price_at_purchase"`
	Product         *ProductRef `json:"product"`
}

type Customer struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

type Order struct {
	ID             int         `json:"id"`
	CreatedAt      string      `json:"created_at"`
	TotalPrice     float64     `json:"total_price"`
	DiscountAmount float64     `json:"discount_amount"`
	CouponCodeUsed *string     `json:"coupon_code_used"`
	Status         string      `json:"status"`
	Customer       *Customer   `json:"customer,omitempty"`
	Items          []OrderItem `json:"items"`
}

// StatusLabel maps a backend status to its pt-BR display label.
func StatusLabel(status string) string {
	switch status {
	case StatusPendingPayment:
		return "Pendente"
	case StatusPaid:
		return "Pago"
	case StatusShipped:
		return "Enviado"
	case StatusDelivered:
		return "Entregue"
	case StatusCancelled:
		return "Cancelado"
	}
	return status
}
