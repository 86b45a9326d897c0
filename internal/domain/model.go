package domain

import "time"

// Order types. Non-delivery orders never pass through the "delivering" stage.
const (
	OrderTypeDineIn   = "dine_in"
	OrderTypeTakeout  = "takeout"
	OrderTypeDelivery = "delivery"
)

const (
	PaymentCash = "cash"
	PaymentCard = "card"
	PaymentPix  = "pix"
)

// OrderStatus is one of the five fulfillment stages on the board.
type OrderStatus string

const (
	StatusWaiting    OrderStatus = "waiting"
	StatusKitchen    OrderStatus = "kitchen"
	StatusReady      OrderStatus = "ready"
	StatusDelivering OrderStatus = "delivering"
	StatusDelivered  OrderStatus = "delivered"
)

// Valid reports whether s is one of the five board stages.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusWaiting, StatusKitchen, StatusReady, StatusDelivering, StatusDelivered:
		return true
	}
	return false
}

type Category struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Icon        string    `json:"icon,omitempty"`
	Order       int       `json:"order"`
	Active      bool      `json:"active"`
	Expanded    bool      `json:"expanded"` // UI state only, no invariant
	Products    []Product `json:"products"`
}

type Product struct {
	ID          int               `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Price       float64           `json:"price"`
	Image       string            `json:"image,omitempty"`
	CategoryID  int               `json:"category_id"`
	Order       int               `json:"order"`
	Active      bool              `json:"active"`
	Additionals []AdditionalGroup `json:"additionals"`
}

type AdditionalGroup struct {
	ID    int              `json:"id"` // unique per product
	Name  string           `json:"name"`
	Order int              `json:"order"`
	Items []AdditionalItem `json:"items"`
}

type AdditionalItem struct {
	ID          int     `json:"id"` // unique per group
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"` // added atop the product base price
	Order       int     `json:"order"`
}

// CartLine copies product name and price at add time; it is not live-linked
// to the catalog.
type CartLine struct {
	ID          int              `json:"id"`
	ProductID   int              `json:"product_id"`
	Name        string           `json:"name"`
	BasePrice   float64          `json:"base_price"`
	UnitPrice   float64          `json:"unit_price"` // base + selected additionals
	Quantity    int              `json:"quantity"`
	Additionals []AdditionalItem `json:"additionals,omitempty"`
	Notes       string           `json:"notes,omitempty"`
}

// Subtotal is the line contribution to the order total.
func (l CartLine) Subtotal() float64 { return l.UnitPrice * float64(l.Quantity) }

type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"` // required for delivery orders
}

type Order struct {
	ID             string      `json:"id"`
	OrderNumber    string      `json:"order_number"`
	Customer       Customer    `json:"customer"`
	Lines          []CartLine  `json:"lines"`
	OrderType      string      `json:"order_type"`
	PaymentMethod  string      `json:"payment_method"`
	ReceivedAmount float64     `json:"received_amount,omitempty"`
	Change         float64     `json:"change,omitempty"`
	Total          float64     `json:"total"` // frozen at checkout, never recomputed
	Status         OrderStatus `json:"status"`
	Notes          string      `json:"notes,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// CatalogSnapshot is the whole-document persisted form of one tenant's catalog.
type CatalogSnapshot struct {
	Categories []Category `json:"categories"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// OrderSnapshot wraps the order collection in the same shape as the catalog
// document.
type OrderSnapshot struct {
	Orders    []Order   `json:"orders"`
	UpdatedAt time.Time `json:"updated_at"`
}
