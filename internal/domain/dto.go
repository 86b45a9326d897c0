package domain

type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Image       *string  `json:"image,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

// ReorderRequest carries a drag: the dragged entry is reinserted immediately
// before the target entry.
type ReorderRequest struct {
	DraggedID int `json:"dragged_id"`
	TargetID  int `json:"target_id"`
}

type AdditionalItemInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
}

type CreateAdditionalGroupRequest struct {
	Name  string                `json:"name"`
	Items []AdditionalItemInput `json:"items"`
}

type CopyAdditionalGroupRequest struct {
	GroupID          int   `json:"group_id"`
	SourceProductID  int   `json:"source_product_id"`
	TargetProductIDs []int `json:"target_product_ids"`
}

// SelectedAdditional addresses one option item; item ids are only unique
// within their group, so the pair is needed.
type SelectedAdditional struct {
	GroupID int `json:"group_id"`
	ItemID  int `json:"item_id"`
}

type CheckoutLine struct {
	ProductID   int                  `json:"product_id"`
	Quantity    int                  `json:"quantity"`
	Additionals []SelectedAdditional `json:"additionals,omitempty"`
	Notes       string               `json:"notes,omitempty"`
}

type CheckoutRequest struct {
	Customer       Customer       `json:"customer"`
	OrderType      string         `json:"order_type"`
	PaymentMethod  string         `json:"payment_method"`
	ReceivedAmount float64        `json:"received_amount,omitempty"`
	Lines          []CheckoutLine `json:"lines"`
	Notes          string         `json:"notes,omitempty"`
}

type CheckoutResponse struct {
	OrderID     string      `json:"order_id"`
	OrderNumber string      `json:"order_number"`
	Status      OrderStatus `json:"status"`
	Total       float64     `json:"total"`
	Change      float64     `json:"change,omitempty"`
}

type MoveOrderRequest struct {
	Status OrderStatus `json:"status"`
}
