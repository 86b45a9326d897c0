package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dominiofast/smartfood-landing-sub000/internal/cart"
	"github.com/dominiofast/smartfood-landing-sub000/internal/domain"
)

// Checkout rebuilds the point-of-sale cart from the request, finalizes it
// and appends the resulting order to the board.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	tenant := chi.URLParam(r, "tenant")
	var req domain.CheckoutRequest
	if err := decode(r, &req); err != nil {
		writeProblem(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}
	if len(req.Lines) == 0 {
		writeError(w, domain.Invalid("lines", "is required"))
		return
	}

	c := cart.New()
	for _, ln := range req.Lines {
		if ln.Quantity <= 0 {
			writeError(w, domain.Invalid("quantity", "must be positive"))
			return
		}
		prod, err := h.catalog.FindProduct(r.Context(), tenant, ln.ProductID)
		if err != nil {
			writeError(w, err)
			return
		}
		selected, err := resolveAdditionals(prod, ln.Additionals)
		if err != nil {
			writeError(w, err)
			return
		}
		added := c.AddLine(prod, selected)
		// AddLine already contributed one unit, and may have merged into a
		// line from an earlier request entry; accumulate, don't overwrite
		if err := c.SetQuantity(added.ID, added.Quantity-1+ln.Quantity); err != nil {
			writeError(w, err)
			return
		}
		if ln.Notes != "" {
			_ = c.SetNotes(added.ID, ln.Notes)
		}
	}

	seq, err := h.board.Count(r.Context(), tenant)
	if err != nil {
		writeError(w, err)
		return
	}

	order, err := c.Finalize(cart.FinalizeOptions{
		Customer:       req.Customer,
		OrderType:      req.OrderType,
		PaymentMethod:  req.PaymentMethod,
		ReceivedAmount: req.ReceivedAmount,
		Notes:          req.Notes,
		Sequence:       seq,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.board.Append(r.Context(), tenant, order); err != nil {
		writeError(w, err)
		return
	}

	h.lg.Debug("order_received", map[string]any{
		"tenant_id": tenant, "order_number": order.OrderNumber, "total": order.Total,
	})
	writeJSON(w, http.StatusCreated, domain.CheckoutResponse{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Status:      order.Status,
		Total:       order.Total,
		Change:      order.Change,
	})
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	tenant := chi.URLParam(r, "tenant")
	status := r.URL.Query().Get("status")

	var (
		orders []domain.Order
		err    error
	)
	if status == "" {
		orders, err = h.board.ListAll(r.Context(), tenant)
	} else {
		orders, err = h.board.ListByStatus(r.Context(), tenant, domain.OrderStatus(status))
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"orders": orders})
}

func (h *Handler) MoveOrder(w http.ResponseWriter, r *http.Request) {
	tenant := chi.URLParam(r, "tenant")
	orderID := chi.URLParam(r, "orderID")
	var req domain.MoveOrderRequest
	if err := decode(r, &req); err != nil {
		writeProblem(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}
	order, err := h.board.MoveOrder(r.Context(), tenant, orderID, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	if order.ID == "" {
		// stale drag source: tolerated, nothing moved
		writeJSON(w, http.StatusOK, map[string]any{"moved": false})
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func resolveAdditionals(prod domain.Product, sel []domain.SelectedAdditional) ([]domain.AdditionalItem, error) {
	if len(sel) == 0 {
		return nil, nil
	}
	out := make([]domain.AdditionalItem, 0, len(sel))
	for _, s := range sel {
		found := false
		for gi := range prod.Additionals {
			if prod.Additionals[gi].ID != s.GroupID {
				continue
			}
			for _, it := range prod.Additionals[gi].Items {
				if it.ID == s.ItemID {
					out = append(out, it)
					found = true
					break
				}
			}
		}
		if !found {
			return nil, fmt.Errorf("additional %d/%d on product %d: %w",
				s.GroupID, s.ItemID, prod.ID, domain.ErrNotFound)
		}
	}
	return out, nil
}
