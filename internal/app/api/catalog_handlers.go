package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dominiofast/smartfood-landing-sub000/internal/domain"
)

func (h *Handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	tenant := chi.URLParam(r, "tenant")
	snap, err := h.catalog.GetCatalog(r.Context(), tenant)
	if err != nil {
		// degraded load still returns the seed document
		h.lg.Warn("catalog_load_degraded", err, map[string]any{"tenant_id": tenant})
	}
	writeJSON(w, http.StatusOK, snap)
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	tenant := chi.URLParam(r, "tenant")
	var req domain.CreateCategoryRequest
	if err := decode(r, &req); err != nil {
		writeProblem(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}
	cat, err := h.catalog.CreateCategory(r.Context(), tenant, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, cat)
}

func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	tenant := chi.URLParam(r, "tenant")
	id, ok := pathInt(w, r, "categoryID")
	if !ok {
		return
	}
	var req domain.UpdateCategoryRequest
	if err := decode(r, &req); err != nil {
		writeProblem(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}
	cat, err := h.catalog.UpdateCategory(r.Context(), tenant, id, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cat)
}

func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	tenant := chi.URLParam(r, "tenant")
	id, ok := pathInt(w, r, "categoryID")
	if !ok {
		return
	}
	if err := h.catalog.DeleteCategory(r.Context(), tenant, id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ReorderCategories(w http.ResponseWriter, r *http.Request) {
	tenant := chi.URLParam(r, "tenant")
	var req domain.ReorderRequest
	if err := decode(r, &req); err != nil {
		writeProblem(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}
	cats, err := h.catalog.ReorderCategories(r.Context(), tenant, req.DraggedID, req.TargetID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": cats})
}

func (h *Handler) ToggleExpanded(w http.ResponseWriter, r *http.Request) {
	tenant := chi.URLParam(r, "tenant")
	id, ok := pathInt(w, r, "categoryID")
	if !ok {
		return
	}
	expanded, err := h.catalog.ToggleExpanded(r.Context(), tenant, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"expanded": expanded})
}

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	tenant := chi.URLParam(r, "tenant")
	categoryID, ok := pathInt(w, r, "categoryID")
	if !ok {
		return
	}
	var req domain.CreateProductRequest
	if err := decode(r, &req); err != nil {
		writeProblem(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}
	prod, err := h.catalog.CreateProduct(r.Context(), tenant, categoryID, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, prod)
}

func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	tenant := chi.URLParam(r, "tenant")
	id, ok := pathInt(w, r, "productID")
	if !ok {
		return
	}
	var req domain.UpdateProductRequest
	if err := decode(r, &req); err != nil {
		writeProblem(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}
	prod, err := h.catalog.UpdateProduct(r.Context(), tenant, id, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, prod)
}

func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	tenant := chi.URLParam(r, "tenant")
	id, ok := pathInt(w, r, "productID")
	if !ok {
		return
	}
	if err := h.catalog.DeleteProduct(r.Context(), tenant, id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ReorderProducts(w http.ResponseWriter, r *http.Request) {
	tenant := chi.URLParam(r, "tenant")
	categoryID, ok := pathInt(w, r, "categoryID")
	if !ok {
		return
	}
	var req domain.ReorderRequest
	if err := decode(r, &req); err != nil {
		writeProblem(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}
	prods, err := h.catalog.ReorderProducts(r.Context(), tenant, categoryID, req.DraggedID, req.TargetID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"products": prods})
}

func (h *Handler) CreateAdditionalGroup(w http.ResponseWriter, r *http.Request) {
	tenant := chi.URLParam(r, "tenant")
	productID, ok := pathInt(w, r, "productID")
	if !ok {
		return
	}
	var req domain.CreateAdditionalGroupRequest
	if err := decode(r, &req); err != nil {
		writeProblem(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}
	group, err := h.catalog.CreateAdditionalGroup(r.Context(), tenant, productID, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, group)
}

func (h *Handler) DeleteAdditionalGroup(w http.ResponseWriter, r *http.Request) {
	tenant := chi.URLParam(r, "tenant")
	productID, ok := pathInt(w, r, "productID")
	if !ok {
		return
	}
	groupID, ok := pathInt(w, r, "groupID")
	if !ok {
		return
	}
	if err := h.catalog.DeleteAdditionalGroup(r.Context(), tenant, productID, groupID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CopyAdditionalGroup(w http.ResponseWriter, r *http.Request) {
	tenant := chi.URLParam(r, "tenant")
	var req domain.CopyAdditionalGroupRequest
	if err := decode(r, &req); err != nil {
		writeProblem(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}
	if err := h.catalog.CopyAdditionalGroup(r.Context(), tenant, req); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func pathInt(w http.ResponseWriter, r *http.Request, key string) (int, bool) {
	n, err := strconv.Atoi(chi.URLParam(r, key))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "bad_param", key+" must be an integer")
		return 0, false
	}
	return n, true
}
