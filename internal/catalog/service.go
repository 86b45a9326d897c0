package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/dominiofast/smartfood-landing-sub000/internal/common/logger"
	"github.com/dominiofast/smartfood-landing-sub000/internal/domain"
	"github.com/dominiofast/smartfood-landing-sub000/internal/snapshot"
)

type CatalogServiceInterface interface {
	GetCatalog(ctx context.Context, tenantID string) (*domain.CatalogSnapshot, error)

	CreateCategory(ctx context.Context, tenantID string, req domain.CreateCategoryRequest) (domain.Category, error)
	UpdateCategory(ctx context.Context, tenantID string, categoryID int, req domain.UpdateCategoryRequest) (domain.Category, error)
	DeleteCategory(ctx context.Context, tenantID string, categoryID int) error
	ReorderCategories(ctx context.Context, tenantID string, draggedID, targetID int) ([]domain.Category, error)
	ToggleExpanded(ctx context.Context, tenantID string, categoryID int) (bool, error)

	CreateProduct(ctx context.Context, tenantID string, categoryID int, req domain.CreateProductRequest) (domain.Product, error)
	UpdateProduct(ctx context.Context, tenantID string, productID int, req domain.UpdateProductRequest) (domain.Product, error)
	DeleteProduct(ctx context.Context, tenantID string, productID int) error
	ReorderProducts(ctx context.Context, tenantID string, categoryID, draggedID, targetID int) ([]domain.Product, error)

	CreateAdditionalGroup(ctx context.Context, tenantID string, productID int, req domain.CreateAdditionalGroupRequest) (domain.AdditionalGroup, error)
	DeleteAdditionalGroup(ctx context.Context, tenantID string, productID, groupID int) error
	CopyAdditionalGroup(ctx context.Context, tenantID string, req domain.CopyAdditionalGroupRequest) error

	FindProduct(ctx context.Context, tenantID string, productID int) (domain.Product, error)
}

// Service owns the category/product/option hierarchy for every tenant.
// Every mutation is load -> validate -> mutate -> full-document save; a
// failed save is logged and the in-memory result still returned, so staff
// work is not lost to a transient storage problem.
type Service struct {
	store *snapshot.Store
	lg    *logger.Logger
}

func NewService(store *snapshot.Store) CatalogServiceInterface {
	return &Service{store: store, lg: logger.New("catalog")}
}

func (s *Service) load(ctx context.Context, tenantID string) *domain.CatalogSnapshot {
	snap, err := s.store.LoadCatalog(ctx, tenantID)
	if err != nil {
		// corrupt or unreadable document: continue on the seed catalog
		s.lg.Warn("catalog_load_degraded", err, map[string]any{"tenant_id": tenantID})
	}
	return snap
}

func (s *Service) save(ctx context.Context, tenantID string, snap *domain.CatalogSnapshot) {
	if err := s.store.SaveCatalog(ctx, tenantID, snap); err != nil {
		s.lg.Warn("snapshot_save_failed", err, map[string]any{"tenant_id": tenantID})
	}
}

func (s *Service) GetCatalog(ctx context.Context, tenantID string) (*domain.CatalogSnapshot, error) {
	return s.store.LoadCatalog(ctx, tenantID)
}

func (s *Service) CreateCategory(ctx context.Context, tenantID string, req domain.CreateCategoryRequest) (domain.Category, error) {
	if strings.TrimSpace(req.Name) == "" {
		return domain.Category{}, domain.Invalid("name", "is required")
	}

	snap := s.load(ctx, tenantID)
	cat := domain.Category{
		ID:          nextCategoryID(snap),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Icon:        req.Icon,
		Order:       len(snap.Categories) + 1,
		Active:      true,
		Products:    []domain.Product{},
	}
	snap.Categories = append(snap.Categories, cat)

	s.save(ctx, tenantID, snap)
	s.lg.Debug("category_created", map[string]any{"tenant_id": tenantID, "category_id": cat.ID})
	return cat, nil
}

func (s *Service) UpdateCategory(ctx context.Context, tenantID string, categoryID int, req domain.UpdateCategoryRequest) (domain.Category, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return domain.Category{}, domain.Invalid("name", "is required")
	}

	snap := s.load(ctx, tenantID)
	i := indexOfCategory(snap.Categories, categoryID)
	if i < 0 {
		return domain.Category{}, fmt.Errorf("category %d: %w", categoryID, domain.ErrNotFound)
	}
	cat := &snap.Categories[i]
	if req.Name != nil {
		cat.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		cat.Description = *req.Description
	}
	if req.Icon != nil {
		cat.Icon = *req.Icon
	}
	if req.Active != nil {
		cat.Active = *req.Active
	}

	s.save(ctx, tenantID, snap)
	return *cat, nil
}

// DeleteCategory removes the category and cascades to its products (and
// transitively their additional groups). Siblings are renumbered dense.
func (s *Service) DeleteCategory(ctx context.Context, tenantID string, categoryID int) error {
	snap := s.load(ctx, tenantID)
	i := indexOfCategory(snap.Categories, categoryID)
	if i < 0 {
		return fmt.Errorf("category %d: %w", categoryID, domain.ErrNotFound)
	}
	removed := len(snap.Categories[i].Products)
	snap.Categories = append(snap.Categories[:i], snap.Categories[i+1:]...)
	renumberCategories(snap.Categories)

	s.save(ctx, tenantID, snap)
	s.lg.Debug("category_deleted", map[string]any{
		"tenant_id": tenantID, "category_id": categoryID, "cascaded_products": removed,
	})
	return nil
}

func (s *Service) ReorderCategories(ctx context.Context, tenantID string, draggedID, targetID int) ([]domain.Category, error) {
	snap := s.load(ctx, tenantID)
	from := indexOfCategory(snap.Categories, draggedID)
	if from < 0 {
		return nil, fmt.Errorf("category %d: %w", draggedID, domain.ErrNotFound)
	}
	to := indexOfCategory(snap.Categories, targetID)
	if to < 0 {
		return nil, fmt.Errorf("category %d: %w", targetID, domain.ErrNotFound)
	}
	if from != to {
		snap.Categories = moveCategory(snap.Categories, from, to)
		renumberCategories(snap.Categories)
		s.save(ctx, tenantID, snap)
	}
	return snap.Categories, nil
}

// ToggleExpanded flips the UI expansion flag. It lives on the category record
// but carries no domain invariant.
func (s *Service) ToggleExpanded(ctx context.Context, tenantID string, categoryID int) (bool, error) {
	snap := s.load(ctx, tenantID)
	i := indexOfCategory(snap.Categories, categoryID)
	if i < 0 {
		return false, fmt.Errorf("category %d: %w", categoryID, domain.ErrNotFound)
	}
	snap.Categories[i].Expanded = !snap.Categories[i].Expanded
	s.save(ctx, tenantID, snap)
	return snap.Categories[i].Expanded, nil
}

func (s *Service) CreateProduct(ctx context.Context, tenantID string, categoryID int, req domain.CreateProductRequest) (domain.Product, error) {
	if strings.TrimSpace(req.Name) == "" {
		return domain.Product{}, domain.Invalid("name", "is required")
	}
	if req.Price < 0 {
		return domain.Product{}, domain.Invalid("price", "must be non-negative")
	}

	snap := s.load(ctx, tenantID)
	i := indexOfCategory(snap.Categories, categoryID)
	if i < 0 {
		return domain.Product{}, fmt.Errorf("category %d: %w", categoryID, domain.ErrNotFound)
	}
	cat := &snap.Categories[i]
	prod := domain.Product{
		ID:          nextProductID(snap),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		CategoryID:  cat.ID,
		Order:       len(cat.Products) + 1,
		Active:      true,
		Additionals: []domain.AdditionalGroup{},
	}
	cat.Products = append(cat.Products, prod)

	s.save(ctx, tenantID, snap)
	s.lg.Debug("product_created", map[string]any{
		"tenant_id": tenantID, "category_id": cat.ID, "product_id": prod.ID,
	})
	return prod, nil
}

func (s *Service) UpdateProduct(ctx context.Context, tenantID string, productID int, req domain.UpdateProductRequest) (domain.Product, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return domain.Product{}, domain.Invalid("name", "is required")
	}
	if req.Price != nil && *req.Price < 0 {
		return domain.Product{}, domain.Invalid("price", "must be non-negative")
	}

	snap := s.load(ctx, tenantID)
	prod := findProduct(snap, productID)
	if prod == nil {
		return domain.Product{}, fmt.Errorf("product %d: %w", productID, domain.ErrNotFound)
	}
	if req.Name != nil {
		prod.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		prod.Description = *req.Description
	}
	if req.Price != nil {
		prod.Price = *req.Price
	}
	if req.Image != nil {
		prod.Image = *req.Image
	}
	if req.Active != nil {
		prod.Active = *req.Active
	}

	s.save(ctx, tenantID, snap)
	return *prod, nil
}

func (s *Service) DeleteProduct(ctx context.Context, tenantID string, productID int) error {
	snap := s.load(ctx, tenantID)
	for ci := range snap.Categories {
		cat := &snap.Categories[ci]
		pi := indexOfProduct(cat.Products, productID)
		if pi < 0 {
			continue
		}
		cat.Products = append(cat.Products[:pi], cat.Products[pi+1:]...)
		renumberProducts(cat.Products)
		s.save(ctx, tenantID, snap)
		return nil
	}
	return fmt.Errorf("product %d: %w", productID, domain.ErrNotFound)
}

// ReorderProducts only moves a product within its own category; a drag that
// crosses categories is rejected.
func (s *Service) ReorderProducts(ctx context.Context, tenantID string, categoryID, draggedID, targetID int) ([]domain.Product, error) {
	snap := s.load(ctx, tenantID)
	ci := indexOfCategory(snap.Categories, categoryID)
	if ci < 0 {
		return nil, fmt.Errorf("category %d: %w", categoryID, domain.ErrNotFound)
	}
	cat := &snap.Categories[ci]
	from := indexOfProduct(cat.Products, draggedID)
	to := indexOfProduct(cat.Products, targetID)
	if from < 0 || to < 0 {
		// one of the two lives in another category (or nowhere)
		if findProduct(snap, draggedID) != nil && findProduct(snap, targetID) != nil {
			return nil, domain.Invalid("product", "cannot be moved across categories")
		}
		return nil, fmt.Errorf("product %d or %d: %w", draggedID, targetID, domain.ErrNotFound)
	}
	if from != to {
		cat.Products = moveProduct(cat.Products, from, to)
		renumberProducts(cat.Products)
		s.save(ctx, tenantID, snap)
	}
	return cat.Products, nil
}

// CreateAdditionalGroup appends an option group to the product. Items with a
// blank name are silently dropped; the rest get dense order and per-group ids.
func (s *Service) CreateAdditionalGroup(ctx context.Context, tenantID string, productID int, req domain.CreateAdditionalGroupRequest) (domain.AdditionalGroup, error) {
	if strings.TrimSpace(req.Name) == "" {
		return domain.AdditionalGroup{}, domain.Invalid("name", "is required")
	}
	for _, it := range req.Items {
		if it.Price < 0 {
			return domain.AdditionalGroup{}, domain.Invalid("price", "must be non-negative")
		}
	}

	snap := s.load(ctx, tenantID)
	prod := findProduct(snap, productID)
	if prod == nil {
		return domain.AdditionalGroup{}, fmt.Errorf("product %d: %w", productID, domain.ErrNotFound)
	}

	group := domain.AdditionalGroup{
		ID:    nextGroupID(prod),
		Name:  strings.TrimSpace(req.Name),
		Order: len(prod.Additionals) + 1,
		Items: []domain.AdditionalItem{},
	}
	for _, in := range req.Items {
		if strings.TrimSpace(in.Name) == "" {
			continue
		}
		group.Items = append(group.Items, domain.AdditionalItem{
			ID:          len(group.Items) + 1,
			Name:        strings.TrimSpace(in.Name),
			Description: in.Description,
			Price:       in.Price,
		})
	}
	renumberItems(group.Items)
	prod.Additionals = append(prod.Additionals, group)

	s.save(ctx, tenantID, snap)
	return group, nil
}

func (s *Service) DeleteAdditionalGroup(ctx context.Context, tenantID string, productID, groupID int) error {
	snap := s.load(ctx, tenantID)
	prod := findProduct(snap, productID)
	if prod == nil {
		return fmt.Errorf("product %d: %w", productID, domain.ErrNotFound)
	}
	for gi := range prod.Additionals {
		if prod.Additionals[gi].ID != groupID {
			continue
		}
		prod.Additionals = append(prod.Additionals[:gi], prod.Additionals[gi+1:]...)
		renumberGroups(prod.Additionals)
		s.save(ctx, tenantID, snap)
		return nil
	}
	return fmt.Errorf("additional group %d: %w", groupID, domain.ErrNotFound)
}

// CopyAdditionalGroup deep-copies one group into every target product's group
// list. Targets are validated up front so a bad id never leaves a partial
// copy; the source product is untouched.
func (s *Service) CopyAdditionalGroup(ctx context.Context, tenantID string, req domain.CopyAdditionalGroupRequest) error {
	if len(req.TargetProductIDs) == 0 {
		return domain.Invalid("target_product_ids", "is required")
	}

	snap := s.load(ctx, tenantID)
	src := findProduct(snap, req.SourceProductID)
	if src == nil {
		return fmt.Errorf("product %d: %w", req.SourceProductID, domain.ErrNotFound)
	}
	var group *domain.AdditionalGroup
	for gi := range src.Additionals {
		if src.Additionals[gi].ID == req.GroupID {
			group = &src.Additionals[gi]
			break
		}
	}
	if group == nil {
		return fmt.Errorf("additional group %d: %w", req.GroupID, domain.ErrNotFound)
	}

	targets := make([]*domain.Product, 0, len(req.TargetProductIDs))
	for _, id := range req.TargetProductIDs {
		t := findProduct(snap, id)
		if t == nil {
			return fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
		}
		targets = append(targets, t)
	}

	for _, t := range targets {
		cp := domain.AdditionalGroup{
			ID:    nextGroupID(t),
			Name:  group.Name,
			Order: len(t.Additionals) + 1,
			Items: make([]domain.AdditionalItem, len(group.Items)),
		}
		copy(cp.Items, group.Items)
		for i := range cp.Items {
			cp.Items[i].ID = i + 1
		}
		renumberItems(cp.Items)
		t.Additionals = append(t.Additionals, cp)
	}

	s.save(ctx, tenantID, snap)
	s.lg.Debug("additional_group_copied", map[string]any{
		"tenant_id": tenantID, "group_id": req.GroupID, "targets": len(targets),
	})
	return nil
}

func (s *Service) FindProduct(ctx context.Context, tenantID string, productID int) (domain.Product, error) {
	snap := s.load(ctx, tenantID)
	prod := findProduct(snap, productID)
	if prod == nil {
		return domain.Product{}, fmt.Errorf("product %d: %w", productID, domain.ErrNotFound)
	}
	return *prod, nil
}

func findProduct(snap *domain.CatalogSnapshot, productID int) *domain.Product {
	for ci := range snap.Categories {
		for pi := range snap.Categories[ci].Products {
			if snap.Categories[ci].Products[pi].ID == productID {
				return &snap.Categories[ci].Products[pi]
			}
		}
	}
	return nil
}
