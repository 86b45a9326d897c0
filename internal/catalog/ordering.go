package catalog

import "github.com/dominiofast/smartfood-landing-sub000/internal/domain"

// Renumber helpers keep sibling `order` values dense (1..N) after every
// mutation. Reordering removes the dragged entry and reinserts it at the
// target's position, then renumbers the whole sibling list.

func renumberCategories(cats []domain.Category) {
	for i := range cats {
		cats[i].Order = i + 1
	}
}

func renumberProducts(prods []domain.Product) {
	for i := range prods {
		prods[i].Order = i + 1
	}
}

func renumberGroups(groups []domain.AdditionalGroup) {
	for i := range groups {
		groups[i].Order = i + 1
	}
}

func renumberItems(items []domain.AdditionalItem) {
	for i := range items {
		items[i].Order = i + 1
	}
}

// moveBefore returns the index sequence for a drag: the element at from is
// removed and reinserted at the position to occupies after removal.
func moveCategory(cats []domain.Category, from, to int) []domain.Category {
	dragged := cats[from]
	rest := append(append([]domain.Category{}, cats[:from]...), cats[from+1:]...)
	if to > from {
		to--
	}
	out := append(rest[:to:to], append([]domain.Category{dragged}, rest[to:]...)...)
	return out
}

func moveProduct(prods []domain.Product, from, to int) []domain.Product {
	dragged := prods[from]
	rest := append(append([]domain.Product{}, prods[:from]...), prods[from+1:]...)
	if to > from {
		to--
	}
	out := append(rest[:to:to], append([]domain.Product{dragged}, rest[to:]...)...)
	return out
}

func indexOfCategory(cats []domain.Category, id int) int {
	for i := range cats {
		if cats[i].ID == id {
			return i
		}
	}
	return -1
}

func indexOfProduct(prods []domain.Product, id int) int {
	for i := range prods {
		if prods[i].ID == id {
			return i
		}
	}
	return -1
}

func nextCategoryID(snap *domain.CatalogSnapshot) int {
	max := 0
	for i := range snap.Categories {
		if snap.Categories[i].ID > max {
			max = snap.Categories[i].ID
		}
	}
	return max + 1
}

// Product ids are unique across the whole catalog, not per category, so the
// category back-reference stays unambiguous.
func nextProductID(snap *domain.CatalogSnapshot) int {
	max := 0
	for i := range snap.Categories {
		for j := range snap.Categories[i].Products {
			if snap.Categories[i].Products[j].ID > max {
				max = snap.Categories[i].Products[j].ID
			}
		}
	}
	return max + 1
}

func nextGroupID(p *domain.Product) int {
	max := 0
	for i := range p.Additionals {
		if p.Additionals[i].ID > max {
			max = p.Additionals[i].ID
		}
	}
	return max + 1
}
