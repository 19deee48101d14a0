// Package storefront implements the public shop page logic: the multi-facet
// product filter and the derivation of the selectable facet values.
package storefront

import (
	"strings"

	"vitrine/internal/domain"
)

// Delivery filter values. A product counts as pronta entrega when its
// delivery time mentions the marker; everything else, including products
// without a delivery time, is encomenda.
const (
	DeliveryReady = "pronta"
	DeliveryOrder = "encomenda"

	readyMarker = "pronta"
)

// Query carries one optional constraint per facet plus a free-text search.
// Empty fields impose no constraint.
type Query struct {
	Text      string
	Category  string
	Storage   string
	Color     string
	Condition string
	Delivery  string // "", DeliveryReady or DeliveryOrder
}

func (q Query) IsZero() bool {
	return q.Text == "" && q.Category == "" && q.Storage == "" && q.Color == "" &&
		q.Condition == "" && q.Delivery == ""
}

// Filter returns the products matching every set constraint, preserving the
// input order. It never errors: a value no product carries just matches
// nothing.
func Filter(products []domain.Product, q Query) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if matches(p, q) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p domain.Product, q Query) bool {
	if q.Text != "" && !matchesText(p, q.Text) {
		return false
	}
	if q.Category != "" && p.Category != q.Category {
		return false
	}
	if q.Storage != "" && p.Storage.String != q.Storage {
		return false
	}
	if q.Color != "" && p.Color.String != q.Color {
		return false
	}
	if q.Condition != "" && p.Condition.String != q.Condition {
		return false
	}
	switch q.Delivery {
	case DeliveryReady:
		if !isReady(p) {
			return false
		}
	case DeliveryOrder:
		if isReady(p) {
			return false
		}
	}
	return true
}

func matchesText(p domain.Product, text string) bool {
	needle := strings.ToLower(text)
	for _, hay := range []string{p.Name, p.Storage.String, p.Color.String} {
		if hay != "" && strings.Contains(strings.ToLower(hay), needle) {
			return true
		}
	}
	return false
}

func isReady(p domain.Product) bool {
	return p.DeliveryTime.Valid &&
		strings.Contains(strings.ToLower(p.DeliveryTime.String), readyMarker)
}

// Facets are the value universes offered as filter options, derived from the
// product list itself so sold-out values never show up as choices.
type Facets struct {
	Categories []string
	Storages   []string
	Colors     []string
	Conditions []string
}

// Compute derives the facet universes from the current product list: the
// distinct non-null values of each field, in first-seen order. Callers must
// recompute whenever the list changes.
func Compute(products []domain.Product) Facets {
	var f Facets
	seenCat := map[string]bool{}
	seenSto := map[string]bool{}
	seenCol := map[string]bool{}
	seenCon := map[string]bool{}
	for _, p := range products {
		if !seenCat[p.Category] {
			seenCat[p.Category] = true
			f.Categories = append(f.Categories, p.Category)
		}
		if p.Storage.Valid && p.Storage.String != "" && !seenSto[p.Storage.String] {
			seenSto[p.Storage.String] = true
			f.Storages = append(f.Storages, p.Storage.String)
		}
		if p.Color.Valid && p.Color.String != "" && !seenCol[p.Color.String] {
			seenCol[p.Color.String] = true
			f.Colors = append(f.Colors, p.Color.String)
		}
		if p.Condition.Valid && p.Condition.String != "" && !seenCon[p.Condition.String] {
			seenCon[p.Condition.String] = true
			f.Conditions = append(f.Conditions, p.Condition.String)
		}
	}
	return f
}
