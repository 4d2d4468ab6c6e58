package usecase

import (
	"strings"

	"forro_orcamento/internal/domain/entities"
	"forro_orcamento/internal/usecase/interfaces"
)

// Predicate is one condition a catalog product must satisfy.
type Predicate func(entities.Product) bool

// MatchRule is a named conjunction of predicates. Rules are evaluated in
// order; the first rule with any matching product wins.
type MatchRule struct {
	Name       string
	Predicates []Predicate
}

func (r MatchRule) Matches(p entities.Product) bool {
	for _, pred := range r.Predicates {
		if !pred(p) {
			return false
		}
	}
	return true
}

func Rule(name string, preds ...Predicate) MatchRule {
	return MatchRule{Name: name, Predicates: preds}
}

func InCategory(c entities.Category) Predicate {
	return func(p entities.Product) bool { return p.Category == c }
}

// SubCategoryContains matches when the sub-category contains any of the tags.
// No tags means no constraint.
func SubCategoryContains(tags ...string) Predicate {
	return func(p entities.Product) bool {
		if len(tags) == 0 {
			return true
		}
		for _, tag := range tags {
			if tag != "" && strings.Contains(p.SubCategory, tag) {
				return true
			}
		}
		return false
	}
}

func SubCategoryIs(sub string) Predicate {
	return func(p entities.Product) bool { return p.SubCategory == sub }
}

// ColorIs compares case-insensitively. An empty color means no constraint.
func ColorIs(color string) Predicate {
	return func(p entities.Product) bool {
		return color == "" || strings.EqualFold(p.Color, color)
	}
}

// ProductResolver picks the best matching catalog product for a slot of
// the budget (trim, corner, structure, fastener).
type ProductResolver struct {
	catalog interfaces.ICatalogRepository
}

func NewProductResolver(catalog interfaces.ICatalogRepository) *ProductResolver {
	return &ProductResolver{catalog: catalog}
}

// First evaluates rules in priority order and returns the first catalog
// product satisfying the earliest rule that matches anything, along with
// that rule's name.
func (r *ProductResolver) First(rules ...MatchRule) (entities.Product, string, bool) {
	if r == nil || r.catalog == nil {
		return entities.Product{}, "", false
	}
	all := r.catalog.All()
	for _, rule := range rules {
		for _, p := range all {
			if rule.Matches(p) {
				return p, rule.Name, true
			}
		}
	}
	return entities.Product{}, "", false
}

// Resolve finds a product by category and optional sub-category tag and
// color. When a color is requested but absent, the neutral color variant is
// returned instead, if there is one.
func (r *ProductResolver) Resolve(category entities.Category, subCategory, color string) (entities.Product, bool) {
	p, _, ok := r.First(ResolveRules(category, subCategory, color)...)
	return p, ok
}

// ResolveRules is the fallback hierarchy behind Resolve.
func ResolveRules(category entities.Category, subCategory, color string) []MatchRule {
	var sub []string
	if subCategory != "" {
		sub = []string{subCategory}
	}
	rules := []MatchRule{
		Rule("exact", InCategory(category), SubCategoryContains(sub...), ColorIs(color)),
	}
	if color != "" {
		rules = append(rules, Rule("neutral-color", InCategory(category), SubCategoryContains(sub...), ColorIs(entities.NeutralColor)))
	}
	return rules
}
