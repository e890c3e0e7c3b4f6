package models

// CategoryAll is a query filter meaning "every category". It is never
// stored on an entry.
const CategoryAll = "All"

// categories is the fixed set an entry may belong to.
var categories = []string{
	"Social Media",
	"Work",
	"Shopping",
	"Security & Tech",
	"Banking",
	"Education",
}

// Categories returns the storable category names in display order.
func Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

// ValidCategory reports whether c is a storable category name.
// CategoryAll is deliberately not valid here.
func ValidCategory(c string) bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}
