package entities

import (
	"strings"
)

type Category string

const (
	CategoryMeatSeafood Category = "Thịt & Hải sản"
	CategoryVegetables  Category = "Rau củ"
	CategoryFruit       Category = "Trái cây"
	CategoryDairyEggs   Category = "Sữa & Trứng"
	CategorySpices      Category = "Gia vị"
	CategoryOther       Category = "Khác"
)

func Categories() []Category {
	return []Category{
		CategoryMeatSeafood,
		CategoryVegetables,
		CategoryFruit,
		CategoryDairyEggs,
		CategorySpices,
		CategoryOther,
	}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryMeatSeafood, CategoryVegetables, CategoryFruit,
		CategoryDairyEggs, CategorySpices, CategoryOther:
		return true
	}
	return false
}

func (c Category) Icon() string {
	switch c {
	case CategoryMeatSeafood:
		return "🥩"
	case CategoryVegetables:
		return "🥦"
	case CategoryFruit:
		return "🍎"
	case CategoryDairyEggs:
		return "🥛"
	case CategorySpices:
		return "🧂"
	default:
		return "📦"
	}
}

// categoryKeywords is matched in order; the first group containing a
// matching keyword wins.
var categoryKeywords = []struct {
	category Category
	keywords []string
}{
	{CategoryMeatSeafood, []string{"meat", "fish", "seafood"}},
	{CategoryVegetables, []string{"vegetable", "plant"}},
	{CategoryFruit, []string{"fruit"}},
	{CategoryDairyEggs, []string{"dairy", "egg", "cheese"}},
	{CategorySpices, []string{"spice", "sauce", "condiment", "oil"}},
}

// ClassifyExternalCategory maps a free-text category from a product
// database (e.g. a barcode lookup) to one of the fixed categories.
// Unrecognized input maps to CategoryOther.
func ClassifyExternalCategory(raw string) Category {
	lowered := strings.ToLower(raw)
	for _, group := range categoryKeywords {
		for _, keyword := range group.keywords {
			if strings.Contains(lowered, keyword) {
				return group.category
			}
		}
	}
	return CategoryOther
}
