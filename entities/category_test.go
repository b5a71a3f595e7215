package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nexa-tech-solution/tu-lanh-thong-minh/entities"
)

func TestClassifyExternalCategory(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want entities.Category
	}{
		{"frozen seafood mix", entities.CategoryMeatSeafood},
		{"MEAT products", entities.CategoryMeatSeafood},
		{"meat products", entities.CategoryMeatSeafood},
		{"canned fish", entities.CategoryMeatSeafood},
		{"Plant-based drinks", entities.CategoryVegetables},
		{"fresh vegetables", entities.CategoryVegetables},
		{"Tropical fruits", entities.CategoryFruit},
		{"Dairy desserts", entities.CategoryDairyEggs},
		{"free-range EGGS", entities.CategoryDairyEggs},
		{"aged cheese", entities.CategoryDairyEggs},
		{"hot sauce", entities.CategorySpices},
		{"olive oil", entities.CategorySpices},
		{"condiments", entities.CategorySpices},
		{"chocolate bar", entities.CategoryOther},
		{"", entities.CategoryOther},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, entities.ClassifyExternalCategory(tc.raw), "raw=%q", tc.raw)
	}
}

func TestClassifyExternalCategoryFirstGroupWins(t *testing.T) {
	t.Parallel()

	// "fish sauce" mentions both a meat keyword and a spice keyword;
	// the meat group is checked first.
	assert.Equal(t, entities.CategoryMeatSeafood, entities.ClassifyExternalCategory("fish sauce"))
}

func TestCategoryIcon(t *testing.T) {
	t.Parallel()

	for _, category := range entities.Categories() {
		assert.NotEmpty(t, category.Icon())
	}
	assert.Equal(t, "📦", entities.CategoryOther.Icon())
	assert.Equal(t, "📦", entities.Category("nonsense").Icon())
}

func TestCategoryValid(t *testing.T) {
	t.Parallel()

	for _, category := range entities.Categories() {
		assert.True(t, category.Valid())
	}
	assert.False(t, entities.Category("Snacks").Valid())
}
