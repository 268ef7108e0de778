package recommender

import (
	"testing"

	"tiendaml-pc5/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestUserSimilaritySymmetric(t *testing.T) {
	a := map[int]float64{1: 10, 2: 8, 3: 2}
	b := map[int]float64{2: 6, 3: 10, 4: 5}

	assert.InDelta(t, UserSimilarity(a, b), UserSimilarity(b, a), 1e-9)
}

func TestUserSimilaritySelfIsOne(t *testing.T) {
	a := map[int]float64{1: 10, 2: 8, 3: 2}
	assert.InDelta(t, 1.0, UserSimilarity(a, a), 1e-9)
}

func TestUserSimilarityDisjointIsZero(t *testing.T) {
	a := map[int]float64{1: 10, 2: 8}
	b := map[int]float64{3: 6, 4: 10}

	assert.Equal(t, 0.0, UserSimilarity(a, b))
}

func TestUserSimilarityEmptyVector(t *testing.T) {
	a := map[int]float64{1: 10}
	assert.Equal(t, 0.0, UserSimilarity(a, nil))
	assert.Equal(t, 0.0, UserSimilarity(nil, a))
}

func TestUserSimilarityInRange(t *testing.T) {
	a := map[int]float64{1: 10, 2: 2, 5: 7}
	b := map[int]float64{1: 3, 2: 9, 6: 1}

	sim := UserSimilarity(a, b)
	assert.GreaterOrEqual(t, sim, 0.0)
	assert.LessOrEqual(t, sim, 1.0)
}

func prod(id int, category, subcategory, brand string, price float64) models.ProductDoc {
	return models.ProductDoc{
		ProductID:   id,
		Name:        "producto",
		Category:    category,
		Subcategory: subcategory,
		Brand:       brand,
		Price:       price,
		IsAvailable: true,
	}
}

func TestProductSimilaritySelfIsOne(t *testing.T) {
	p := prod(1, "Electronics", "Smartphones", "Samsung", 499.90)
	assert.InDelta(t, 1.0, ProductSimilarity(&p, &p), 1e-9)
}

func TestProductSimilaritySymmetric(t *testing.T) {
	p1 := prod(1, "Electronics", "Smartphones", "Samsung", 499.90)
	p2 := prod(2, "Electronics", "Laptops", "Dell", 899.00)

	assert.InDelta(t, ProductSimilarity(&p1, &p2), ProductSimilarity(&p2, &p1), 1e-9)
}

func TestProductSimilarityCategoryAndBrand(t *testing.T) {
	p1 := prod(1, "Electronics", "Smartphones", "Samsung", 500)
	same := prod(2, "Electronics", "Smartphones", "Samsung", 500)
	other := prod(3, "Books", "Fiction", "Generic", 15)

	assert.Greater(t, ProductSimilarity(&p1, &same), ProductSimilarity(&p1, &other))
}

func TestProductSimilarityPriceBand(t *testing.T) {
	p1 := prod(1, "Electronics", "Smartphones", "Samsung", 100)
	near := prod(2, "Electronics", "Smartphones", "Samsung", 110)
	far := prod(3, "Electronics", "Smartphones", "Samsung", 1000)

	// misma categoría/subcategoría/marca: la diferencia la pone el precio
	assert.Greater(t, ProductSimilarity(&p1, &near), ProductSimilarity(&p1, &far))

	// fuera de la banda del 30% el precio no aporta nada
	assert.InDelta(t, categoryWeight+subcategoryWeight+brandWeight, ProductSimilarity(&p1, &far), 1e-9)
}

func TestProductSimilarityAlwaysInRange(t *testing.T) {
	ps := []models.ProductDoc{
		prod(1, "Electronics", "", "", 0),
		prod(2, "Fashion", "Shoes", "Nike", 79.99),
		prod(3, "Fashion", "Shoes", "Adidas", 120),
		prod(4, "", "", "", 999999),
	}
	for i := range ps {
		for j := range ps {
			sim := ProductSimilarity(&ps[i], &ps[j])
			assert.GreaterOrEqual(t, sim, 0.0)
			assert.LessOrEqual(t, sim, 1.0)
		}
	}
}
