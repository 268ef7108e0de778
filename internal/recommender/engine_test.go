package recommender

import (
	"testing"

	"tiendaml-pc5/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func interaction(userID, productID int, typ string) models.InteractionDoc {
	return models.InteractionDoc{UserID: userID, ProductID: productID, Type: typ}
}

func ratingInteraction(userID, productID int, value float64) models.InteractionDoc {
	return models.InteractionDoc{
		UserID:    userID,
		ProductID: productID,
		Type:      models.InteractionRating,
		Rating:    &value,
	}
}

// fixtureDataset arma un catálogo chico con dos usuarios que comparten
// compras. Sirve de base para los escenarios de los filtros.
//
//	A compró P5 y P6. B compró P5, P6 y P7.
func fixtureDataset() *Dataset {
	products := []models.ProductDoc{
		prod(1, "Electronics", "Smartphones", "Acme", 500),
		prod(2, "Electronics", "Laptops", "Acme", 900),
		prod(3, "Electronics", "Smartphones", "Acme", 520),
		prod(4, "Books", "Fiction", "Otra", 15),
		prod(5, "Fashion", "Shoes", "Nike", 80),
		prod(6, "Fashion", "Shoes", "Adidas", 95),
		prod(7, "Fashion", "Accessories", "Nike", 40),
	}
	interactions := []models.InteractionDoc{
		interaction(1, 5, models.InteractionPurchase),
		interaction(1, 6, models.InteractionPurchase),
		interaction(2, 5, models.InteractionPurchase),
		interaction(2, 6, models.InteractionPurchase),
		interaction(2, 7, models.InteractionPurchase),
	}
	users := []models.UserDoc{
		{UserID: 1, Username: "ana"},
		{UserID: 2, Username: "bruno"},
		{UserID: 3, Username: "carla"}, // sin interacciones
	}
	return NewDataset(users, products, interactions)
}

func TestCollaborativeRecommendsSharedNeighborPurchase(t *testing.T) {
	e := NewEngine(DefaultOptions())
	ds := fixtureDataset()

	items := e.Collaborative(ds, 1)
	require.NotEmpty(t, items)

	found := false
	for _, it := range items {
		if it.Product.ProductID == 7 {
			found = true
			assert.Greater(t, it.Score, 0.0)
			assert.Contains(t, it.Tags, TagSimilarUsers)
		}
	}
	assert.True(t, found, "P7 debería ser recomendado a A (B la compró y comparten P5/P6)")
}

func TestCollaborativeNeverReturnsPurchased(t *testing.T) {
	e := NewEngine(DefaultOptions())
	ds := fixtureDataset()

	for _, it := range e.Collaborative(ds, 1) {
		assert.NotContains(t, []int{5, 6}, it.Product.ProductID)
	}
}

func TestCollaborativeEmptyForUserWithoutHistory(t *testing.T) {
	e := NewEngine(DefaultOptions())
	ds := fixtureDataset()

	assert.Empty(t, e.Collaborative(ds, 3))
}

func TestCollaborativeEmptyWhenNoOverlap(t *testing.T) {
	e := NewEngine(DefaultOptions())
	products := []models.ProductDoc{
		prod(1, "Electronics", "Smartphones", "Acme", 500),
		prod(2, "Books", "Fiction", "Otra", 15),
	}
	// cada usuario interactuó con un producto distinto: no hay vecinos
	ds := NewDataset(nil, products, []models.InteractionDoc{
		interaction(1, 1, models.InteractionPurchase),
		interaction(2, 2, models.InteractionPurchase),
	})

	assert.Empty(t, e.Collaborative(ds, 1))
}

func TestContentRanksSharedAttributesFirst(t *testing.T) {
	e := NewEngine(DefaultOptions())

	// U compró P1 y P2 (Electronics/Acme); P3 comparte categoría+marca,
	// P4 no comparte nada.
	products := []models.ProductDoc{
		prod(1, "Electronics", "Smartphones", "Acme", 500),
		prod(2, "Electronics", "Laptops", "Acme", 900),
		prod(3, "Electronics", "Smartphones", "Acme", 520),
		prod(4, "Books", "Fiction", "Otra", 15),
	}
	ds := NewDataset(nil, products, []models.InteractionDoc{
		interaction(1, 1, models.InteractionPurchase),
		interaction(1, 2, models.InteractionPurchase),
	})

	items := e.Content(ds, 1)
	require.Len(t, items, 2)

	assert.Equal(t, 3, items[0].Product.ProductID)
	assert.Equal(t, 4, items[1].Product.ProductID)
	assert.Greater(t, items[0].Score, items[1].Score)
	assert.Contains(t, items[0].Tags, TagMatchedCategory)
	assert.Contains(t, items[0].Tags, TagMatchedBrand)
}

func TestContentProfileIncludesHighRatings(t *testing.T) {
	e := NewEngine(DefaultOptions())
	products := []models.ProductDoc{
		prod(1, "Fashion", "Shoes", "Nike", 80),
		prod(2, "Fashion", "Shoes", "Nike", 85),
	}
	// rating 5 mete a P1 al perfil aunque no haya compra
	ds := NewDataset(nil, products, []models.InteractionDoc{
		ratingInteraction(1, 1, 5),
	})

	items := e.Content(ds, 1)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Product.ProductID)
}

func TestContentEmptyProfile(t *testing.T) {
	e := NewEngine(DefaultOptions())
	ds := fixtureDataset()

	// carla solo tiene views en este dataset extendido
	ds2 := NewDataset(ds.Users, ds.Products, append(ds.Interactions,
		interaction(3, 1, models.InteractionView),
	))
	assert.Empty(t, e.Content(ds2, 3))
}

func TestHybridWeightAlgebra(t *testing.T) {
	opts := DefaultOptions()
	e := NewEngine(opts)
	ds := fixtureDataset()

	collab := make(map[int]float64)
	for _, it := range e.Collaborative(ds, 1) {
		collab[it.Product.ProductID] = it.Score
	}
	content := make(map[int]float64)
	for _, it := range e.Content(ds, 1) {
		content[it.Product.ProductID] = it.Score
	}

	items := e.Hybrid(ds, 1)
	require.NotEmpty(t, items)

	for _, it := range items {
		want := opts.CollabWeight*collab[it.Product.ProductID] +
			opts.ContentWeight*content[it.Product.ProductID]
		assert.InDelta(t, want, it.Score, 1e-9)
	}

	// la unión debe incluir los candidatos de ambos lados
	assert.Equal(t, len(items), len(unionKeys(collab, content)))
}

func unionKeys(a, b map[int]float64) map[int]bool {
	u := make(map[int]bool)
	for k := range a {
		u[k] = true
	}
	for k := range b {
		u[k] = true
	}
	return u
}

func TestRecommendLimitOrderAndUniqueness(t *testing.T) {
	e := NewEngine(DefaultOptions())
	ds := fixtureDataset()

	items, used := e.Recommend(ds, 1, StrategyAuto, 5)
	assert.NotEqual(t, StrategyAuto, used)
	assert.LessOrEqual(t, len(items), 5)

	seen := make(map[int]bool)
	for i, it := range items {
		assert.False(t, seen[it.Product.ProductID], "producto duplicado")
		seen[it.Product.ProductID] = true
		if i > 0 {
			assert.GreaterOrEqual(t, items[i-1].Score, it.Score)
		}
	}
}

func TestRecommendAutoZeroInteractionsFallsToPopular(t *testing.T) {
	e := NewEngine(DefaultOptions())
	ds := fixtureDataset()

	items, used := e.Recommend(ds, 3, StrategyAuto, 5)
	assert.Equal(t, StrategyPopular, used)
	assert.NotEmpty(t, items, "con productos en catálogo el piso nunca es vacío")
}

func TestRecommendAutoRichHistoryResolvesHybrid(t *testing.T) {
	e := NewEngine(DefaultOptions())
	ds := fixtureDataset()

	// engordar historial de A hasta superar el umbral de historial rico
	extra := ds.Interactions
	for i := 0; i < DefaultOptions().RichHistoryThreshold; i++ {
		extra = append(extra, interaction(1, 1+(i%4), models.InteractionView))
	}
	rich := NewDataset(ds.Users, ds.Products, extra)

	_, used := e.Recommend(rich, 1, StrategyAuto, 5)
	assert.Equal(t, StrategyHybrid, used)
}

func TestRecommendAutoSomeHistoryResolvesContent(t *testing.T) {
	e := NewEngine(DefaultOptions())
	ds := fixtureDataset()

	_, used := e.Recommend(ds, 1, StrategyAuto, 5)
	assert.Equal(t, StrategyContent, used)
}

func TestRecommendExplicitStrategyIsRespected(t *testing.T) {
	e := NewEngine(DefaultOptions())
	ds := fixtureDataset()

	_, used := e.Recommend(ds, 1, StrategyCollaborative, 5)
	assert.Equal(t, StrategyCollaborative, used)
}

func TestSimilarProductsExcludesSourceAndRanks(t *testing.T) {
	e := NewEngine(DefaultOptions())
	ds := fixtureDataset()

	items := e.SimilarProducts(ds, 1, 3)
	require.NotEmpty(t, items)
	assert.LessOrEqual(t, len(items), 3)

	for _, it := range items {
		assert.NotEqual(t, 1, it.Product.ProductID)
	}
	// P3 comparte categoría, subcategoría, marca y precio cercano con P1
	assert.Equal(t, 3, items[0].Product.ProductID)
}

func TestSimilarProductsUnknownSource(t *testing.T) {
	e := NewEngine(DefaultOptions())
	ds := fixtureDataset()

	assert.Empty(t, e.SimilarProducts(ds, 999, 5))
}

func TestParseStrategy(t *testing.T) {
	for name, want := range map[string]Strategy{
		"":              StrategyAuto,
		"auto":          StrategyAuto,
		"hybrid":        StrategyHybrid,
		"collaborative": StrategyCollaborative,
		"content":       StrategyContent,
	} {
		got, err := ParseStrategy(name)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseStrategy("bogus")
	assert.ErrorIs(t, err, ErrUnknownStrategy)

	// "popular" solo existe como estrategia resuelta
	_, err = ParseStrategy("popular")
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}
