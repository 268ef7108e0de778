package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"tiendaml-pc5/internal/models"
	"tiendaml-pc5/internal/recommender"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGen struct {
	enabled bool
	out     string
	err     error
	calls   int
}

func (f *fakeGen) Enabled() bool { return f.enabled }

func (f *fakeGen) Generate(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.out, f.err
}

func testItems() []models.RecItem {
	return []models.RecItem{
		{
			ProductID:  1,
			Score:      0.9,
			ReasonTags: []string{recommender.TagSimilarUsers},
			Product:    &models.ProductDoc{ProductID: 1, Name: "Laptop Pro X", Category: "electronics"},
		},
		{
			ProductID:  2,
			Score:      0.4,
			ReasonTags: []string{recommender.TagMatchedCategory},
			Product:    &models.ProductDoc{ProductID: 2, Name: "Mouse Gamer", Category: "electronics"},
		},
	}
}

func testUser() *models.UserDoc {
	return &models.UserDoc{UserID: 7, Username: "ana"}
}

func TestExplainItems_GeminiOK(t *testing.T) {
	gen := &fakeGen{enabled: true, out: "Te va a encantar."}
	svc := &RecommendService{gen: gen, genTimeout: time.Second}

	items := testItems()
	svc.explainItems(context.Background(), testUser(), "hybrid", items)

	assert.Equal(t, 2, gen.calls)
	for _, it := range items {
		assert.Equal(t, "Te va a encantar.", it.Explanation)
	}
}

func TestExplainItems_GeminiFallaUsaPlantilla(t *testing.T) {
	gen := &fakeGen{enabled: true, err: errors.New("upstream 429")}
	svc := &RecommendService{gen: gen, genTimeout: time.Second}

	items := testItems()
	svc.explainItems(context.Background(), testUser(), "hybrid", items)

	// el fallo externo nunca se propaga: cada ítem termina con texto local
	require.Equal(t, 2, gen.calls)
	for _, it := range items {
		assert.NotEmpty(t, it.Explanation)
		assert.Contains(t, it.Explanation, it.Product.Name)
	}
	// la plantilla depende del primer reason tag
	assert.NotEqual(t, items[0].Explanation, items[1].Explanation)
}

func TestExplainItems_GeminiDeshabilitadoNoLlama(t *testing.T) {
	gen := &fakeGen{enabled: false}
	svc := &RecommendService{gen: gen, genTimeout: time.Second}

	items := testItems()
	svc.explainItems(context.Background(), testUser(), "content", items)

	assert.Zero(t, gen.calls)
	for _, it := range items {
		assert.NotEmpty(t, it.Explanation)
		assert.Contains(t, it.Explanation, it.Product.Name)
	}
}

func TestExplainItems_NoTocaScoresNiOrden(t *testing.T) {
	gen := &fakeGen{enabled: true, out: "ok"}
	svc := &RecommendService{gen: gen, genTimeout: time.Second}

	items := testItems()
	svc.explainItems(context.Background(), testUser(), "auto", items)

	assert.Equal(t, 1, items[0].ProductID)
	assert.InDelta(t, 0.9, items[0].Score, 1e-9)
	assert.Equal(t, 2, items[1].ProductID)
	assert.InDelta(t, 0.4, items[1].Score, 1e-9)
}

func TestExplainSimilar_Fallback(t *testing.T) {
	svc := &RecommendService{gen: &fakeGen{enabled: false}, genTimeout: time.Second}

	source := &models.ProductDoc{ProductID: 3, Name: "Teclado Mecánico"}
	sc := recommender.Scored{
		Product: &models.ProductDoc{ProductID: 4, Name: "Teclado Compacto"},
		Score:   0.8,
	}

	text := svc.explainSimilar(context.Background(), source, sc)
	assert.True(t, strings.Contains(text, source.Name))
}

func TestCacheKey_DistingueParametros(t *testing.T) {
	a := cacheKey(RecRequest{UserID: 1, Limit: 5, Strategy: "auto", Explain: true})
	b := cacheKey(RecRequest{UserID: 1, Limit: 5, Strategy: "auto", Explain: false})
	c := cacheKey(RecRequest{UserID: 1, Limit: 10, Strategy: "auto", Explain: true})
	d := cacheKey(RecRequest{UserID: 2, Limit: 5, Strategy: "auto", Explain: true})

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, a, d)
}
