package recommender

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackExplanationNeverEmpty(t *testing.T) {
	p := prod(1, "Electronics", "Smartphones", "Samsung", 499)
	p.Name = "Smartphone Pro"
	p.AverageRating = 4.6
	p.ReviewCount = 120

	cases := [][]string{
		{TagSimilarUsers},
		{TagMatchedCategory},
		{TagMatchedBrand},
		{TagPriceRange},
		{TagPopular},
		{TagTopRated},
		{"etiqueta-desconocida"},
		nil,
	}
	for _, tags := range cases {
		text := FallbackExplanation(&p, tags)
		assert.NotEmpty(t, text)
		assert.Contains(t, text, p.Name)
	}
}

func TestFallbackExplanationUsesDominantTag(t *testing.T) {
	p := prod(2, "Fashion", "Shoes", "Nike", 80)
	p.Name = "Zapatillas Runner"

	byBrand := FallbackExplanation(&p, []string{TagMatchedBrand, TagPriceRange})
	assert.Contains(t, byBrand, "Nike")

	byCategory := FallbackExplanation(&p, []string{TagMatchedCategory})
	assert.Contains(t, byCategory, "Fashion")
}
