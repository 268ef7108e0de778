package recommender

import (
	"sort"

	"tiendaml-pc5/internal/models"
)

// Reason tags: etiquetas cortas que indican qué señal dominó el score.
const (
	TagSimilarUsers    = "similar-users"
	TagMatchedCategory = "matched-category"
	TagMatchedBrand    = "matched-brand"
	TagPriceRange      = "price-range"
	TagPopular         = "popular"
	TagTopRated        = "top-rated"
)

// Scored es un candidato puntuado por alguno de los filtros.
type Scored struct {
	Product *models.ProductDoc
	Score   float64
	Tags    []string
}

// sortScored aplica el orden determinístico común a todos los filtros:
// score desc, luego rating desc, luego productId asc.
func sortScored(items []Scored) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Score != items[j].Score {
			return items[i].Score > items[j].Score
		}
		if items[i].Product.AverageRating != items[j].Product.AverageRating {
			return items[i].Product.AverageRating > items[j].Product.AverageRating
		}
		return items[i].Product.ProductID < items[j].Product.ProductID
	})
}

// hasTag busca una etiqueta en la lista.
func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
