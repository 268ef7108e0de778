package recommender

import (
	"math"

	"tiendaml-pc5/internal/models"
)

// Pesos de la similitud combinada entre usuarios.
const (
	jaccardWeight = 0.4
	cosineWeight  = 0.6
)

// Pesos de la similitud por atributos entre productos.
// Suman 1: un producto comparado consigo mismo siempre da 1.
const (
	categoryWeight    = 0.40
	subcategoryWeight = 0.20
	brandWeight       = 0.25
	priceWeight       = 0.15

	// distancia relativa de precio a partir de la cual ya no aporta nada
	priceBand = 0.30
)

// UserSimilarity calcula la similitud entre dos vectores de interacción
// {productId: score ponderado}. Combina Jaccard sobre los sets de productos
// con coseno sobre los scores de los productos en común:
//
//	sim = 0.4*jaccard + 0.6*cosine
//
// Usuarios disjuntos dan 0 (no es error). Es simétrica y sim(u,u) = 1.
func UserSimilarity(a, b map[int]float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	// Jaccard: |A ∩ B| / |A ∪ B|
	inter := 0
	for pid := range a {
		if _, ok := b[pid]; ok {
			inter++
		}
	}
	if inter == 0 {
		return 0
	}
	union := len(a) + len(b) - inter
	jaccard := float64(inter) / float64(union)

	// Coseno sobre los productos en común
	var dot, normA, normB float64
	for pid, va := range a {
		vb, ok := b[pid]
		if !ok {
			continue
		}
		dot += va * vb
		normA += va * va
		normB += vb * vb
	}

	cosine := 0.0
	if normA > 0 && normB > 0 {
		cosine = dot / (math.Sqrt(normA) * math.Sqrt(normB))
	}

	return jaccardWeight*jaccard + cosineWeight*cosine
}

// ProductSimilarity calcula la similitud por atributos entre dos productos:
// match binario en categoría/subcategoría/marca más la cercanía de precio.
// Siempre devuelve un valor en [0,1]; es simétrica y sim(p,p) = 1.
func ProductSimilarity(p1, p2 *models.ProductDoc) float64 {
	score := 0.0

	if p1.Category == p2.Category {
		score += categoryWeight
	}
	if p1.Subcategory == p2.Subcategory {
		score += subcategoryWeight
	}
	if p1.Brand == p2.Brand {
		score += brandWeight
	}

	score += priceWeight * priceCloseness(p1.Price, p2.Price)

	return score
}

// priceCloseness ∈ [0,1]: 1 con precios iguales, 0 si la distancia relativa
// supera priceBand del precio mayor.
func priceCloseness(a, b float64) float64 {
	max := math.Max(a, b)
	if max <= 0 {
		return 1
	}
	diff := math.Abs(a-b) / max
	if diff >= priceBand {
		return 0
	}
	return 1 - diff/priceBand
}
