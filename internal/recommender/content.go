package recommender

import "tiendaml-pc5/internal/models"

// Content implementa el filtro por contenido: recomienda productos similares
// (por atributos) a los que el usuario compró o calificó alto.
//
// Perfil vacío => lista vacía (no error).
func (e *Engine) Content(ds *Dataset, userID int) []Scored {
	profile := e.userProfile(ds, userID)
	if len(profile) == 0 {
		return nil
	}

	inProfile := make(map[int]bool, len(profile))
	for _, p := range profile {
		inProfile[p.ProductID] = true
	}
	purchased := ds.PurchasedBy(userID)

	var items []Scored
	for i := range ds.Products {
		cand := &ds.Products[i]
		if !cand.IsAvailable || purchased[cand.ProductID] || inProfile[cand.ProductID] {
			continue
		}

		// política fija: máxima similitud contra el perfil
		best := 0.0
		var bestMatch *models.ProductDoc
		for _, p := range profile {
			if sim := ProductSimilarity(cand, p); sim > best {
				best = sim
				bestMatch = p
			}
		}
		if best <= 0 || bestMatch == nil {
			continue
		}

		items = append(items, Scored{
			Product: cand,
			Score:   best,
			Tags:    contentTags(cand, bestMatch),
		})
	}

	sortScored(items)
	return items
}

// userProfile: productos con compra o rating >= HighRating.
func (e *Engine) userProfile(ds *Dataset, userID int) []*models.ProductDoc {
	seen := make(map[int]bool)
	var profile []*models.ProductDoc

	for _, it := range ds.InteractionsOf(userID) {
		liked := it.Type == models.InteractionPurchase ||
			(it.Type == models.InteractionRating && it.Rating != nil && *it.Rating >= e.opts.HighRating)
		if !liked || seen[it.ProductID] {
			continue
		}
		if p := ds.Product(it.ProductID); p != nil {
			seen[it.ProductID] = true
			profile = append(profile, p)
		}
	}
	return profile
}

// contentTags deriva las etiquetas según qué atributo coincidió con el
// producto del perfil que dio la mejor similitud.
func contentTags(cand, match *models.ProductDoc) []string {
	var tags []string
	if cand.Category == match.Category {
		tags = append(tags, TagMatchedCategory)
	}
	if cand.Brand != "" && cand.Brand == match.Brand {
		tags = append(tags, TagMatchedBrand)
	}
	if priceCloseness(cand.Price, match.Price) > 0 {
		tags = append(tags, TagPriceRange)
	}
	if len(tags) == 0 {
		tags = append(tags, TagPriceRange)
	}
	return tags
}
