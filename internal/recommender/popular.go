package recommender

// Popular es el piso final del orquestador: ranking por rating y cantidad de
// reseñas cuando ni el filtro colaborativo ni el de contenido produjeron
// nada. Mientras existan productos disponibles nunca devuelve vacío.
func (e *Engine) Popular(ds *Dataset, userID int) []Scored {
	purchased := ds.PurchasedBy(userID)

	maxReviews := 0
	for i := range ds.Products {
		if ds.Products[i].ReviewCount > maxReviews {
			maxReviews = ds.Products[i].ReviewCount
		}
	}

	var items []Scored
	for i := range ds.Products {
		p := &ds.Products[i]
		if !p.IsAvailable || purchased[p.ProductID] {
			continue
		}

		// 70% rating normalizado, 30% volumen de reseñas
		score := 0.7 * (p.AverageRating / 5.0)
		if maxReviews > 0 {
			score += 0.3 * float64(p.ReviewCount) / float64(maxReviews)
		}

		tags := []string{TagPopular}
		if p.AverageRating >= 4.5 {
			tags = append(tags, TagTopRated)
		}

		items = append(items, Scored{Product: p, Score: score, Tags: tags})
	}

	sortScored(items)
	return items
}
