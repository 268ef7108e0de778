package recommender

// Hybrid combina los scores colaborativo y por contenido sobre la unión de
// candidatos de ambos:
//
//	hybrid = wc*collab + wt*content
//
// con wc+wt = 1 (default 0.7/0.3). Un producto ausente en una de las listas
// aporta 0 por ese lado.
func (e *Engine) Hybrid(ds *Dataset, userID int) []Scored {
	collab := e.Collaborative(ds, userID)
	content := e.Content(ds, userID)

	type merged struct {
		item  Scored
		score float64
	}
	byID := make(map[int]*merged)

	for _, s := range collab {
		byID[s.Product.ProductID] = &merged{
			item:  Scored{Product: s.Product, Tags: append([]string(nil), s.Tags...)},
			score: e.opts.CollabWeight * s.Score,
		}
	}
	for _, s := range content {
		m, ok := byID[s.Product.ProductID]
		if !ok {
			m = &merged{item: Scored{Product: s.Product}}
			byID[s.Product.ProductID] = m
		}
		m.score += e.opts.ContentWeight * s.Score
		for _, t := range s.Tags {
			if !hasTag(m.item.Tags, t) {
				m.item.Tags = append(m.item.Tags, t)
			}
		}
	}

	items := make([]Scored, 0, len(byID))
	for _, m := range byID {
		m.item.Score = m.score
		items = append(items, m.item)
	}

	sortScored(items)
	return items
}
