package recommender

import "tiendaml-pc5/internal/models"

// Collaborative implementa el filtro colaborativo user-based: puntúa los
// candidatos agregando los votos ponderados de los usuarios similares al
// usuario objetivo.
//
// Devuelve lista vacía (no error) si el usuario no tiene interacciones o si
// nadie comparte productos con él; el orquestador decide el fallback.
func (e *Engine) Collaborative(ds *Dataset, userID int) []Scored {
	target := ds.UserVector(userID)
	if len(target) == 0 {
		return nil
	}

	purchased := ds.PurchasedBy(userID)

	// 1) Similitud contra todos los demás usuarios con alguna interacción
	sims := make(map[int]float64)
	for otherID := range ds.byUser {
		if otherID == userID {
			continue
		}
		sim := UserSimilarity(target, ds.UserVector(otherID))
		if sim > e.opts.MinUserSimilarity {
			sims[otherID] = sim
		}
	}
	if len(sims) == 0 {
		return nil
	}

	// 2) Voto ponderado: sum(sim(target, other) * peso(tipo))
	votes := make(map[int]float64)
	for otherID, sim := range sims {
		for _, it := range ds.byUser[otherID] {
			if purchased[it.ProductID] {
				continue
			}
			p := ds.Product(it.ProductID)
			if p == nil || !p.IsAvailable {
				continue
			}
			votes[it.ProductID] += sim * models.InteractionWeight(it.Type)
		}
	}

	// 3) Normalizar al máximo voto acumulado
	maxVote := 0.0
	for _, v := range votes {
		if v > maxVote {
			maxVote = v
		}
	}
	if maxVote <= 0 {
		return nil
	}

	items := make([]Scored, 0, len(votes))
	for pid, v := range votes {
		if v <= 0 {
			continue
		}
		items = append(items, Scored{
			Product: ds.Product(pid),
			Score:   v / maxVote,
			Tags:    []string{TagSimilarUsers},
		})
	}

	sortScored(items)
	return items
}
