package recommender

// Límites y defaults del orquestador.
const (
	DefaultLimit = 5
	MinLimit     = 1
	MaxLimit     = 20
)

// Options son las constantes afinables del motor. Los valores por defecto
// vienen del comportamiento de referencia; no son contratos bit-exactos.
type Options struct {
	// pesos del blend híbrido (deben sumar 1)
	CollabWeight  float64
	ContentWeight float64

	// umbral mínimo de similitud para retener a un usuario como vecino
	MinUserSimilarity float64

	// rating mínimo para que un producto calificado entre al perfil
	HighRating float64

	// interacciones necesarias para considerar "historial rico" => hybrid
	RichHistoryThreshold int
}

// DefaultOptions devuelve la configuración estándar (0.7/0.3 a favor del
// colaborativo).
func DefaultOptions() Options {
	return Options{
		CollabWeight:         0.7,
		ContentWeight:        0.3,
		MinUserSimilarity:    0,
		HighRating:           4,
		RichHistoryThreshold: 10,
	}
}

// Engine es el motor de recomendación. No tiene estado mutable: cada llamada
// trabaja sobre el Dataset que recibe.
type Engine struct {
	opts Options
}

func NewEngine(opts Options) *Engine {
	if opts.CollabWeight <= 0 && opts.ContentWeight <= 0 {
		opts = DefaultOptions()
	}
	return &Engine{opts: opts}
}

// Recommend resuelve la estrategia, corre el filtro correspondiente y trunca
// al límite. Devuelve también la estrategia efectivamente usada (nunca
// "auto") para que el caller pueda reportarla.
func (e *Engine) Recommend(ds *Dataset, userID int, strategy Strategy, limit int) ([]Scored, Strategy) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	resolved := strategy
	if strategy == StrategyAuto {
		resolved = e.resolveAuto(ds, userID)
	}

	var items []Scored
	switch resolved {
	case StrategyCollaborative:
		items = e.Collaborative(ds, userID)
		// colaborativo vacío en modo auto => piso de popularidad
		if len(items) == 0 && strategy == StrategyAuto {
			items = e.Popular(ds, userID)
			resolved = StrategyPopular
		}
	case StrategyContent:
		items = e.Content(ds, userID)
	case StrategyHybrid:
		items = e.Hybrid(ds, userID)
	case StrategyPopular:
		items = e.Popular(ds, userID)
	}

	// en modo auto nunca devolvemos vacío si hay productos
	if len(items) == 0 && strategy == StrategyAuto && resolved != StrategyPopular {
		items = e.Popular(ds, userID)
		resolved = StrategyPopular
	}

	if len(items) > limit {
		items = items[:limit]
	}
	return items, resolved
}

// resolveAuto decide la estrategia según el tamaño del historial:
// historial rico => hybrid, algo de historial => content, nada => collaborative
// (que a su vez cae al piso de popularidad si queda vacío).
func (e *Engine) resolveAuto(ds *Dataset, userID int) Strategy {
	n := len(ds.InteractionsOf(userID))
	switch {
	case n >= e.opts.RichHistoryThreshold:
		return StrategyHybrid
	case n >= 1:
		return StrategyContent
	default:
		return StrategyCollaborative
	}
}

// SimilarProducts rankea el catálogo por similitud de atributos contra un
// producto origen. Se usa directo desde /products/{id}/similar.
func (e *Engine) SimilarProducts(ds *Dataset, productID, limit int) []Scored {
	source := ds.Product(productID)
	if source == nil {
		return nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	var items []Scored
	for i := range ds.Products {
		cand := &ds.Products[i]
		if cand.ProductID == productID || !cand.IsAvailable {
			continue
		}
		sim := ProductSimilarity(cand, source)
		if sim <= 0 {
			continue
		}
		items = append(items, Scored{
			Product: cand,
			Score:   sim,
			Tags:    contentTags(cand, source),
		})
	}

	sortScored(items)
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}
