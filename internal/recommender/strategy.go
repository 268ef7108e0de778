package recommender

import "fmt"

// Strategy es el conjunto cerrado de estrategias de recomendación.
// Agregar una estrategia nueva obliga a extender el switch de Recommend,
// no un string suelto por ahí.
type Strategy int

const (
	StrategyAuto Strategy = iota
	StrategyHybrid
	StrategyCollaborative
	StrategyContent
	// StrategyPopular solo aparece como estrategia resuelta (piso de
	// popularidad); no se puede pedir explícitamente.
	StrategyPopular
)

// ErrUnknownStrategy se devuelve al parsear un nombre de estrategia inválido.
var ErrUnknownStrategy = fmt.Errorf("unknown strategy")

func (s Strategy) String() string {
	switch s {
	case StrategyAuto:
		return "auto"
	case StrategyHybrid:
		return "hybrid"
	case StrategyCollaborative:
		return "collaborative"
	case StrategyContent:
		return "content"
	case StrategyPopular:
		return "popular"
	default:
		return "unknown"
	}
}

// ParseStrategy convierte el nombre pedido por el cliente. "popular" no es
// válido como entrada: es solo un resultado del fallback.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "", "auto":
		return StrategyAuto, nil
	case "hybrid":
		return StrategyHybrid, nil
	case "collaborative":
		return StrategyCollaborative, nil
	case "content":
		return StrategyContent, nil
	default:
		return StrategyAuto, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}
