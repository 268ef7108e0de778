package recommender

import (
	"fmt"

	"tiendaml-pc5/internal/models"
)

// FallbackExplanation genera la explicación local con plantillas cuando la
// llamada a Gemini falla o está deshabilitada. Siempre devuelve texto no
// vacío; la plantilla se elige por la etiqueta dominante (la primera).
func FallbackExplanation(p *models.ProductDoc, tags []string) string {
	tag := ""
	if len(tags) > 0 {
		tag = tags[0]
	}

	switch tag {
	case TagSimilarUsers:
		return fmt.Sprintf(
			"Te recomendamos %s porque usuarios con gustos parecidos al tuyo también lo eligieron. Tiene %.1f estrellas en %s.",
			p.Name, p.AverageRating, p.Category)
	case TagMatchedCategory:
		return fmt.Sprintf(
			"%s encaja con tu interés en %s y tiene una valoración de %.1f estrellas.",
			p.Name, p.Category, p.AverageRating)
	case TagMatchedBrand:
		return fmt.Sprintf(
			"%s es de %s, una marca que ya te gusta, y está dentro de tu rango habitual.",
			p.Name, p.Brand)
	case TagPriceRange:
		return fmt.Sprintf(
			"%s está en el rango de precios que sueles comprar y tiene buenas reseñas (%.1f estrellas).",
			p.Name, p.AverageRating)
	case TagTopRated:
		return fmt.Sprintf(
			"%s es de lo mejor valorado en %s: %.1f estrellas con %d reseñas.",
			p.Name, p.Category, p.AverageRating, p.ReviewCount)
	case TagPopular:
		return fmt.Sprintf(
			"%s es uno de los productos más populares de %s ahora mismo.",
			p.Name, p.Category)
	default:
		return fmt.Sprintf("Creemos que %s te puede gustar: es una opción destacada en %s.",
			p.Name, p.Category)
	}
}
