package gemini

import (
	"fmt"
	"strings"

	"tiendaml-pc5/internal/models"
	"tiendaml-pc5/internal/recommender"
)

// RecommendationPrompt arma el prompt de explicación para una recomendación:
// atributos del producto + reason tags + contexto del usuario.
func RecommendationPrompt(user *models.UserDoc, p *models.ProductDoc, strategy string, tags []string) string {
	var b strings.Builder

	b.WriteString("Eres un asistente de recomendaciones de un e-commerce. ")
	b.WriteString("Explica en 2-3 frases, en tono cercano, por qué le recomendamos este producto al usuario.\n\n")

	fmt.Fprintf(&b, "Producto:\n- Nombre: %s\n- Categoría: %s\n- Marca: %s\n- Precio: %.2f %s\n- Rating: %.1f/5 (%d reseñas)\n",
		p.Name, p.Category, orDash(p.Brand), p.Price, orDefault(p.Currency, "USD"), p.AverageRating, p.ReviewCount)

	fmt.Fprintf(&b, "\nUsuario:\n- Nombre: %s\n", user.Username)
	if len(user.PreferredCategories) > 0 {
		fmt.Fprintf(&b, "- Categorías favoritas: %s\n", strings.Join(user.PreferredCategories, ", "))
	}
	if len(user.PreferredBrands) > 0 {
		fmt.Fprintf(&b, "- Marcas favoritas: %s\n", strings.Join(user.PreferredBrands, ", "))
	}

	fmt.Fprintf(&b, "\nEstrategia: %s\n", strategy)
	for _, tag := range tags {
		switch tag {
		case recommender.TagSimilarUsers:
			b.WriteString("- Usuarios con gustos parecidos también eligieron este producto\n")
		case recommender.TagMatchedCategory:
			fmt.Fprintf(&b, "- Coincide con su interés en %s\n", p.Category)
		case recommender.TagMatchedBrand:
			fmt.Fprintf(&b, "- Es de %s, una marca que ya le gusta\n", p.Brand)
		case recommender.TagPriceRange:
			b.WriteString("- Está dentro de su rango de precios habitual\n")
		case recommender.TagPopular, recommender.TagTopRated:
			b.WriteString("- Es de los más populares y mejor valorados del catálogo\n")
		}
	}

	b.WriteString("\nNo menciones algoritmos ni IA. Responde solo con la explicación:")
	return b.String()
}

// SimilarProductPrompt arma el prompt para /products/{id}/similar.
func SimilarProductPrompt(source, similar *models.ProductDoc, score float64) string {
	return fmt.Sprintf(
		"Explica en 1-2 frases, en tono cercano, por qué %s es similar a %s. "+
			"Ambos son de la categoría %s. Similitud: %.0f%%. "+
			"No menciones algoritmos ni IA:",
		similar.Name, source.Name, source.Category, score*100)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
