package recommender

import "tiendaml-pc5/internal/models"

// Dataset es el snapshot inmutable sobre el que se calcula una petición.
// Se carga completo al inicio del request; el motor nunca lo muta, así que
// varios requests concurrentes pueden compartir lecturas sin coordinación.
type Dataset struct {
	Users        []models.UserDoc
	Products     []models.ProductDoc
	Interactions []models.InteractionDoc

	// índices derivados
	byUser    map[int][]models.InteractionDoc
	byProduct map[int]*models.ProductDoc
}

// NewDataset construye los índices derivados una sola vez.
func NewDataset(users []models.UserDoc, products []models.ProductDoc, interactions []models.InteractionDoc) *Dataset {
	ds := &Dataset{
		Users:        users,
		Products:     products,
		Interactions: interactions,
		byUser:       make(map[int][]models.InteractionDoc),
		byProduct:    make(map[int]*models.ProductDoc, len(products)),
	}
	for _, it := range interactions {
		ds.byUser[it.UserID] = append(ds.byUser[it.UserID], it)
	}
	for i := range products {
		ds.byProduct[products[i].ProductID] = &ds.Products[i]
	}
	return ds
}

// InteractionsOf devuelve el historial de un usuario (puede ser nil).
func (ds *Dataset) InteractionsOf(userID int) []models.InteractionDoc {
	return ds.byUser[userID]
}

// Product devuelve el producto por id, o nil si no existe.
func (ds *Dataset) Product(productID int) *models.ProductDoc {
	return ds.byProduct[productID]
}

// PurchasedBy devuelve el set de productos comprados por el usuario.
func (ds *Dataset) PurchasedBy(userID int) map[int]bool {
	purchased := make(map[int]bool)
	for _, it := range ds.byUser[userID] {
		if it.Type == models.InteractionPurchase {
			purchased[it.ProductID] = true
		}
	}
	return purchased
}

// UserVector construye el vector ponderado {productId: score} del usuario,
// sumando el peso de cada interacción y el valor del rating si lo hay.
func (ds *Dataset) UserVector(userID int) map[int]float64 {
	vec := make(map[int]float64)
	for _, it := range ds.byUser[userID] {
		vec[it.ProductID] += models.InteractionWeight(it.Type)
		if it.Rating != nil {
			vec[it.ProductID] += *it.Rating
		}
	}
	return vec
}
