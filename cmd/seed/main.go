package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"tiendaml-pc5/internal/config"
	"tiendaml-pc5/internal/db"
	"tiendaml-pc5/internal/models"
	"tiendaml-pc5/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// Herramienta de carga de datos de prueba: productos curados + usuarios y
// un log de interacciones generado al azar (seed fijo para reproducibilidad).

type seedProduct struct {
	name        string
	category    string
	subcategory string
	brand       string
	price       float64
	original    float64 // 0 = sin descuento
	stock       int
	rating      float64
	reviews     int
}

var seedProducts = []seedProduct{
	// Smartphones
	{"Samsung Galaxy A54 5G", "electronics", "smartphones", "Samsung", 389.99, 429.99, 45, 4.4, 1240},
	{"OnePlus Nord CE 3 Lite", "electronics", "smartphones", "OnePlus", 199.99, 219.99, 32, 4.2, 860},
	{"Xiaomi Redmi Note 12 Pro", "electronics", "smartphones", "Xiaomi", 239.99, 0, 56, 4.3, 2100},
	{"iPhone 15", "electronics", "smartphones", "Apple", 799.00, 0, 12, 4.7, 3400},
	{"Vivo V29 5G", "electronics", "smartphones", "Vivo", 329.99, 0, 23, 4.1, 450},
	// Laptops
	{"HP Pavilion 15", "electronics", "laptops", "HP", 549.90, 599.90, 18, 4.3, 720},
	{"Dell Inspiron 3520", "electronics", "laptops", "Dell", 479.99, 0, 22, 4.1, 530},
	{"Lenovo IdeaPad Gaming 3", "electronics", "laptops", "Lenovo", 729.99, 0, 8, 4.4, 310},
	{"ASUS VivoBook 15", "electronics", "laptops", "ASUS", 429.99, 469.99, 35, 4.0, 880},
	{"MacBook Air M2", "electronics", "laptops", "Apple", 1149.00, 0, 6, 4.8, 1900},
	// Audio
	{"boAt Airdopes 141", "electronics", "audio", "boAt", 14.99, 24.99, 125, 4.0, 5200},
	{"Sony WH-CH720N", "electronics", "audio", "Sony", 99.90, 119.90, 42, 4.5, 1600},
	{"JBL Tune 760NC", "electronics", "audio", "JBL", 69.99, 0, 28, 4.3, 980},
	{"Noise Air Buds Pro", "electronics", "audio", "Noise", 39.99, 49.99, 67, 3.9, 720},
	// Ropa
	{"Levi's 511 Slim Jeans", "clothing", "jeans", "Levi's", 59.99, 0, 80, 4.4, 2300},
	{"Nike Dri-FIT Tee", "clothing", "tshirts", "Nike", 24.99, 29.99, 150, 4.5, 4100},
	{"Adidas Ultraboost 22", "clothing", "shoes", "Adidas", 139.99, 179.99, 40, 4.6, 1800},
	{"Puma Essentials Hoodie", "clothing", "hoodies", "Puma", 44.99, 0, 95, 4.2, 650},
	{"H&M Oversized Shirt", "clothing", "shirts", "H&M", 19.99, 0, 120, 3.8, 410},
	// Hogar
	{"Philips Air Fryer HD9200", "home", "kitchen", "Philips", 89.99, 109.99, 30, 4.5, 2700},
	{"Prestige Induction Cooktop", "home", "kitchen", "Prestige", 34.99, 0, 55, 4.1, 1300},
	{"Milton Thermosteel Flask", "home", "kitchen", "Milton", 12.99, 0, 200, 4.3, 3800},
	{"IKEA MARKUS Office Chair", "home", "furniture", "IKEA", 229.00, 0, 14, 4.4, 920},
	{"Wipro 9W Smart Bulb", "home", "lighting", "Wipro", 9.99, 14.99, 300, 4.0, 2100},
	// Libros
	{"Atomic Habits", "books", "selfhelp", "Penguin", 16.99, 19.99, 500, 4.8, 9800},
	{"The Psychology of Money", "books", "selfhelp", "Harriman", 14.99, 0, 420, 4.7, 7600},
	{"Sapiens", "books", "history", "Vintage", 18.99, 0, 380, 4.6, 8900},
}

var firstNames = []string{
	"Ana", "Luis", "María", "Jorge", "Lucía", "Carlos", "Sofía", "Diego",
	"Valeria", "Andrés", "Camila", "Pedro", "Daniela", "Miguel", "Rosa",
}

var locations = []string{"Lima", "Arequipa", "Trujillo", "Cusco", "Piura"}

func main() {
	nUsers := flag.Int("users", 25, "cantidad de usuarios a crear")
	nInteractions := flag.Int("interactions", 400, "cantidad de interacciones a generar")
	flag.Parse()

	cfg := config.Load()
	db.InitMongo(cfg)

	rng := rand.New(rand.NewSource(42))
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	productRepo := repository.NewProductRepository()
	userRepo := repository.NewUserRepository()
	interactionRepo := repository.NewInteractionRepository()

	// ====== Productos ======
	now := time.Now().UTC().Format(time.RFC3339)
	products := make([]*models.ProductDoc, 0, len(seedProducts))
	for i, sp := range seedProducts {
		p := &models.ProductDoc{
			ProductID:     i + 1,
			Name:          sp.name,
			Description:   fmt.Sprintf("%s de %s.", sp.name, sp.brand),
			Category:      sp.category,
			Subcategory:   sp.subcategory,
			Brand:         sp.brand,
			Price:         sp.price,
			Currency:      "USD",
			StockQuantity: sp.stock,
			IsAvailable:   sp.stock > 0,
			AverageRating: sp.rating,
			ReviewCount:   sp.reviews,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if sp.original > 0 {
			orig := sp.original
			p.OriginalPrice = &orig
		}
		if err := productRepo.Insert(ctx, p); err != nil {
			log.Fatalf("[seed] error insertando producto %q: %v", sp.name, err)
		}
		products = append(products, p)
	}
	log.Printf("[seed] %d productos insertados", len(products))

	// ====== Usuarios ======
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("[seed] bcrypt: %v", err)
	}

	categories := []string{"electronics", "clothing", "home", "books"}
	users := make([]*models.UserDoc, 0, *nUsers)
	for i := 1; i <= *nUsers; i++ {
		name := firstNames[rng.Intn(len(firstNames))]
		age := 18 + rng.Intn(42)
		prefCat := categories[rng.Intn(len(categories))]

		u := &models.UserDoc{
			UserID:              i,
			Username:            fmt.Sprintf("%s%d", name, i),
			Email:               fmt.Sprintf("user%d@tienda.test", i),
			PasswordHash:        string(hash),
			Role:                "user",
			FullName:            name,
			Age:                 &age,
			Location:            locations[rng.Intn(len(locations))],
			PreferredCategories: []string{prefCat},
			IsActive:            true,
			CreatedAt:           now,
			UpdatedAt:           now,
		}
		if i == 1 {
			u.Role = "admin"
			u.Email = "admin@tienda.test"
			u.Username = "admin"
		}
		if err := userRepo.Insert(ctx, u); err != nil {
			log.Fatalf("[seed] error insertando usuario %d: %v", i, err)
		}
		users = append(users, u)
	}
	log.Printf("[seed] %d usuarios insertados", len(users))

	// ====== Interacciones ======
	// Sesgo hacia la categoría preferida del usuario para que el filtro por
	// contenido tenga señal desde el primer arranque.
	types := []string{
		models.InteractionView, models.InteractionView, models.InteractionView,
		models.InteractionClick, models.InteractionClick,
		models.InteractionCartAdd,
		models.InteractionWishlistAdd,
		models.InteractionPurchase,
		models.InteractionRating,
	}

	inserted := 0
	for n := 0; n < *nInteractions; n++ {
		u := users[rng.Intn(len(users))]

		p := products[rng.Intn(len(products))]
		if len(u.PreferredCategories) > 0 && rng.Float64() < 0.6 {
			prefCat := u.PreferredCategories[0]
			for tries := 0; tries < 10; tries++ {
				cand := products[rng.Intn(len(products))]
				if cand.Category == prefCat {
					p = cand
					break
				}
			}
		}

		it := &models.InteractionDoc{
			UserID:             u.UserID,
			ProductID:          p.ProductID,
			Type:               types[rng.Intn(len(types))],
			Quantity:           1,
			PriceAtInteraction: &p.Price,
			Timestamp:          time.Now().Add(-time.Duration(rng.Intn(90*24)) * time.Hour).Unix(),
		}
		if it.Type == models.InteractionRating {
			rating := float64(3 + rng.Intn(3)) // 3, 4 o 5
			it.Rating = &rating
		}

		if err := interactionRepo.Insert(ctx, it); err != nil {
			log.Fatalf("[seed] error insertando interacción: %v", err)
		}
		inserted++
	}
	log.Printf("[seed] %d interacciones insertadas", inserted)
	log.Println("[seed] listo")
}
