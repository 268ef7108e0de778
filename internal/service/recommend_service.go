package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"tiendaml-pc5/internal/cache"
	"tiendaml-pc5/internal/gemini"
	"tiendaml-pc5/internal/models"
	"tiendaml-pc5/internal/recommender"
	"tiendaml-pc5/internal/repository"
)

// TextGenerator es el colaborador externo de generación de texto (Gemini).
// Cualquier error se recupera localmente con plantillas: jamás aborta la
// petición de recomendaciones.
type TextGenerator interface {
	Enabled() bool
	Generate(ctx context.Context, prompt string) (string, error)
}

type RecommendService struct {
	users        *repository.UserRepository
	products     *repository.ProductRepository
	interactions *repository.InteractionRepository
	recRepo      *repository.RecommendationRepository

	engine     *recommender.Engine
	gen        TextGenerator
	genTimeout time.Duration
}

func NewRecommendService(
	users *repository.UserRepository,
	products *repository.ProductRepository,
	interactions *repository.InteractionRepository,
	recRepo *repository.RecommendationRepository,
	gen TextGenerator,
	genTimeout time.Duration,
) *RecommendService {
	if genTimeout <= 0 {
		genTimeout = 8 * time.Second
	}
	return &RecommendService{
		users:        users,
		products:     products,
		interactions: interactions,
		recRepo:      recRepo,
		engine:       recommender.NewEngine(recommender.DefaultOptions()),
		gen:          gen,
		genTimeout:   genTimeout,
	}
}

// ====== Petición de recomendaciones ======

type RecRequest struct {
	UserID   int
	Strategy string // auto|hybrid|collaborative|content ("" = auto)
	Limit    int    // 1..20, 0 = default
	Explain  bool
	Refresh  bool // si true ignora el cache Redis
}

type RecResponse struct {
	UserID       int              `json:"userId"`
	Username     string           `json:"username"`
	StrategyUsed string           `json:"strategyUsed"`
	Items        []models.RecItem `json:"recommendations"`
	Count        int              `json:"count"`
}

func cacheKey(req RecRequest) string {
	// cachea por usuario + k + estrategia pedida + explain
	return fmt.Sprintf("rec:user:%d:k:%d:s:%s:e:%t", req.UserID, req.Limit, req.Strategy, req.Explain)
}

// Recommend valida, resuelve la estrategia, corre el motor sobre un snapshot
// y adjunta las explicaciones. Lista vacía es un resultado válido, no error.
func (s *RecommendService) Recommend(ctx context.Context, req RecRequest) (*RecResponse, error) {
	// validaciones antes de computar nada
	strategy, err := recommender.ParseStrategy(req.Strategy)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	if req.Limit == 0 {
		req.Limit = recommender.DefaultLimit
	}
	if req.Limit < recommender.MinLimit || req.Limit > recommender.MaxLimit {
		return nil, fmt.Errorf("%w: limit debe estar entre %d y %d",
			ErrInvalidArgument, recommender.MinLimit, recommender.MaxLimit)
	}

	user, err := s.users.FindByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, req.UserID)
	}

	// 1) cache Redis (solo si refresh = false)
	if !req.Refresh {
		var cached RecResponse
		if ok, err := cache.GetJSON(ctx, cacheKey(req), &cached); err == nil && ok {
			return &cached, nil
		}
	}

	// 2) snapshot inmutable del dataset para este request
	ds, err := s.loadDataset(ctx)
	if err != nil {
		return nil, err
	}

	// 3) motor
	scored, used := s.engine.Recommend(ds, req.UserID, strategy, req.Limit)

	items := make([]models.RecItem, 0, len(scored))
	for _, sc := range scored {
		items = append(items, models.RecItem{
			ProductID:  sc.Product.ProductID,
			Score:      sc.Score,
			ReasonTags: sc.Tags,
			Product:    sc.Product,
		})
	}

	// 4) explicaciones (Gemini con fallback a plantillas)
	if req.Explain {
		s.explainItems(ctx, user, used.String(), items)
	}

	resp := &RecResponse{
		UserID:       user.UserID,
		Username:     user.Username,
		StrategyUsed: used.String(),
		Items:        items,
		Count:        len(items),
	}

	// 5) historial en Mongo (no rompemos la respuesta si falla)
	if s.recRepo != nil {
		hist := &models.Recommendation{
			UserID:   user.UserID,
			Strategy: used.String(),
			Params: map[string]any{
				"requested": req.Strategy,
				"limit":     req.Limit,
				"explain":   req.Explain,
			},
			Items:     items,
			CreatedAt: time.Now(),
		}
		if err := s.recRepo.Insert(ctx, hist); err != nil {
			log.Printf("[recommend] error guardando historial en Mongo: %v", err)
		}
	}

	// 6) cache Redis (1 hora)
	if err := cache.SetJSON(ctx, cacheKey(req), resp, 60*60); err != nil {
		log.Printf("[recommend] error cacheando en Redis: %v", err)
	}

	return resp, nil
}

// explainItems adjunta una explicación por ítem. La llamada externa tiene un
// solo intento acotado por timeout; cualquier fallo cae a la plantilla local.
// No toca scores ni orden.
func (s *RecommendService) explainItems(ctx context.Context, user *models.UserDoc, strategy string, items []models.RecItem) {
	for i := range items {
		p := items[i].Product
		if p == nil {
			continue
		}

		text := ""
		if s.gen != nil && s.gen.Enabled() {
			genCtx, cancel := context.WithTimeout(ctx, s.genTimeout)
			prompt := gemini.RecommendationPrompt(user, p, strategy, items[i].ReasonTags)
			if out, err := s.gen.Generate(genCtx, prompt); err == nil {
				text = out
			} else {
				log.Printf("[recommend] gemini falló para product %d: %v (usando plantilla)", p.ProductID, err)
			}
			cancel()
		}

		if text == "" {
			text = recommender.FallbackExplanation(p, items[i].ReasonTags)
		}
		items[i].Explanation = text
	}
}

// loadDataset carga el snapshot completo. El catálogo es chico (decenas de
// usuarios/productos), así que la carga total por request es aceptable.
func (s *RecommendService) loadDataset(ctx context.Context) (*recommender.Dataset, error) {
	users, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.products.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	interactions, err := s.interactions.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return recommender.NewDataset(users, products, interactions), nil
}

// ====== Productos similares ======

type SimilarRequest struct {
	ProductID int
	Limit     int
	Explain   bool
}

type SimilarResponse struct {
	Source *models.ProductDoc `json:"sourceProduct"`
	Items  []models.RecItem   `json:"similarProducts"`
	Count  int                `json:"count"`
}

// SimilarProducts rankea el catálogo por similitud de atributos contra el
// producto origen.
func (s *RecommendService) SimilarProducts(ctx context.Context, req SimilarRequest) (*SimilarResponse, error) {
	if req.Limit == 0 {
		req.Limit = recommender.DefaultLimit
	}
	if req.Limit < recommender.MinLimit || req.Limit > recommender.MaxLimit {
		return nil, fmt.Errorf("%w: limit debe estar entre %d y %d",
			ErrInvalidArgument, recommender.MinLimit, recommender.MaxLimit)
	}

	source, err := s.products.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if source == nil {
		return nil, fmt.Errorf("%w: product %d", ErrNotFound, req.ProductID)
	}

	products, err := s.products.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	ds := recommender.NewDataset(nil, products, nil)

	scored := s.engine.SimilarProducts(ds, req.ProductID, req.Limit)

	items := make([]models.RecItem, 0, len(scored))
	for _, sc := range scored {
		item := models.RecItem{
			ProductID:  sc.Product.ProductID,
			Score:      sc.Score,
			ReasonTags: sc.Tags,
			Product:    sc.Product,
		}

		if req.Explain {
			item.Explanation = s.explainSimilar(ctx, source, sc)
		}
		items = append(items, item)
	}

	return &SimilarResponse{Source: source, Items: items, Count: len(items)}, nil
}

func (s *RecommendService) explainSimilar(ctx context.Context, source *models.ProductDoc, sc recommender.Scored) string {
	if s.gen != nil && s.gen.Enabled() {
		genCtx, cancel := context.WithTimeout(ctx, s.genTimeout)
		defer cancel()

		if out, err := s.gen.Generate(genCtx, gemini.SimilarProductPrompt(source, sc.Product, sc.Score)); err == nil {
			return out
		}
	}
	return fmt.Sprintf("Similar a %s: misma categoría y características comparables.", source.Name)
}

// ====== Historial y estado de Gemini ======

func (s *RecommendService) History(ctx context.Context, userID int, limit int64) ([]models.Recommendation, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}
	return s.recRepo.FindByUser(ctx, userID, limit)
}

// TestGemini verifica la conexión con el upstream de explicaciones.
func (s *RecommendService) TestGemini(ctx context.Context) error {
	if s.gen == nil || !s.gen.Enabled() {
		return gemini.ErrDisabled
	}
	genCtx, cancel := context.WithTimeout(ctx, s.genTimeout)
	defer cancel()

	_, err := s.gen.Generate(genCtx, "Responde 'ok' si puedes leer esto.")
	return err
}
