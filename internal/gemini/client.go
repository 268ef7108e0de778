package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Errores del cliente. El caller los trata como "upstream no disponible":
// nunca abortan un request de recomendaciones, solo activan el fallback.
var (
	ErrDisabled    = errors.New("gemini: api key no configurada")
	ErrUnavailable = errors.New("gemini: upstream no disponible")
)

// Client habla con la API de Generative Language de Google.
// Un solo intento por llamada, acotado por el timeout del contexto;
// cualquier fallo (timeout, cuota, respuesta malformada) es ErrUnavailable.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
}

// New crea el cliente. Con apiKey vacía el cliente queda deshabilitado y
// Generate devuelve ErrDisabled (el caller usa las plantillas locales).
func New(apiKey, model string, timeout time.Duration) *Client {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: "https://generativelanguage.googleapis.com",
		http:    &http.Client{Timeout: timeout},
	}
}

// Enabled indica si hay API key configurada.
func (c *Client) Enabled() bool { return c.apiKey != "" }

// ==== wire types de la API ====

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP"`
	TopK            int     `json:"topK"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Generate manda el prompt y devuelve el texto generado.
// prompt in, text out, o error: no hay reintentos.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if !c.Enabled() {
		return "", ErrDisabled
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			Temperature:     0.7,
			TopP:            0.8,
			TopK:            40,
			MaxOutputTokens: 500,
		},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// 429 (cuota) y 5xx caen igual al fallback
		return "", fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var out generateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("%w: respuesta malformada", ErrUnavailable)
	}

	text := ""
	for _, cand := range out.Candidates {
		for _, p := range cand.Content.Parts {
			text += p.Text
		}
		if text != "" {
			break
		}
	}
	if text == "" {
		return "", fmt.Errorf("%w: respuesta sin texto", ErrUnavailable)
	}
	return text, nil
}

// TestConnection hace una llamada mínima para verificar la API key.
func (c *Client) TestConnection(ctx context.Context) error {
	_, err := c.Generate(ctx, "Responde 'ok' si puedes leer esto.")
	return err
}
