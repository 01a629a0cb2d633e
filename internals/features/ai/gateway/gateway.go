// file: internals/features/ai/gateway/gateway.go
//
// Klien Gemini generateContent: rate limit per menit, retry dengan
// exponential backoff, timeout per percobaan, dan skor keyakinan heuristik
// atas teks respons.
package gateway

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	configs "schoolku_backend/internals/configs"
)

type Config struct {
	APIKey  string
	Model   string
	BaseURL string

	Temperature     float64
	TopP            float64
	TopK            int
	MaxOutputTokens int

	// Kuota per jendela 60 detik berjalan
	RequestsPerMinute int

	// MaxAttempts total percobaan; delay = BaseDelay * 2^attempt
	MaxAttempts int
	BaseDelay   time.Duration

	// Timeout wall-clock per percobaan; timeout dianggap retryable
	AttemptTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		BaseURL:           "https://generativelanguage.googleapis.com",
		Temperature:       0.4,
		TopP:              0.95,
		TopK:              40,
		MaxOutputTokens:   2048,
		RequestsPerMinute: 15,
		MaxAttempts:       3,
		BaseDelay:         1 * time.Second,
		AttemptTimeout:    30 * time.Second,
	}
}

type Gateway struct {
	cfg     Config
	limiter *windowLimiter
	client  *http.Client
}

func New(cfg Config) *Gateway {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultConfig().BaseURL
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = 1 * time.Second
	}
	if cfg.AttemptTimeout <= 0 {
		cfg.AttemptTimeout = 30 * time.Second
	}
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = 15
	}
	return &Gateway{
		cfg:     cfg,
		limiter: newWindowLimiter(cfg.RequestsPerMinute),
		client:  &http.Client{},
	}
}

// NewFromEnv membaca konfigurasi dari env (dipanggil saat bootstrap).
func NewFromEnv() *Gateway {
	cfg := DefaultConfig()
	cfg.APIKey = configs.GeminiAPIKey
	cfg.Model = configs.GeminiModel
	cfg.BaseURL = configs.GetEnv("GEMINI_BASE_URL", cfg.BaseURL)
	cfg.Temperature = configs.GetEnvFloat("GEMINI_TEMPERATURE", cfg.Temperature)
	cfg.TopP = configs.GetEnvFloat("GEMINI_TOP_P", cfg.TopP)
	cfg.TopK = configs.GetEnvInt("GEMINI_TOP_K", cfg.TopK)
	cfg.MaxOutputTokens = configs.GetEnvInt("GEMINI_MAX_OUTPUT_TOKENS", cfg.MaxOutputTokens)
	cfg.RequestsPerMinute = configs.GetEnvInt("GEMINI_REQUESTS_PER_MINUTE", cfg.RequestsPerMinute)
	cfg.MaxAttempts = configs.GetEnvInt("GEMINI_MAX_ATTEMPTS", cfg.MaxAttempts)
	cfg.AttemptTimeout = time.Duration(configs.GetEnvInt("GEMINI_TIMEOUT_SECONDS", 30)) * time.Second
	return New(cfg)
}

// Result adalah hasil satu panggilan Generate.
// Parsed terisi bila teks model adalah JSON valid; selain itu pemanggil
// memakai Raw sebagai data tak bertipe.
type Result struct {
	Parsed     map[string]interface{}
	Raw        string
	Confidence float64
	Model      string
	Attempts   int
	Elapsed    time.Duration
}

func (r *Result) IsJSON() bool { return r.Parsed != nil }

// ==== wire format Gemini ====

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP"`
	TopK            int     `json:"topK"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Generate memanggil model dengan prompt; fail-fast bila kuota habis.
func (g *Gateway) Generate(ctx context.Context, prompt string) (*Result, error) {
	if !g.limiter.Allow() {
		return nil, ErrRateLimited
	}

	start := time.Now()
	var lastErr error

	for attempt := 0; attempt < g.cfg.MaxAttempts; attempt++ {
		if attempt > 0 {
			delay := g.cfg.BaseDelay * time.Duration(1<<uint(attempt))
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		text, err := g.doRequest(ctx, prompt)
		if err != nil {
			lastErr = err
			log.Printf("[ERROR] Percobaan AI ke-%d gagal: %v", attempt+1, err)
			continue
		}

		res := &Result{
			Raw:        text,
			Confidence: scoreConfidence(text),
			Model:      g.cfg.Model,
			Attempts:   attempt + 1,
			Elapsed:    time.Since(start),
		}
		// parse JSON ketat; gagal parse bukan error, Raw tetap dipakai
		cleaned := stripCodeFence(text)
		var parsed map[string]interface{}
		if sonic.Unmarshal([]byte(cleaned), &parsed) == nil {
			res.Parsed = parsed
		}
		return res, nil
	}

	return nil, fmt.Errorf("permintaan AI gagal setelah %d percobaan: %w", g.cfg.MaxAttempts, lastErr)
}

func (g *Gateway) doRequest(ctx context.Context, prompt string) (string, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, g.cfg.AttemptTimeout)
	defer cancel()

	body := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     g.cfg.Temperature,
			TopP:            g.cfg.TopP,
			TopK:            g.cfg.TopK,
			MaxOutputTokens: g.cfg.MaxOutputTokens,
		},
	}
	payload, err := sonic.Marshal(body)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		strings.TrimSuffix(g.cfg.BaseURL, "/"), g.cfg.Model, g.cfg.APIKey)

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		// termasuk context deadline exceeded: retryable
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d dari layanan AI: %s", resp.StatusCode, truncate(string(raw), 200))
	}

	var parsed geminiResponse
	if err := sonic.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("respons layanan AI tidak dapat dibaca: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("layanan AI menolak permintaan: %s", parsed.Error.Message)
	}
	if len(parsed.Candidates) == 0 {
		return "", errors.New("layanan AI tidak mengembalikan kandidat")
	}

	var sb strings.Builder
	for _, part := range parsed.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", errors.New("layanan AI mengembalikan teks kosong")
	}
	return text, nil
}

// stripCodeFence membuang pagar ```json ... ``` yang sering membungkus
// keluaran model sebelum parse JSON ketat.
func stripCodeFence(s string) string {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "```") {
		return t
	}
	t = strings.TrimPrefix(t, "```json")
	t = strings.TrimPrefix(t, "```")
	t = strings.TrimSuffix(strings.TrimSpace(t), "```")
	return strings.TrimSpace(t)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
