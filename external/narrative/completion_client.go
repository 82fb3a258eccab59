package narrative

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/askaralim/nba-stats-api-sub000/internal/domain/story"
	"github.com/askaralim/nba-stats-api-sub000/internal/platform/logging"
	"github.com/askaralim/nba-stats-api-sub000/internal/platform/resilience"
	"github.com/askaralim/nba-stats-api-sub000/internal/usecase"
)

var errCompletionTransient = crerr.New("completion transient failure")

type CompletionClientConfig struct {
	BaseURL        string
	APIKey         string
	Model          string
	Timeout        time.Duration
	CircuitBreaker resilience.CircuitBreakerConfig
}

// CompletionClient asks an external completion API to phrase a game summary
// from the prepared facts snapshot. Callers always keep the deterministic
// story as fallback; any failure here is non-fatal.
type CompletionClient struct {
	client         *http.Client
	baseURL        string
	apiKey         string
	model          string
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

var _ usecase.NarrativeProvider = (*CompletionClient)(nil)

func NewCompletionClient(cfg CompletionClientConfig, logger *logging.Logger) *CompletionClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &CompletionClient{
		client:         &http.Client{Timeout: timeout},
		baseURL:        strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		apiKey:         strings.TrimSpace(cfg.APIKey),
		model:          strings.TrimSpace(cfg.Model),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

type completionRequest struct {
	Model     string `json:"model,omitempty"`
	Prompt    string `json:"prompt"`
	MaxTokens int    `json:"max_tokens"`
}

type completionResponse struct {
	Choices []struct {
		Text string `json:"text"`
	} `json:"choices"`
}

func (c *CompletionClient) GenerateSummary(ctx context.Context, facts story.GameFacts) (string, error) {
	if c.baseURL == "" {
		return "", crerr.New("completion base url is not configured")
	}
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "completion circuit breaker rejected request", "state", c.breaker.State())
			return "", fmt.Errorf("completion service is temporarily unavailable: %w", err)
		}
	}

	body, err := sonic.Marshal(completionRequest{
		Model:     c.model,
		Prompt:    buildPrompt(facts),
		MaxTokens: 120,
	})
	if err != nil {
		return "", crerr.Wrap(err, "marshal completion request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/completions", strings.NewReader(string(body)))
	if err != nil {
		return "", crerr.Wrap(err, "create completion request")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		callErr := fmt.Errorf("%w: send completion request: %v", errCompletionTransient, err)
		c.recordCircuitResult(callErr)
		return "", callErr
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		callErr := fmt.Errorf("%w: read completion response: %v", errCompletionTransient, err)
		c.recordCircuitResult(callErr)
		return "", callErr
	}
	if resp.StatusCode/100 != 2 {
		callErr := fmt.Errorf("completion status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(raw)))
		if isRetryableStatus(resp.StatusCode) {
			callErr = fmt.Errorf("%w: %v", errCompletionTransient, callErr)
		}
		c.recordCircuitResult(callErr)
		return "", callErr
	}

	var parsed completionResponse
	if err := sonic.Unmarshal(raw, &parsed); err != nil {
		c.recordCircuitResult(nil)
		return "", crerr.Wrap(err, "decode completion response")
	}
	c.recordCircuitResult(nil)

	if len(parsed.Choices) == 0 {
		return "", crerr.New("completion response has no choices")
	}
	return strings.TrimSpace(parsed.Choices[0].Text), nil
}

// buildPrompt renders the facts snapshot as a compact plain-text block. The
// provider receives numbers only, never pre-written prose.
func buildPrompt(facts story.GameFacts) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	writeLine := func(parts ...string) {
		for _, part := range parts {
			_, _ = buf.WriteString(part)
		}
		_ = buf.WriteByte('\n')
	}

	writeLine("Write a two-sentence recap of this NBA game using only these facts.")
	writeLine("Matchup: ", facts.Away.Name, " at ", facts.Home.Name)
	writeLine("Final (away-home): ", facts.Final)
	if facts.Halftime != "" {
		writeLine("Halftime: ", facts.Halftime)
	}
	for _, quarter := range facts.Quarters {
		writeLine("Q", strconv.Itoa(quarter.Period), ": ", quarter.Score)
	}
	if len(facts.OvertimePeriods) > 0 {
		writeLine("Overtime periods: ", strconv.Itoa(len(facts.OvertimePeriods)))
	}
	writeTeam := func(label string, team story.TeamFacts) {
		writeLine(label, ": ",
			strconv.Itoa(team.Points), " pts, FG% ", team.FieldGoalPct,
			", 3PM ", strconv.Itoa(team.ThreePointersMade),
			", REB ", strconv.Itoa(team.Rebounds),
			", TO ", strconv.Itoa(team.Turnovers),
		)
	}
	writeTeam(facts.Away.Name, facts.Away)
	writeTeam(facts.Home.Name, facts.Home)

	return buf.String()
}

func (c *CompletionClient) recordCircuitResult(err error) {
	if !c.circuitEnabled || c.breaker == nil {
		return
	}
	if err != nil && stderrors.Is(err, errCompletionTransient) {
		c.breaker.RecordFailure()
		return
	}
	c.breaker.RecordSuccess()
}

func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusRequestTimeout ||
		statusCode == http.StatusTooManyRequests ||
		statusCode >= http.StatusInternalServerError
}
