package entropy

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// DefaultEndpoint is the random.org JSON-RPC endpoint.
const DefaultEndpoint = "https://api.random.org/json-rpc/4/invoke"

// Client is a Source that draws true random fractions from random.org into
// a local pool. It falls back to crypto/rand whenever the API is unavailable.
// Safe for concurrent use.
type Client struct {
	apiKey   string
	endpoint string
	client   *http.Client

	mu   sync.Mutex
	pool []float64
}

// NewClient creates a random.org client. Returns nil if apiKey is empty;
// a nil *Client still works as a crypto/rand Source.
func NewClient(apiKey, endpoint string, timeout time.Duration) *Client {
	if apiKey == "" {
		return nil
	}
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		apiKey:   apiKey,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// poolLow is the pool size below which Intn asks random.org for more.
const poolLow = 10

// Intn returns a random int in [0, n) drawn from the pool. When the pool
// runs dry and random.org cannot refill it, the draw comes from crypto/rand.
func (c *Client) Intn(n int) int {
	if c == nil {
		return Crypto().Intn(n)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.pool) < poolLow {
		fresh, err := c.fetch(100)
		if err != nil {
			slog.Debug("random.org unavailable, using crypto/rand", "error", err)
		} else {
			c.pool = append(c.pool, fresh...)
			slog.Debug("random.org pool refilled", "count", len(c.pool))
		}
	}
	if len(c.pool) == 0 {
		return Crypto().Intn(n)
	}

	f := c.pool[0]
	c.pool = c.pool[1:]
	v := int(f * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}

type fractionsRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  fractionsParams `json:"params"`
	ID      int             `json:"id"`
}

type fractionsParams struct {
	APIKey        string `json:"apiKey"`
	N             int    `json:"n"`
	DecimalPlaces int    `json:"decimalPlaces"`
}

type fractionsResponse struct {
	Result *struct {
		Random struct {
			Data []float64 `json:"data"`
		} `json:"random"`
	} `json:"result"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// fetch asks random.org for n decimal fractions and returns those that
// fall in [0, 1).
func (c *Client) fetch(n int) ([]float64, error) {
	body, err := json.Marshal(fractionsRequest{
		JSONRPC: "2.0",
		Method:  "generateDecimalFractions",
		Params:  fractionsParams{APIKey: c.apiKey, N: n, DecimalPlaces: 6},
		ID:      1,
	})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	resp, err := c.client.Post(c.endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("post: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("post: status %d", resp.StatusCode)
	}

	var out fractionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if out.Error != nil {
		return nil, fmt.Errorf("api error %d: %s", out.Error.Code, out.Error.Message)
	}
	if out.Result == nil {
		return nil, errors.New("decode response: no result")
	}

	vals := make([]float64, 0, len(out.Result.Random.Data))
	for _, v := range out.Result.Random.Data {
		if v >= 0 && v < 1 {
			vals = append(vals, v)
		}
	}
	return vals, nil
}

// Enabled returns true if the client has a valid API key.
func (c *Client) Enabled() bool {
	return c != nil && c.apiKey != ""
}

// cryptoRandFloat generates a random float64 using crypto/rand.
func cryptoRandFloat() float64 {
	var buf [8]byte
	_, err := rand.Read(buf[:])
	if err != nil {
		// crypto/rand does not fail on supported platforms.
		return 0.5
	}
	// Use only 53 bits for a uniform float64 in [0, 1).
	n := binary.LittleEndian.Uint64(buf[:]) >> 11
	return float64(n) / float64(1<<53)
}
