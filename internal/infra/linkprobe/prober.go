package linkprobe

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/taurgis/aegis-docsite/internal/ports"
)

// Some hosts reject HEAD; cap how much of the GET fallback body we drain.
const maxDrainBytes = 64 * 1024

type Prober struct {
	client *http.Client
}

func New(client *http.Client) *Prober {
	if client == nil {
		client = NewClient(DefaultConfig())
	}
	return &Prober{client: client}
}

// NewWithTimeout builds a prober whose client caps each probe at the given
// total timeout. Non-positive values keep the default.
func NewWithTimeout(timeout time.Duration) *Prober {
	cfg := DefaultConfig()
	if timeout > 0 {
		cfg.Timeout = timeout
	}
	return New(NewClient(cfg))
}

var _ ports.LinkProber = (*Prober)(nil)

// Probe issues a HEAD request and falls back to GET when the host answers
// HEAD with 405 or an error status of 4xx/5xx. Transport errors are returned
// in the result, never as a hard failure.
func (p *Prober) Probe(ctx context.Context, url string) ports.ProbeResult {
	status, err := p.do(ctx, http.MethodHead, url)
	if err == nil && status < 400 {
		return ports.ProbeResult{StatusCode: status}
	}

	getStatus, getErr := p.do(ctx, http.MethodGet, url)
	if getErr != nil {
		if err != nil {
			return ports.ProbeResult{Err: err}
		}
		return ports.ProbeResult{StatusCode: status}
	}
	return ports.ProbeResult{StatusCode: getStatus}
}

func (p *Prober) do(ctx context.Context, method string, url string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", "aegis-docsite-linkcheck")

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	// Drain a bounded amount so connections can be reused.
	_, _ = io.CopyN(io.Discard, resp.Body, maxDrainBytes)

	return resp.StatusCode, nil
}
