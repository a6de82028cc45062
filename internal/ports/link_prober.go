package ports

import "context"

// ProbeResult is the observable outcome of probing an external URL.
type ProbeResult struct {
	StatusCode int
	Err        error
}

// LinkProber checks that an external URL answers.
type LinkProber interface {
	Probe(ctx context.Context, url string) ProbeResult
}
