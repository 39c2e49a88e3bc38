package client

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/wicaksn/sertika/internal/payload"
)

// PreviewState is the previewer's coarse state.
type PreviewState int

const (
	// PreviewIdle: nothing requested yet.
	PreviewIdle PreviewState = iota
	// PreviewPending: a request is debouncing or in flight.
	PreviewPending
	// PreviewReady: artifacts are available (possibly stale).
	PreviewReady
)

// DefaultDebounce is the quiet period after the last edit before a
// preview request is issued.
const DefaultDebounce = 800 * time.Millisecond

// Previewer issues debounced preview requests as the document changes.
//
// Every Update restarts the debounce timer; when it fires, the latest
// payload is sent unless its canonical hash matches the last payload
// already rendered. In-flight requests are never cancelled: the last
// response received wins, and a response older than the newest request
// is still applied. That stale-overwrite race is a known defect kept
// for fidelity with the original behavior; it is logged when detected.
//
// Preview failures are non-fatal: they are logged and the previous
// artifacts remain available.
type Previewer struct {
	client   *Client
	debounce time.Duration
	log      *zap.Logger

	mu        sync.Mutex
	timer     *time.Timer
	latest    *payload.Payload
	seq       int64 // request stamp (logical, monotonic)
	applied   int64 // stamp of the request whose response is showing
	sentHash  string
	state     PreviewState
	artifacts *PreviewArtifacts
	inflight  sync.WaitGroup
}

// PreviewerOption configures a Previewer.
type PreviewerOption func(*Previewer)

// WithDebounce overrides the debounce window.
func WithDebounce(d time.Duration) PreviewerOption {
	return func(p *Previewer) { p.debounce = d }
}

// WithPreviewerLogger sets the previewer's logger.
func WithPreviewerLogger(log *zap.Logger) PreviewerOption {
	return func(p *Previewer) { p.log = log }
}

// NewPreviewer returns a previewer bound to a client.
func NewPreviewer(c *Client, opts ...PreviewerOption) *Previewer {
	p := &Previewer{
		client:   c,
		debounce: DefaultDebounce,
		log:      zap.NewNop(),
		state:    PreviewIdle,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Update records a new document payload and restarts the debounce
// timer.
func (p *Previewer) Update(pl *payload.Payload) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.latest = pl
	p.state = PreviewPending
	if p.timer != nil {
		p.timer.Stop()
	}
	p.timer = time.AfterFunc(p.debounce, p.fire)
}

// Flush issues the pending request immediately, bypassing the debounce
// window. Used by the CLI, which has no keystroke stream to debounce.
func (p *Previewer) Flush() {
	p.mu.Lock()
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	p.mu.Unlock()
	p.fire()
}

// fire sends the latest payload unless it hashes identically to the
// one already rendered.
func (p *Previewer) fire() {
	p.mu.Lock()
	pl := p.latest
	if pl == nil {
		p.mu.Unlock()
		return
	}
	hash, err := payload.Hash(pl)
	if err == nil && hash == p.sentHash && p.artifacts != nil {
		p.state = PreviewReady
		p.mu.Unlock()
		return
	}
	p.seq++
	stamp := p.seq
	if err == nil {
		p.sentHash = hash
	}
	p.mu.Unlock()

	p.inflight.Add(1)
	go func() {
		defer p.inflight.Done()
		artifacts, err := p.client.GeneratePreview(context.Background(), pl)

		p.mu.Lock()
		defer p.mu.Unlock()
		if err != nil {
			// Non-fatal: keep whatever was rendered before, but
			// forget the hash so the same payload retries.
			p.log.Warn("preview failed", zap.Error(err))
			if hash != "" && p.sentHash == hash {
				p.sentHash = ""
			}
			if p.artifacts != nil {
				p.state = PreviewReady
			} else {
				p.state = PreviewIdle
			}
			return
		}
		if stamp < p.seq {
			// Known race: a newer request is out but this older
			// response still wins until that one lands.
			p.log.Warn("applying stale preview response",
				zap.Int64("response_seq", stamp),
				zap.Int64("latest_seq", p.seq))
		}
		p.applied = stamp
		p.artifacts = artifacts
		p.state = PreviewReady
	}()
}

// Artifacts returns the current artifacts (nil before the first
// success) and state.
func (p *Previewer) Artifacts() (*PreviewArtifacts, PreviewState) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.artifacts, p.state
}

// Wait blocks until no request is in flight. Test and CLI helper; the
// wizard itself never blocks on previews.
func (p *Previewer) Wait() {
	p.inflight.Wait()
}

// Close stops the debounce timer. In-flight requests are left to
// finish; their responses are applied if they arrive, matching the
// original no-cancellation behavior.
func (p *Previewer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}
