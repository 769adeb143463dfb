package norms

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Source identifies where an effective table came from.
type Source string

const (
	SourceRemote  Source = "remote"
	SourceStore   Source = "store"
	SourceDefault Source = "default"
)

// Resolution is the outcome of a norms lookup: the table to use plus the
// source it was taken from. The source tag makes the fallback path
// observable without inspecting threshold values.
type Resolution struct {
	Table  Table  `json:"table"`
	Source Source `json:"source"`
}

// FetchFunc retrieves a raw norms payload from an external source. It is
// expected to honor ctx cancellation.
type FetchFunc func(ctx context.Context) ([]byte, error)

// ActiveLookup returns the currently active stored table, or nil when
// none is active.
type ActiveLookup func(ctx context.Context) (*Table, error)

// Resolver resolves the effective norms table per evaluation. Resolution
// is strictly two-stage: attempt each optional source with a bounded
// timeout producing a validated-or-absent result, then fall back. It
// never returns an error; the embedded defaults are the terminal
// fallback.
type Resolver struct {
	fetch   FetchFunc
	store   ActiveLookup
	timeout time.Duration
	log     zerolog.Logger
}

// NewResolver builds a resolver. fetch and store may each be nil, in
// which case that stage is skipped.
func NewResolver(fetch FetchFunc, store ActiveLookup, timeout time.Duration, log zerolog.Logger) *Resolver {
	if timeout <= 0 {
		timeout = 4 * time.Second
	}
	return &Resolver{fetch: fetch, store: store, timeout: timeout, log: log}
}

// Resolve returns the effective table. Each call is independent: no
// caching, no retries. Failures of the remote or store stage are absorbed
// and logged at debug level only.
func (r *Resolver) Resolve(ctx context.Context) Resolution {
	if r.fetch != nil {
		if t, ok := r.tryRemote(ctx); ok {
			return Resolution{Table: t, Source: SourceRemote}
		}
	}
	if r.store != nil {
		if t, ok := r.tryStore(ctx); ok {
			return Resolution{Table: t, Source: SourceStore}
		}
	}
	return Resolution{Table: Default(), Source: SourceDefault}
}

func (r *Resolver) tryRemote(ctx context.Context) (Table, bool) {
	fctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	data, err := r.fetch(fctx)
	if err != nil {
		r.log.Debug().Err(err).Msg("remote norms fetch failed, falling back")
		return Table{}, false
	}
	t, err := Parse(data)
	if err != nil {
		r.log.Debug().Err(err).Msg("remote norms payload rejected, falling back")
		return Table{}, false
	}
	return t, true
}

func (r *Resolver) tryStore(ctx context.Context) (Table, bool) {
	sctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	t, err := r.store(sctx)
	if err != nil {
		r.log.Debug().Err(err).Msg("norms store lookup failed, falling back")
		return Table{}, false
	}
	if t == nil {
		return Table{}, false
	}
	if err := t.Validate(); err != nil {
		r.log.Debug().Err(err).Msg("stored norms table rejected, falling back")
		return Table{}, false
	}
	return *t, true
}

// HTTPFetch returns a FetchFunc that GETs a JSON norms payload from url.
// Any non-200 status is an error; the resolver treats it as absence.
func HTTPFetch(url string, client *http.Client) FetchFunc {
	if client == nil {
		client = http.DefaultClient
	}
	return func(ctx context.Context) ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("build norms request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetch norms: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetch norms: unexpected status %d", resp.StatusCode)
		}
		return io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	}
}
