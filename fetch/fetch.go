// Package fetch retrieves the Swagger resource listing and every API
// declaration it names, over HTTP or from a local directory.
package fetch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/mcountryman/auth0-management-codegen/config"
	"github.com/mcountryman/auth0-management-codegen/errors"
	"github.com/mcountryman/auth0-management-codegen/logger"
	"github.com/mcountryman/auth0-management-codegen/swagger"
)

// Manifest is one API declaration keyed by its listing path.
type Manifest struct {
	Path        string
	Declaration *swagger.Declaration
}

// Result is everything one fetch produced.
type Result struct {
	Listing   *swagger.ResourceListing
	Manifests []Manifest // listing order
}

// loader returns the document for a listing path ("" is the listing itself).
type loader interface {
	load(ctx context.Context, path string) ([]byte, swagger.Format, error)
	describe(path string) string
}

// Fetcher downloads description documents.
type Fetcher struct {
	src         loader
	limiter     *rate.Limiter
	concurrency int
	constraint  string
	log         *zap.SugaredLogger
}

// Option customises a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient replaces the HTTP client. It has no effect in local mode.
func WithHTTPClient(client *Client) Option {
	return func(f *Fetcher) {
		if h, ok := f.src.(*httpLoader); ok {
			h.client = client
		}
	}
}

// New builds a Fetcher from the source section. A non-empty Manifest selects
// local mode: the listing is read from that file and each declaration from
// <dir>/<path>.json next to it.
func New(src config.SourceConfig, versionConstraint string, opts ...Option) *Fetcher {
	f := &Fetcher{
		limiter:     rate.NewLimiter(rate.Inf, 0),
		concurrency: max(src.Concurrency, 1),
		constraint:  versionConstraint,
		log:         logger.ComponentLogger("fetch"),
	}
	if src.RequestsPerSecond > 0 {
		f.limiter = rate.NewLimiter(rate.Limit(src.RequestsPerSecond), 1)
	}

	if src.Manifest != "" {
		f.src = &dirLoader{listing: src.Manifest, dir: filepath.Dir(src.Manifest)}
	} else {
		timeout := time.Duration(src.TimeoutSeconds) * time.Second
		f.src = &httpLoader{baseURL: strings.TrimRight(src.BaseURL, "/"), client: NewClient(timeout)}
	}

	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch loads the listing, checks its swagger version and then loads every
// declaration concurrently. The first failure cancels the rest.
func (f *Fetcher) Fetch(ctx context.Context) (*Result, error) {
	start := time.Now()

	data, format, err := f.get(ctx, "")
	if err != nil {
		return nil, err
	}
	listing, err := swagger.DecodeListing(data, format)
	if err != nil {
		return nil, errors.WrapFetchFailed(err, f.src.describe(""))
	}
	if f.constraint != "" {
		if err := swagger.CheckVersion(listing.SwaggerVersion, f.constraint); err != nil {
			return nil, err
		}
	}

	manifests := make([]Manifest, len(listing.APIs))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.concurrency)
	for i, api := range listing.APIs {
		g.Go(func() error {
			data, format, err := f.get(gctx, api.Path)
			if err != nil {
				return err
			}
			decl, err := swagger.DecodeDeclaration(data, format)
			if err != nil {
				return errors.WrapFetchFailed(err, f.src.describe(api.Path))
			}

			mu.Lock()
			manifests[i] = Manifest{Path: api.Path, Declaration: decl}
			mu.Unlock()

			f.log.Debugw("fetched declaration",
				logger.FieldPath, api.Path,
				logger.FieldCount, len(decl.ModelNames()),
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	f.log.Infow("fetched manifests",
		logger.FieldCount, len(manifests),
		logger.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return &Result{Listing: listing, Manifests: manifests}, nil
}

func (f *Fetcher) get(ctx context.Context, path string) ([]byte, swagger.Format, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, "", errors.WrapFetchFailed(err, f.src.describe(path))
	}
	if logger.ShouldLogTrace(logger.Verbosity) {
		f.log.Debugw("request", logger.FieldURL, f.src.describe(path))
	}
	data, format, err := f.src.load(ctx, path)
	if err != nil {
		return nil, "", errors.WrapFetchFailed(err, f.src.describe(path))
	}
	return data, format, nil
}

type httpLoader struct {
	baseURL string
	client  *Client
}

func (h *httpLoader) load(ctx context.Context, path string) ([]byte, swagger.Format, error) {
	data, err := h.client.GetDocument(ctx, h.describe(path))
	return data, swagger.FormatJSON, err
}

func (h *httpLoader) describe(path string) string { return h.baseURL + path }

type dirLoader struct {
	listing string
	dir     string
}

func (d *dirLoader) load(ctx context.Context, path string) ([]byte, swagger.Format, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	name := d.describe(path)
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to read document")
	}
	return data, swagger.FormatForPath(name), nil
}

func (d *dirLoader) describe(path string) string {
	if path == "" {
		return d.listing
	}
	return filepath.Join(d.dir, filepath.FromSlash(strings.TrimPrefix(path, "/"))+".json")
}
