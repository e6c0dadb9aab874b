package beanfolio

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"

	"github.com/etnz/beanfolio/date"
	"github.com/rs/zerolog"
)

// dailyCache is a RoundTripper that keeps successful GET responses on disk
// until the end of the day. Requests with a body are never cached.
type dailyCache struct {
	next   http.RoundTripper
	dir    string
	logger zerolog.Logger
}

// Daily returns a client that caches successful responses on disk, in dir
// (or the system temp dir when empty), for the rest of the day.
func Daily(dir string, logger zerolog.Logger) *http.Client {
	if dir == "" {
		dir = os.TempDir()
	}
	return &http.Client{Transport: &dailyCache{next: http.DefaultTransport, dir: dir, logger: logger}}
}

// path returns the cache file for req. Today's date is part of the name so
// that entries expire at midnight.
func (c *dailyCache) path(req *http.Request) string {
	sum := sha256.Sum256([]byte(req.URL.String()))
	return filepath.Join(c.dir, "beanfolio-"+date.Today().String()+"-"+hex.EncodeToString(sum[:12])+".http")
}

func (c *dailyCache) RoundTrip(req *http.Request) (*http.Response, error) {
	log := c.logger.With().Str("method", req.Method).Str("host", req.URL.Host).Str("path", req.URL.Path).Logger()
	if req.Method != http.MethodGet {
		resp, err := c.next.RoundTrip(req)
		if err == nil {
			log.Info().Str("status", resp.Status).Msg("http")
		}
		return resp, err
	}

	name := c.path(req)
	if resp, err := c.load(name, req); err == nil {
		log.Debug().Str("file", name).Msg("cache hit")
		return resp, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Str("file", name).Msg("unreadable cache entry")
	}

	resp, err := c.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Info().Str("status", resp.Status).Msg("http")
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp, nil
	}
	// DumpResponse replaces resp.Body with an in-memory copy.
	raw, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(name, raw, 0o644); err != nil {
		log.Warn().Err(err).Msg("cannot write cache entry")
	}
	return resp, nil
}

// load reads back a response stored by RoundTrip.
func (c *dailyCache) load(name string, req *http.Request) (*http.Response, error) {
	raw, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewReader(raw)), req)
}

// getJSON decodes the JSON body of a GET on addr into data.
func getJSON(ctx context.Context, client *http.Client, addr string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	return roundTripJSON(client, req, data)
}

// postJSON sends body as contentType to addr and decodes the JSON answer into data.
func postJSON(ctx context.Context, client *http.Client, addr, contentType string, body io.Reader, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, addr, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)
	return roundTripJSON(client, req, data)
}

func roundTripJSON(client *http.Client, req *http.Request, data any) error {
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s %s%s: %s", req.Method, req.URL.Host, req.URL.Path, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(data); err != nil {
		return fmt.Errorf("%s %s%s: invalid JSON: %w", req.Method, req.URL.Host, req.URL.Path, err)
	}
	return nil
}
