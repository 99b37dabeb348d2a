// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pdiddy/researchmind/internal/httputil"
)

const pingTimeout = 5 * time.Second

// Ping checks that the generation backend answers HTTP on baseURL. It is
// a reachability probe only; a failing ping is advisory, the engine still
// attempts generation and folds failures into the turn.
func Ping(ctx context.Context, baseURL string) error {
	client := &http.Client{Timeout: pingTimeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(baseURL, "/")+"/", nil)
	if err != nil {
		return fmt.Errorf("building ping request: %w", err)
	}

	resp, err := httputil.DoWithRetry(ctx, client, req, 1)
	if err != nil {
		return fmt.Errorf("backend unreachable at %s: %w", baseURL, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("backend at %s returned status %d", baseURL, resp.StatusCode)
	}
	return nil
}
