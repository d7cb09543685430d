package platform

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// DefaultCheckURL is probed by the connection indicator.
const DefaultCheckURL = "https://www.google.com/generate_204"

// ProbeTimeout bounds a single reachability check.
const ProbeTimeout = 5 * time.Second

var probeClient = &http.Client{Timeout: ProbeTimeout}

// CheckReachable issues a HEAD request to url. Any response below 500 counts
// as reachable; transport errors and server errors do not.
func CheckReachable(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return fmt.Errorf("build probe request: %w", err)
	}
	resp, err := probeClient.Do(req)
	if err != nil {
		return fmt.Errorf("probe %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("probe %s: status %d", url, resp.StatusCode)
	}
	return nil
}
