package update

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ReleasesURL is the GitHub endpoint for the latest newsportal release.
const ReleasesURL = "https://api.github.com/repos/matheuskafuri/newsportal/releases/latest"

// Result holds the outcome of a version check.
type Result struct {
	CurrentVersion string
	LatestVersion  string
	URL            string
}

// Newer reports whether the latest release differs from the running build.
func (r Result) Newer() bool {
	return r.LatestVersion != "" && r.LatestVersion != r.CurrentVersion
}

type ghRelease struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Check asks the releases endpoint for the latest tag. Dev builds are never
// reported as outdated.
func Check(ctx context.Context, client *http.Client, url, currentVersion string) (Result, error) {
	res := Result{CurrentVersion: strings.TrimPrefix(currentVersion, "v")}
	if res.CurrentVersion == "dev" {
		return res, nil
	}
	if client == nil {
		client = http.DefaultClient
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return res, fmt.Errorf("building release request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := client.Do(req)
	if err != nil {
		return res, fmt.Errorf("checking latest release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return res, fmt.Errorf("checking latest release: HTTP %d", resp.StatusCode)
	}

	var release ghRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return res, fmt.Errorf("decoding release: %w", err)
	}

	res.LatestVersion = strings.TrimPrefix(release.TagName, "v")
	res.URL = release.HTMLURL
	return res, nil
}
