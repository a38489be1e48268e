// Package selfupdate checks GitHub releases for a newer watcrack and swaps
// the running binary in place.
package selfupdate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"runtime"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/mod/semver"
)

const (
	defaultOwner      = "abhisek"
	defaultRepo       = "watcrack"
	defaultAPIBaseURL = "https://api.github.com"
	defaultTimeout    = 10 * time.Second
)

// Checker talks to the GitHub releases API.
type Checker struct {
	client     *http.Client
	owner      string
	repo       string
	apiBaseURL string
	goos       string
	goarch     string
	execPath   func() (string, error)
	logger     *zap.Logger
}

// Option configures a Checker.
type Option func(*Checker)

// WithBaseURL overrides the GitHub API base URL.
func WithBaseURL(u string) Option {
	return func(c *Checker) { c.apiBaseURL = u }
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Checker) { c.client.Timeout = d }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Checker) {
		if l != nil {
			c.logger = l.Named("selfupdate")
		}
	}
}

func withExecPath(fn func() (string, error)) Option {
	return func(c *Checker) { c.execPath = fn }
}

func withPlatform(goos, goarch string) Option {
	return func(c *Checker) { c.goos, c.goarch = goos, goarch }
}

// NewChecker returns a Checker for the watcrack repository.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		client:     &http.Client{Timeout: defaultTimeout},
		owner:      defaultOwner,
		repo:       defaultRepo,
		apiBaseURL: defaultAPIBaseURL,
		goos:       runtime.GOOS,
		goarch:     runtime.GOARCH,
		execPath:   os.Executable,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckInput is the version to compare against.
type CheckInput struct {
	Version string
}

// CheckResult reports the newest published release.
type CheckResult struct {
	CurrentVersion  string
	LatestVersion   string
	ReleaseURL      string
	UpdateAvailable bool
}

type release struct {
	TagName string         `json:"tag_name"`
	HTMLURL string         `json:"html_url"`
	Assets  []releaseAsset `json:"assets"`
}

type releaseAsset struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	URL  string `json:"browser_download_url"`
}

func (r *release) asset(name string) (releaseAsset, bool) {
	for _, a := range r.Assets {
		if a.Name == name {
			return a, true
		}
	}
	return releaseAsset{}, false
}

// Check fetches the latest release and compares it with input.Version
// using semantic versioning.
func (c *Checker) Check(ctx context.Context, input *CheckInput) (*CheckResult, error) {
	rel, err := c.fetchRelease(ctx, "")
	if err != nil {
		return nil, err
	}

	available := newer(rel.TagName, input.Version)
	c.logger.Debug("release check",
		zap.String("current", input.Version),
		zap.String("latest", rel.TagName),
		zap.Bool("update_available", available))

	return &CheckResult{
		CurrentVersion:  input.Version,
		LatestVersion:   rel.TagName,
		ReleaseURL:      rel.HTMLURL,
		UpdateAvailable: available,
	}, nil
}

// fetchRelease loads the release for tag, or the latest one when tag is empty.
func (c *Checker) fetchRelease(ctx context.Context, tag string) (*release, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", strings.TrimRight(c.apiBaseURL, "/"), c.owner, c.repo)
	if tag != "" {
		url = fmt.Sprintf("%s/repos/%s/%s/releases/tags/%s", strings.TrimRight(c.apiBaseURL, "/"), c.owner, c.repo, tag)
	}
	resp, err := c.get(ctx, url, "application/vnd.github+json")
	if err != nil {
		return nil, fmt.Errorf("fetch release: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var rel release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}
	if !semver.IsValid(canonical(rel.TagName)) {
		return nil, fmt.Errorf("release tag %q is not a semantic version", rel.TagName)
	}
	return &rel, nil
}

// get issues a GET and fails on any status other than 200.
func (c *Checker) get(ctx context.Context, url, accept string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}
	return resp, nil
}

// newer reports whether tag is ahead of current. Versions that are not
// semantic (local builds) always compare as older.
func newer(tag, current string) bool {
	cur := canonical(current)
	return !semver.IsValid(cur) || semver.Compare(canonical(tag), cur) > 0
}

// canonical adds the "v" prefix semver expects.
func canonical(v string) string {
	v = strings.TrimSpace(v)
	if v != "" && !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}
