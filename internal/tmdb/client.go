package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Fetcher defines the TMDB reads marquee performs.
// This interface is implemented by *Client and can be used for testing.
type Fetcher interface {
	FetchTrending(ctx context.Context) ([]Movie, error)
	FetchTopRated(ctx context.Context) ([]Movie, error)
	FetchByGenre(ctx context.Context, genreID int) ([]Movie, error)
	SearchMovies(ctx context.Context, query SearchQuery) ([]Movie, error)
	FetchMovie(ctx context.Context, id int) (*MovieDetails, error)
	FetchCredits(ctx context.Context, id int) (*Credits, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client talks to the TMDB v3 HTTP API.
type Client struct {
	baseURL   *url.URL
	imageBase string
	apiKey    string
	bearer    bool
	language  string
	http      *http.Client
	userAgent string
	logger    *slog.Logger
}

// Options configure a Client. APIKey is required.
type Options struct {
	APIKey       string
	BaseURL      string
	ImageBaseURL string
	Language     string
	Timeout      time.Duration
	UserAgent    string
	HTTPClient   *http.Client
	Logger       *slog.Logger
}

const (
	DefaultBaseURL      = "https://api.themoviedb.org/3"
	DefaultImageBaseURL = "https://image.tmdb.org/t/p"
	DefaultLanguage     = "en-US"

	defaultUserAgent = "marquee/dev"
	requestTimeout   = 10 * time.Second
	maxErrorBody     = 64 * 1024
)

// NewClient builds a Client from opts.
func NewClient(opts Options) (*Client, error) {
	key := strings.TrimSpace(opts.APIKey)
	if key == "" {
		return nil, fmt.Errorf("tmdb api key is required")
	}
	base, err := parseBaseURL(opts.BaseURL)
	if err != nil {
		return nil, err
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = requestTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	imageBase := strings.TrimRight(strings.TrimSpace(opts.ImageBaseURL), "/")
	if imageBase == "" {
		imageBase = DefaultImageBaseURL
	}
	language := strings.TrimSpace(opts.Language)
	if language == "" {
		language = DefaultLanguage
	}
	userAgent := strings.TrimSpace(opts.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{
		baseURL:   base,
		imageBase: imageBase,
		apiKey:    key,
		bearer:    isBearerToken(key),
		language:  language,
		http:      httpClient,
		userAgent: userAgent,
		logger:    logger,
	}, nil
}

// FetchTrending retrieves this week's trending movies.
func (c *Client) FetchTrending(ctx context.Context) ([]Movie, error) {
	return c.fetchList(ctx, "/trending/movie/week", pageOne())
}

// FetchTopRated retrieves the top-rated movies.
func (c *Client) FetchTopRated(ctx context.Context) ([]Movie, error) {
	return c.fetchList(ctx, "/movie/top_rated", pageOne())
}

// FetchByGenre discovers popular movies for a genre.
func (c *Client) FetchByGenre(ctx context.Context, genreID int) ([]Movie, error) {
	if genreID <= 0 {
		return nil, &ArgumentError{Name: "genre id", Value: genreID}
	}
	values := url.Values{}
	values.Set("with_genres", strconv.Itoa(genreID))
	values.Set("sort_by", "popularity.desc")
	return c.fetchList(ctx, "/discover/movie", values)
}

// SearchMovies searches by title. The search endpoint does not filter by
// genre, so a GenreID is applied to the results client-side.
func (c *Client) SearchMovies(ctx context.Context, query SearchQuery) ([]Movie, error) {
	query = query.Normalize()
	if query.Query == "" {
		return nil, ErrEmptyQuery
	}
	values := url.Values{}
	values.Set("query", query.Query)
	if query.GenreID > 0 {
		values.Set("with_genres", strconv.Itoa(query.GenreID))
	}
	movies, err := c.fetchList(ctx, "/search/movie", values)
	if err != nil {
		return nil, err
	}
	if query.GenreID <= 0 {
		return movies, nil
	}
	filtered := movies[:0]
	for _, m := range movies {
		if m.HasGenre(query.GenreID) {
			filtered = append(filtered, m)
		}
	}
	return filtered, nil
}

// FetchMovie retrieves the detail record for a movie.
func (c *Client) FetchMovie(ctx context.Context, id int) (*MovieDetails, error) {
	if id <= 0 {
		return nil, &ArgumentError{Name: "movie id", Value: id}
	}
	path := "/movie/" + strconv.Itoa(id)
	values := url.Values{}
	values.Set("language", c.language)
	var payload MovieDetails
	if err := c.get(ctx, path, values, &payload); err != nil {
		return nil, err
	}
	if err := validateMovie(path, payload.Movie); err != nil {
		return nil, err
	}
	return &payload, nil
}

// FetchCredits retrieves cast and crew for a movie.
func (c *Client) FetchCredits(ctx context.Context, id int) (*Credits, error) {
	if id <= 0 {
		return nil, &ArgumentError{Name: "movie id", Value: id}
	}
	path := "/movie/" + strconv.Itoa(id) + "/credits"
	var payload creditsResponse
	if err := c.get(ctx, path, nil, &payload); err != nil {
		return nil, err
	}
	return payload.credits(path)
}

// PosterURL returns the w500 poster URL for a poster path, or "".
func (c *Client) PosterURL(path string) string {
	return ImageURL(c.imageBase, "w500", path)
}

// BackdropURL returns the original-size backdrop URL, or "".
func (c *Client) BackdropURL(path string) string {
	return ImageURL(c.imageBase, "original", path)
}

// ImageURL joins an image base, a size and a TMDB file path.
func ImageURL(base, size, path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimRight(base, "/") + "/" + size + path
}

func (c *Client) fetchList(ctx context.Context, path string, values url.Values) ([]Movie, error) {
	var payload listResponse
	if err := c.get(ctx, path, values, &payload); err != nil {
		return nil, err
	}
	return payload.movies(path)
}

func (c *Client) get(ctx context.Context, path string, values url.Values, dest any) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	query := url.Values{}
	for k, v := range values {
		query[k] = v
	}
	if !c.bearer {
		query.Set("api_key", c.apiKey)
	}

	reqURL := *c.baseURL
	reqURL.Path = strings.TrimRight(c.baseURL.Path, "/") + path
	reqURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.bearer {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("tmdb request failed", "path", path, "err", err)
		return &TransportError{Path: path, Err: redact(err, c.apiKey)}
	}
	defer func() { _ = resp.Body.Close() }()
	c.logger.Debug("tmdb request", "path", path, "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		httpErr := &HTTPError{Path: path, Status: resp.StatusCode}
		var envelope errorResponse
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		if json.Unmarshal(body, &envelope) == nil {
			httpErr.Code = envelope.StatusCode
			httpErr.Message = strings.TrimSpace(envelope.StatusMessage)
		}
		return httpErr
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return &TransportError{Path: path, Err: ctxErr}
		}
		if isBodyReadFailure(err) {
			c.logger.Debug("tmdb body read failed", "path", path, "err", err)
			return &TransportError{Path: path, Err: redact(err, c.apiKey)}
		}
		return &ParseError{Path: path, Err: err}
	}
	return nil
}

// isBodyReadFailure reports whether a decode error came from the connection
// rather than the payload: a timeout or a body cut short.
func isBodyReadFailure(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func pageOne() url.Values {
	values := url.Values{}
	values.Set("page", "1")
	return values
}

// redact strips the api key from the URL recorded in a *url.Error.
func redact(err error, key string) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && key != "" {
		urlErr.URL = strings.ReplaceAll(urlErr.URL, url.QueryEscape(key), "REDACTED")
	}
	return err
}

// isBearerToken reports whether key is a v4 read access token (a JWT)
// rather than a v3 api key.
func isBearerToken(key string) bool {
	return strings.HasPrefix(key, "eyJ") && strings.Count(key, ".") == 2
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_base_url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api_base_url %q: missing host", raw)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
