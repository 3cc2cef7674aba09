package drive

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"golang.org/x/time/rate"
)

// Client lists public Drive folders through the files API. Drive calls
// carry a fixed client-side timeout.
type Client struct {
	baseURL     string
	apiKey      string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:     baseURL,
		apiKey:      apiKey,
		rateLimiter: rate.NewLimiter(rate.Limit(2), 5),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// ListImages returns every image file directly inside the folder,
// following pagination.
func (c *Client) ListImages(ctx context.Context, folderID string) ([]File, error) {
	var files []File
	pageToken := ""

	for {
		params := url.Values{}
		params.Set("key", c.apiKey)
		params.Set("q", fmt.Sprintf("'%s' in parents and mimeType contains 'image/' and trashed = false", folderID))
		params.Set("fields", "nextPageToken,files(id,name,size,mimeType,thumbnailLink,webContentLink)")
		params.Set("pageSize", "1000")
		if pageToken != "" {
			params.Set("pageToken", pageToken)
		}

		var page FileList
		if err := c.doRequest(ctx, "/files", params, &page); err != nil {
			return nil, fmt.Errorf("failed to list folder %s: %w", folderID, err)
		}
		files = append(files, page.Files...)

		if page.NextPageToken == "" {
			return files, nil
		}
		pageToken = page.NextPageToken
	}
}

func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values, result interface{}) error {
	fullURL := c.baseURL + endpoint + "?" + params.Encode()

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter error: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "DMTHub/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(bodyBytes))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

var (
	folderIDPattern = regexp.MustCompile(`/folders/([a-zA-Z0-9_-]+)`)
	bareIDPattern   = regexp.MustCompile(`^[a-zA-Z0-9_-]{20,}$`)
)

// ExtractFolderID pulls the folder id out of a Drive URL; a bare id
// passes through unchanged.
func ExtractFolderID(rawURL string) (string, error) {
	if m := folderIDPattern.FindStringSubmatch(rawURL); len(m) == 2 {
		return m[1], nil
	}
	if bareIDPattern.MatchString(rawURL) {
		return rawURL, nil
	}
	return "", fmt.Errorf("not a drive folder URL: %s", rawURL)
}
