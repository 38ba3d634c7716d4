package netlify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.netlify.com/api/v1"

type Client struct {
	HTTPClient  *http.Client
	AccessToken string
	BaseURL     string
}

// SiteForms lists every form registered for a site.
func (c Client) SiteForms(ctx context.Context, siteID string) ([]Form, error) {
	var forms []Form
	if _, err := c.doJSON(ctx, http.MethodGet, "/sites/"+url.PathEscape(siteID)+"/forms", &forms); err != nil {
		return nil, err
	}
	return forms, nil
}

// FormSubmissions lists every submission recorded for a form.
func (c Client) FormSubmissions(ctx context.Context, formID string) ([]Submission, error) {
	var subs []Submission
	if _, err := c.doJSON(ctx, http.MethodGet, "/forms/"+url.PathEscape(formID)+"/submissions", &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// DeleteSubmission removes a submission from the store entirely.
func (c Client) DeleteSubmission(ctx context.Context, submissionID string) error {
	if c.AccessToken == "" {
		return fmt.Errorf("missing netlify access token")
	}
	if submissionID == "" {
		return fmt.Errorf("missing submission id")
	}
	status, err := c.doJSON(ctx, http.MethodDelete, "/submissions/"+url.PathEscape(submissionID), nil)
	if err != nil {
		return fmt.Errorf("failed to delete submission: status=%d: %w", status, err)
	}
	return nil
}

// SubmitForm POSTs form-encoded values to an arbitrary URL. Netlify ingests
// form posts against the site itself, not the API, so this bypasses BaseURL.
func (c Client) SubmitForm(ctx context.Context, postURL string, values url.Values) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, postURL, strings.NewReader(values.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("form post rejected: status=%d", resp.StatusCode)
	}
	return nil
}

func (c Client) doJSON(ctx context.Context, method, path string, respBody any) (int, error) {
	if c.AccessToken == "" {
		return 0, fmt.Errorf("missing netlify access token")
	}

	base := c.BaseURL
	if base == "" {
		base = defaultBaseURL
	}

	req, err := http.NewRequestWithContext(ctx, method, base+path, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Authorization", "Bearer "+c.AccessToken)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	b, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return resp.StatusCode, readErr
	}

	// Surface the Netlify error body for non-2xx, so callers can see expired
	// tokens, missing forms, etc.
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if len(b) > 0 {
			return resp.StatusCode, fmt.Errorf("netlify api error: status=%d body=%s", resp.StatusCode, string(b))
		}
		return resp.StatusCode, fmt.Errorf("netlify api error: status=%d", resp.StatusCode)
	}

	if respBody != nil && len(b) > 0 {
		if err := json.Unmarshal(b, respBody); err != nil {
			// Include body for easier debugging (unexpected shape, partial responses, etc).
			return resp.StatusCode, fmt.Errorf("decode netlify response failed: %w body=%s", err, string(b))
		}
	}

	return resp.StatusCode, nil
}

func (c Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: 20 * time.Second}
}
