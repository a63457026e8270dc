// ABOUTME: Page fetching for the reader service
// ABOUTME: Caps the body, decodes the charset and parses the HTML tree

package reader

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"

	coreerrors "splitview-api/core/errors"
)

// fetch downloads target and parses it. The returned URL is the page
// address after redirects and is used to absolutize links.
func (s *Service) fetch(ctx context.Context, target string) (*html.Node, *url.URL, error) {
	resp, err := s.deps.HTTPClient.Get(ctx, target)
	if err != nil {
		return nil, nil, &coreerrors.FetchError{URL: target, Err: err}
	}
	body := resp.Body()
	if body != nil {
		defer body.Close()
	}

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, nil, &coreerrors.FetchError{URL: target, StatusCode: resp.StatusCode()}
	}
	if body == nil {
		return nil, nil, &coreerrors.FetchError{URL: target, Err: fmt.Errorf("empty response body")}
	}

	r, err := charset.NewReader(io.LimitReader(body, s.cfg.MaxBodyBytes), resp.Header("Content-Type"))
	if err != nil {
		return nil, nil, &coreerrors.FetchError{URL: target, Err: fmt.Errorf("decode body: %w", err)}
	}

	doc, err := html.Parse(r)
	if err != nil {
		return nil, nil, &coreerrors.FetchError{URL: target, Err: fmt.Errorf("parse html: %w", err)}
	}

	pageURL, err := url.Parse(target)
	if err != nil {
		return nil, nil, &coreerrors.FetchError{URL: target, Err: err}
	}
	if final := resp.FinalURL(); final != "" {
		if u, err := url.Parse(final); err == nil && u.Host != "" {
			pageURL = u
		}
	}

	return doc, pageURL, nil
}
