package verify

import (
	"errors"
	"strings"
)

// ErrInvalidInput is returned by Verify when the request carries no content.
// It is the only per-request error the pipeline surfaces; everything past
// normalization degrades into the result itself.
var ErrInvalidInput = errors.New("verify: content is required")

// Author carries optional metadata about the posting account.
type Author struct {
	Username    string `json:"username,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	Followers   int    `json:"followers,omitempty"`
	Verified    bool   `json:"verified,omitempty"`
	AccountAge  string `json:"accountAge,omitempty"`
}

// VerificationRequest is the caller-supplied content to analyze. Only
// Content is required; everything else enriches the prompt when present.
type VerificationRequest struct {
	Content   string   `json:"content"`
	SourceURL string   `json:"sourceUrl,omitempty"`
	Platform  string   `json:"platform,omitempty"`
	MediaURLs []string `json:"mediaUrls,omitempty"`
	Author    *Author  `json:"author,omitempty"`
}

// NormalizeRequest shapes loose caller input into the canonical request.
// Pure: trims every string field, drops blank media entries, and fails
// fast with ErrInvalidInput when no content remains.
func NormalizeRequest(req VerificationRequest) (VerificationRequest, error) {
	req.Content = strings.TrimSpace(req.Content)
	if req.Content == "" {
		return VerificationRequest{}, ErrInvalidInput
	}

	req.SourceURL = strings.TrimSpace(req.SourceURL)
	req.Platform = strings.TrimSpace(req.Platform)

	if len(req.MediaURLs) > 0 {
		urls := make([]string, 0, len(req.MediaURLs))
		for _, u := range req.MediaURLs {
			u = strings.TrimSpace(u)
			if u != "" {
				urls = append(urls, u)
			}
		}
		req.MediaURLs = urls
	}

	if req.Author != nil {
		a := *req.Author
		a.Username = strings.TrimSpace(a.Username)
		a.DisplayName = strings.TrimSpace(a.DisplayName)
		a.AccountAge = strings.TrimSpace(a.AccountAge)
		if a == (Author{}) {
			req.Author = nil
		} else {
			req.Author = &a
		}
	}

	return req, nil
}
