package verify

import (
	"errors"
	"testing"
)

func TestNormalizeRequest(t *testing.T) {
	tests := []struct {
		name    string
		in      VerificationRequest
		wantErr bool
		check   func(t *testing.T, got VerificationRequest)
	}{
		{
			name:    "empty content rejected",
			in:      VerificationRequest{},
			wantErr: true,
		},
		{
			name:    "whitespace-only content rejected",
			in:      VerificationRequest{Content: "   \n\t"},
			wantErr: true,
		},
		{
			name: "fields trimmed",
			in: VerificationRequest{
				Content:   "  claim text  ",
				SourceURL: " https://example.com ",
				Platform:  " twitter ",
			},
			check: func(t *testing.T, got VerificationRequest) {
				if got.Content != "claim text" {
					t.Errorf("Content = %q", got.Content)
				}
				if got.SourceURL != "https://example.com" {
					t.Errorf("SourceURL = %q", got.SourceURL)
				}
				if got.Platform != "twitter" {
					t.Errorf("Platform = %q", got.Platform)
				}
			},
		},
		{
			name: "blank media entries dropped, order preserved",
			in: VerificationRequest{
				Content:   "x",
				MediaURLs: []string{"a.jpg", "  ", "b.jpg", ""},
			},
			check: func(t *testing.T, got VerificationRequest) {
				if len(got.MediaURLs) != 2 || got.MediaURLs[0] != "a.jpg" || got.MediaURLs[1] != "b.jpg" {
					t.Errorf("MediaURLs = %v", got.MediaURLs)
				}
			},
		},
		{
			name: "empty author dropped",
			in: VerificationRequest{
				Content: "x",
				Author:  &Author{Username: "  "},
			},
			check: func(t *testing.T, got VerificationRequest) {
				if got.Author != nil {
					t.Errorf("Author = %+v, want nil", got.Author)
				}
			},
		},
		{
			name: "author fields trimmed",
			in: VerificationRequest{
				Content: "x",
				Author:  &Author{Username: " alice ", Followers: 10},
			},
			check: func(t *testing.T, got VerificationRequest) {
				if got.Author == nil || got.Author.Username != "alice" || got.Author.Followers != 10 {
					t.Errorf("Author = %+v", got.Author)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeRequest(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("err = %v, want ErrInvalidInput", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, got)
		})
	}
}

func TestNormalizeRequest_DoesNotMutateCaller(t *testing.T) {
	author := &Author{Username: " alice "}
	in := VerificationRequest{Content: "x", Author: author}

	if _, err := NormalizeRequest(in); err != nil {
		t.Fatal(err)
	}
	if author.Username != " alice " {
		t.Errorf("caller's Author mutated: %q", author.Username)
	}
}
