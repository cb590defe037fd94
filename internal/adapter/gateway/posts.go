package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"blogclient/internal/domain"
)

type postsResponse struct {
	Status string `json:"status"`
	Data   struct {
		Posts []domain.Post `json:"posts"`
	} `json:"data"`
}

type postResponse struct {
	Status string `json:"status"`
	Data   struct {
		Post domain.Post `json:"post"`
	} `json:"data"`
}

// ListPosts fetches the full feed. An empty feed is a valid result,
// not an error.
func (g *Gateway) ListPosts(ctx context.Context) ([]domain.Post, error) {
	var resp postsResponse
	if err := g.do(ctx, http.MethodGet, "/posts", nil, "", &resp); err != nil {
		return nil, err
	}
	return resp.Data.Posts, nil
}

// GetPost fetches a single post by its server-assigned id.
func (g *Gateway) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	var resp postResponse
	if err := g.do(ctx, http.MethodGet, "/posts/"+id, nil, "", &resp); err != nil {
		var remote *domain.RemoteError
		if errors.As(err, &remote) && remote.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", domain.ErrPostNotFound, id)
		}
		return nil, err
	}
	return &resp.Data.Post, nil
}

// CreatePost submits a new post as a multipart body: the image binary
// in one part, the remaining fields JSON-encoded in another.
func (g *Gateway) CreatePost(ctx context.Context, draft domain.PostDraft) (*domain.Post, error) {
	fields := map[string]string{
		"title":    draft.Title,
		"content":  draft.Content,
		"category": draft.Category,
	}
	body, contentType, err := multipartBody(fields, draft.Image)
	if err != nil {
		return nil, err
	}

	var resp postResponse
	if err := g.do(ctx, http.MethodPost, "/posts", body, contentType, &resp); err != nil {
		return nil, err
	}
	return &resp.Data.Post, nil
}

// UpdatePost submits a partial patch. Only the fields present in the
// patch are sent; the image part is omitted when unchanged.
func (g *Gateway) UpdatePost(ctx context.Context, id string, patch domain.PostPatch) (*domain.Post, error) {
	body, contentType, err := multipartBody(patch.Fields, patch.Image)
	if err != nil {
		return nil, err
	}

	var resp postResponse
	if err := g.do(ctx, http.MethodPatch, "/posts/"+id, body, contentType, &resp); err != nil {
		return nil, err
	}
	return &resp.Data.Post, nil
}

// DeletePost removes a post by id.
func (g *Gateway) DeletePost(ctx context.Context, id string) error {
	return g.do(ctx, http.MethodDelete, "/posts/"+id, nil, "", nil)
}

// multipartBody assembles the API's mutation payload: an optional
// binary "image" part plus a "data" part holding the JSON-encoded
// fields. The image is never inlined into the JSON.
func multipartBody(fields map[string]string, image *domain.Attachment) (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if image != nil {
		part, err := writer.CreateFormFile("image", image.Filename)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, image.Content); err != nil {
			return nil, "", err
		}
	}

	data, err := json.Marshal(fields)
	if err != nil {
		return nil, "", err
	}
	if err := writer.WriteField("data", string(data)); err != nil {
		return nil, "", err
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return &buf, writer.FormDataContentType(), nil
}
