package gateway

import "strings"

// AssetResolver turns stored asset references into fetchable URLs on
// the static file host.
type AssetResolver struct {
	baseURL string
}

func NewAssetResolver(baseURL string) *AssetResolver {
	return &AssetResolver{baseURL: strings.TrimRight(baseURL, "/")}
}

// PostImageURL resolves a post's image reference.
func (r *AssetResolver) PostImageURL(image string) string {
	return r.baseURL + "/posts/" + image
}

// UserPhotoURL resolves a user's profile photo reference.
func (r *AssetResolver) UserPhotoURL(photo string) string {
	return r.baseURL + "/users/" + photo
}
