package response

type ReadURL struct {
	ImageID   string `json:"image_id"`
	URL       string `json:"url"`
	ExpiresAt string `json:"expires_at"`
}

type ReadURLs struct {
	Items []ReadURL `json:"items"`
}
