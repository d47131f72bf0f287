package request

type PresignedURL struct {
	ContentType string `json:"content_type" example:"image/jpeg"`
	FileName    string `json:"file_name" example:"photo.jpg"`
}
