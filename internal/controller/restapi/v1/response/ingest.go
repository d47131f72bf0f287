package response

type PresignedURL struct {
	ImageID   string `json:"image_id" example:"01JABCDEFGHJKMNPQRSTVWXYZ0"`
	UploadURL string `json:"upload_url"`
	ExpiresAt string `json:"expires_at" example:"2026-03-01T10:05:00Z"`
}
