package domain

import "time"

// Document records an uploaded file attached to a project. The blob itself
// lives in the file store; FilePath is the store's handle for it.
type Document struct {
	ID         string    `json:"id"`
	FileName   string    `json:"file_name"`
	FilePath   string    `json:"file_path"`
	ProjectID  string    `json:"project_id"`
	UploadedBy string    `json:"uploaded_by"`
	CreatedAt  time.Time `json:"created_at"`
}
