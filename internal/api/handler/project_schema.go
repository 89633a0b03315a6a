package handler

import "time"

type createProjectRequest struct {
	Name        string    `json:"name"        validate:"required"`
	Description string    `json:"description" validate:"required"`
	Deadline    time.Time `json:"deadline"    validate:"required"`
}

type assignmentRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

type projectResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Deadline        time.Time `json:"deadline"`
	Status          string    `json:"status"`
	AssignedUserIDs []string  `json:"assigned_user_ids"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type assignedMemberResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// projectDetailResponse is the single-project view with team membership
// resolved to users. Only Admins and assigned members ever receive it.
type projectDetailResponse struct {
	projectResponse
	Members []assignedMemberResponse `json:"members"`
}

type assignmentResponse struct {
	AssignedUserIDs []string `json:"assigned_user_ids"`
}

type documentResponse struct {
	ID         string    `json:"id"`
	FileName   string    `json:"file_name"`
	FilePath   string    `json:"file_path"`
	ProjectID  string    `json:"project_id"`
	UploadedBy string    `json:"uploaded_by"`
	CreatedAt  time.Time `json:"created_at"`
}
