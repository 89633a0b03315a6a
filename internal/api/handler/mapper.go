package handler

import (
	"github.com/pixelforge/nexus-api/internal/core/domain"
	"github.com/pixelforge/nexus-api/internal/core/ports"
)

// --- Domain → HTTP response ---

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

func toUserResponses(users []*domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}

func toProjectResponse(p *domain.Project) projectResponse {
	return projectResponse{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Deadline:        p.Deadline,
		Status:          string(p.Status),
		AssignedUserIDs: p.AssignedUserIDs,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func toProjectResponses(projects []*domain.Project) []projectResponse {
	out := make([]projectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, toProjectResponse(p))
	}
	return out
}

func toProjectDetailResponse(d *ports.ProjectDetail) projectDetailResponse {
	members := make([]assignedMemberResponse, 0, len(d.Members))
	for _, m := range d.Members {
		members = append(members, assignedMemberResponse{ID: m.ID, Username: m.Username, Role: m.Role})
	}
	return projectDetailResponse{
		projectResponse: toProjectResponse(d.Project),
		Members:         members,
	}
}

func toDocumentResponse(d *domain.Document) documentResponse {
	return documentResponse{
		ID:         d.ID,
		FileName:   d.FileName,
		FilePath:   d.FilePath,
		ProjectID:  d.ProjectID,
		UploadedBy: d.UploadedBy,
		CreatedAt:  d.CreatedAt,
	}
}

func toDocumentResponses(docs []*domain.Document) []documentResponse {
	out := make([]documentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, toDocumentResponse(d))
	}
	return out
}
