package domain

import (
	"errors"
	"time"
)

// ProjectStatus represents the lifecycle state of a project.
type ProjectStatus string

const (
	StatusActive    ProjectStatus = "Active"
	StatusCompleted ProjectStatus = "Completed"
)

var ErrProjectNotFound = errors.New("project not found")
var ErrForbidden = errors.New("access forbidden")
var ErrNotDeveloper = errors.New("can only assign users with the Developer role")
var ErrAlreadyAssigned = errors.New("user is already assigned to this project")

// Project is the core aggregate root. AssignedUserIDs is a set of Developer
// identity ids; membership order carries no meaning.
type Project struct {
	ID              string        `json:"id" bson:"_id,omitempty"`
	Name            string        `json:"name" bson:"name"`
	Description     string        `json:"description" bson:"description"`
	Deadline        time.Time     `json:"deadline" bson:"deadline"`
	Status          ProjectStatus `json:"status" bson:"status"`
	AssignedUserIDs []string      `json:"assigned_user_ids" bson:"assigned_user_ids"`
	CreatedAt       time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at" bson:"updated_at"`
}

// IsAssigned reports whether userID is a member of the project's team set.
func (p *Project) IsAssigned(userID string) bool {
	for _, id := range p.AssignedUserIDs {
		if id == userID {
			return true
		}
	}
	return false
}
