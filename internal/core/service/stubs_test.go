package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/pixelforge/nexus-api/internal/core/domain"
)

// --- user repository stub ---

type stubUserRepo struct {
	users  []*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

// seed inserts a user directly, bypassing Create's duplicate check.
func (r *stubUserRepo) seed(username, hash, role string) *domain.User {
	r.nextID++
	u := &domain.User{
		ID:           fmt.Sprintf("user_%d", r.nextID),
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}
	r.users = append(r.users, u)
	return cloneUser(u)
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = fmt.Sprintf("user_%d", r.nextID)
	r.users = append(r.users, cloneUser(created))
	return created, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context, role string) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range r.users {
		if role == "" || u.Role == role {
			out = append(out, cloneUser(u))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (r *stubUserRepo) UpdatePasswordHash(_ context.Context, id, hash string) error {
	for _, u := range r.users {
		if u.ID == id {
			u.PasswordHash = hash
			return nil
		}
	}
	return domain.ErrUserNotFound
}

// --- project repository stub ---

type stubProjectRepo struct {
	projects []*domain.Project
	nextID   int
}

func newStubProjectRepo() *stubProjectRepo {
	return &stubProjectRepo{}
}

func cloneProject(p *domain.Project) *domain.Project {
	if p == nil {
		return nil
	}
	clone := *p
	clone.AssignedUserIDs = append([]string{}, p.AssignedUserIDs...)
	return &clone
}

func (r *stubProjectRepo) find(id string) *domain.Project {
	for _, p := range r.projects {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (r *stubProjectRepo) Create(_ context.Context, p *domain.Project) (*domain.Project, error) {
	r.nextID++
	created := cloneProject(p)
	created.ID = fmt.Sprintf("project_%d", r.nextID)
	r.projects = append(r.projects, cloneProject(created))
	return created, nil
}

func (r *stubProjectRepo) FindByID(_ context.Context, id string) (*domain.Project, error) {
	if p := r.find(id); p != nil {
		return cloneProject(p), nil
	}
	return nil, domain.ErrProjectNotFound
}

func (r *stubProjectRepo) ListByStatus(_ context.Context, status domain.ProjectStatus) ([]*domain.Project, error) {
	var out []*domain.Project
	for _, p := range r.projects {
		if p.Status == status {
			out = append(out, cloneProject(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Deadline.Before(out[j].Deadline) })
	return out, nil
}

func (r *stubProjectRepo) ListByAssignee(_ context.Context, userID string) ([]*domain.Project, error) {
	var out []*domain.Project
	for _, p := range r.projects {
		if p.IsAssigned(userID) {
			out = append(out, cloneProject(p))
		}
	}
	return out, nil
}

func (r *stubProjectRepo) SetStatus(_ context.Context, id string, status domain.ProjectStatus) (*domain.Project, error) {
	p := r.find(id)
	if p == nil {
		return nil, domain.ErrProjectNotFound
	}
	p.Status = status
	return cloneProject(p), nil
}

func (r *stubProjectRepo) AddAssignment(_ context.Context, projectID, userID string) (*domain.Project, error) {
	p := r.find(projectID)
	if p == nil {
		return nil, domain.ErrProjectNotFound
	}
	if !p.IsAssigned(userID) {
		p.AssignedUserIDs = append(p.AssignedUserIDs, userID)
	}
	return cloneProject(p), nil
}

func (r *stubProjectRepo) RemoveAssignment(_ context.Context, projectID, userID string) error {
	p := r.find(projectID)
	if p == nil {
		return domain.ErrProjectNotFound
	}
	kept := p.AssignedUserIDs[:0]
	for _, id := range p.AssignedUserIDs {
		if id != userID {
			kept = append(kept, id)
		}
	}
	p.AssignedUserIDs = kept
	return nil
}

// --- project cache stubs ---

// noopCache always misses and never fails.
type noopCache struct{}

func (noopCache) GetActive(context.Context) ([]*domain.Project, error)      { return nil, nil }
func (noopCache) SetActive(context.Context, []*domain.Project) error        { return nil }
func (noopCache) Invalidate(context.Context) error                          { return nil }

// memCache records interactions so tests can assert cache behaviour.
type memCache struct {
	active        []*domain.Project
	sets          int
	invalidations int
}

func (c *memCache) GetActive(context.Context) ([]*domain.Project, error) {
	return c.active, nil
}

func (c *memCache) SetActive(_ context.Context, projects []*domain.Project) error {
	c.active = projects
	c.sets++
	return nil
}

func (c *memCache) Invalidate(context.Context) error {
	c.active = nil
	c.invalidations++
	return nil
}
