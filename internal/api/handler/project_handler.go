package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pixelforge/nexus-api/internal/api/metrics"
	"github.com/pixelforge/nexus-api/internal/core/domain"
	"github.com/pixelforge/nexus-api/internal/core/ports"
)

// ProjectHandler handles HTTP requests for project lifecycle and team assignment.
type ProjectHandler struct {
	projectService    ports.ProjectService
	assignmentService ports.AssignmentService
}

func NewProjectHandler(projectService ports.ProjectService, assignmentService ports.AssignmentService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService, assignmentService: assignmentService}
}

// Create handles POST /api/projects. Admin only.
//
// @Summary      Create a new project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProjectRequest  true  "Project details"
// @Success      201   {object}  projectResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.projectService.CreateProject(c.Request().Context(), ports.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		Deadline:    req.Deadline,
	})
	if err != nil {
		return err
	}

	metrics.ProjectsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toProjectResponse(project))
}

// ListActive handles GET /api/projects — Active projects by deadline ascending,
// visible to every authenticated identity.
//
// @Summary      List active projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   projectResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/projects [get]
func (h *ProjectHandler) ListActive(c echo.Context) error {
	projects, err := h.projectService.ListActive(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProjectResponses(projects))
}

// ListMine handles GET /api/projects/my-projects — projects whose team set
// contains the caller, any status.
//
// @Summary      List own projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   projectResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/projects/my-projects [get]
func (h *ProjectHandler) ListMine(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	projects, err := h.projectService.ListMine(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProjectResponses(projects))
}

// Get handles GET /api/projects/:id. Beyond authentication the read is
// resource-gated: only Admins and assigned members may see the detail.
//
// @Summary      Get a project by id
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  projectDetailResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	detail, err := h.projectService.GetProject(c.Request().Context(), ports.GetProjectInput{
		ProjectID:     c.Param("id"),
		RequesterID:   userID,
		RequesterRole: role,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProjectNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "project not found")
		case errors.Is(err, domain.ErrForbidden):
			return echo.NewHTTPError(http.StatusForbidden, "not authorized to view this project")
		}
		return err
	}

	return c.JSON(http.StatusOK, toProjectDetailResponse(detail))
}

// Complete handles PUT /api/projects/:id/complete. Admin only. Completion is
// one-way and idempotent: re-completing returns the Completed project again.
//
// @Summary      Mark a project as completed
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  projectResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/projects/{id}/complete [put]
func (h *ProjectHandler) Complete(c echo.Context) error {
	project, err := h.projectService.CompleteProject(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "project not found")
		}
		return err
	}

	metrics.ProjectsCompletedTotal.Inc()
	return c.JSON(http.StatusOK, toProjectResponse(project))
}

// Assign handles PUT /api/projects/:id/assign. Project Lead only — the role
// model is flat, so Admins are rejected by the route's RBAC gate.
//
// @Summary      Assign a developer to a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Project id"
// @Param        body  body      assignmentRequest  true  "Developer to assign"
// @Success      200   {object}  assignmentResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/projects/{id}/assign [put]
func (h *ProjectHandler) Assign(c echo.Context) error {
	var req assignmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	assigned, err := h.assignmentService.Assign(c.Request().Context(), c.Param("id"), req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProjectNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "project not found")
		case errors.Is(err, domain.ErrUserNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "user to assign not found")
		case errors.Is(err, domain.ErrNotDeveloper):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrAlreadyAssigned):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return err
	}

	metrics.AssignmentMutationsTotal.WithLabelValues("assign").Inc()
	return c.JSON(http.StatusOK, assignmentResponse{AssignedUserIDs: assigned})
}

// Unassign handles PUT /api/projects/:id/unassign. Project Lead only.
// Removing a developer who is not on the team succeeds without effect.
//
// @Summary      Unassign a developer from a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Project id"
// @Param        body  body      assignmentRequest  true  "Developer to unassign"
// @Success      200   {object}  messageResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/projects/{id}/unassign [put]
func (h *ProjectHandler) Unassign(c echo.Context) error {
	var req assignmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.assignmentService.Unassign(c.Request().Context(), c.Param("id"), req.UserID); err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "project not found")
		}
		return err
	}

	metrics.AssignmentMutationsTotal.WithLabelValues("unassign").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "developer unassigned successfully"})
}

// AvailableDevelopers handles GET /api/projects/:id/available-developers —
// Developer identities not yet on the project's team. Project Lead only.
//
// @Summary      List developers not yet assigned to a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project id"
// @Success      200  {array}   userResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/projects/{id}/available-developers [get]
func (h *ProjectHandler) AvailableDevelopers(c echo.Context) error {
	available, err := h.assignmentService.ListAvailable(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "project not found")
		}
		return err
	}
	return c.JSON(http.StatusOK, toUserResponses(available))
}
