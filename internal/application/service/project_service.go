package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/bizdesk-api/internal/domain/entity"
	"github.com/sangkips/bizdesk-api/internal/domain/enum"
	"github.com/sangkips/bizdesk-api/internal/domain/repository"
	"github.com/sangkips/bizdesk-api/pkg/apperror"
	"github.com/sangkips/bizdesk-api/pkg/identity"
)

// ProjectService handles project-related operations
type ProjectService struct {
	projects repository.Accessor[entity.Project]
}

// NewProjectService creates a new project service
func NewProjectService(projects repository.Accessor[entity.Project]) *ProjectService {
	return &ProjectService{projects: projects}
}

// CreateProjectInput represents the create project input
type CreateProjectInput struct {
	Name        string
	ClientID    *uuid.UUID
	Description *string
	Status      enum.ProjectStatus
	StartDate   *time.Time
	EndDate     *time.Time
	Budget      *float64
}

// CreateProject creates a new project
func (s *ProjectService) CreateProject(ctx context.Context, caller *identity.Caller, input *CreateProjectInput) (*entity.Project, error) {
	project := &entity.Project{
		Name:        input.Name,
		ClientID:    input.ClientID,
		Description: input.Description,
		Status:      input.Status,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Budget:      input.Budget,
	}
	if project.Status == "" {
		project.Status = enum.ProjectStatusPlanning
	}
	if err := validateProject(project); err != nil {
		return nil, err
	}

	if err := s.projects.For(caller).Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// GetProject retrieves a project by ID
func (s *ProjectService) GetProject(ctx context.Context, caller *identity.Caller, id uuid.UUID) (*entity.Project, error) {
	return s.projects.For(caller).Get(ctx, id)
}

// ListProjects lists the caller's projects
func (s *ProjectService) ListProjects(ctx context.Context, caller *identity.Caller, opts repository.ListOptions) ([]entity.Project, error) {
	return s.projects.For(caller).List(ctx, opts)
}

// UpdateProjectInput represents the update project input. Nil fields are left
// as stored.
type UpdateProjectInput struct {
	ID          uuid.UUID
	Name        *string
	ClientID    *uuid.UUID
	Description *string
	Status      *enum.ProjectStatus
	StartDate   *time.Time
	EndDate     *time.Time
	Budget      *float64
}

// UpdateProject updates a project
func (s *ProjectService) UpdateProject(ctx context.Context, caller *identity.Caller, input *UpdateProjectInput) (*entity.Project, error) {
	projects := s.projects.For(caller)
	project, err := projects.Get(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		project.Name = *input.Name
	}
	if input.ClientID != nil {
		project.ClientID = input.ClientID
	}
	if input.Description != nil {
		project.Description = input.Description
	}
	if input.Status != nil {
		project.Status = *input.Status
	}
	if input.StartDate != nil {
		project.StartDate = input.StartDate
	}
	if input.EndDate != nil {
		project.EndDate = input.EndDate
	}
	if input.Budget != nil {
		project.Budget = input.Budget
	}
	if err := validateProject(project); err != nil {
		return nil, err
	}

	if err := projects.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// DeleteProject deletes a project
func (s *ProjectService) DeleteProject(ctx context.Context, caller *identity.Caller, id uuid.UUID) error {
	return s.projects.For(caller).Delete(ctx, id)
}

func validateProject(p *entity.Project) error {
	if p.Name == "" {
		return apperror.NewBadRequestError("naam is required")
	}
	if !p.Status.IsValid() {
		return apperror.NewBadRequestError("Invalid project status")
	}
	if p.StartDate != nil && p.EndDate != nil && p.EndDate.Before(*p.StartDate) {
		return apperror.NewBadRequestError("einddatum must not be before startdatum")
	}
	if p.Budget != nil && *p.Budget < 0 {
		return apperror.NewBadRequestError("budget must not be negative")
	}
	return nil
}
