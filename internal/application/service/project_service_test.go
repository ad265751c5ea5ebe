package service

import (
	"context"
	"testing"
	"time"

	"github.com/sangkips/bizdesk-api/internal/domain/entity"
	"github.com/sangkips/bizdesk-api/internal/domain/enum"
	infraRepo "github.com/sangkips/bizdesk-api/internal/infrastructure/repository"
	"github.com/sangkips/bizdesk-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectLifecycle(t *testing.T) {
	clock := newTestClock()
	store := infraRepo.NewTenantStore[entity.Project](newTestDB(t), infraRepo.CollectionConfig{Resource: "Project"}, clock.Now)
	svc := NewProjectService(store)
	alice := callerFor(t, "alice")
	ctx := context.Background()

	start := clock.Now()
	project, err := svc.CreateProject(ctx, alice, &CreateProjectInput{Name: "Nieuwbouw", StartDate: &start})
	require.NoError(t, err)
	assert.Equal(t, enum.ProjectStatusPlanning, project.Status)

	onHold := enum.ProjectStatusOnHold
	updated, err := svc.UpdateProject(ctx, alice, &UpdateProjectInput{ID: project.ID, Status: &onHold})
	require.NoError(t, err)
	assert.Equal(t, enum.ProjectStatusOnHold, updated.Status)

	before := start.Add(-24 * time.Hour)
	_, err = svc.UpdateProject(ctx, alice, &UpdateProjectInput{ID: project.ID, EndDate: &before})
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	bogus := enum.ProjectStatus("Klaar")
	_, err = svc.UpdateProject(ctx, alice, &UpdateProjectInput{ID: project.ID, Status: &bogus})
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	_, err = svc.CreateProject(ctx, alice, &CreateProjectInput{})
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}
