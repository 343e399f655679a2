package services

import (
	"context"
	"testing"
	"time"

	"github.com/coremade/core-hp/internal/models"
	"github.com/stretchr/testify/require"
)

func TestProjectService_CreateAndUpdate(t *testing.T) {
	env := setupServiceTestEnv(t, rejectConfig())
	ctx := context.Background()

	project, err := env.projects.CreateProject(ctx, ProjectInput{Name: "Billing", Client: "ACME", Language: "Go"})
	require.NoError(t, err)
	require.Equal(t, models.ProjectStatusPlanning, project.Status)

	_, err = env.projects.CreateProject(ctx, ProjectInput{Name: " "})
	require.ErrorIs(t, err, ErrProjectNameRequired)

	_, err = env.projects.CreateProject(ctx, ProjectInput{Name: "X", Status: "DONE"})
	require.ErrorIs(t, err, ErrInvalidProjectStatus)

	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, -1, 0)
	_, err = env.projects.CreateProject(ctx, ProjectInput{Name: "X", StartDate: &start, EndDate: &end})
	require.ErrorIs(t, err, ErrInvalidDateRange)

	// An empty status keeps the current one
	project, err = env.projects.UpdateProject(ctx, project.ID, ProjectInput{Name: "Billing v2", Status: models.ProjectStatusInProgress})
	require.NoError(t, err)
	project, err = env.projects.UpdateProject(ctx, project.ID, ProjectInput{Name: "Billing v3"})
	require.NoError(t, err)
	require.Equal(t, models.ProjectStatusInProgress, project.Status)
	require.Equal(t, "Billing v3", project.Name)

	_, err = env.projects.UpdateProject(ctx, 9999, ProjectInput{Name: "X"})
	require.ErrorIs(t, err, ErrProjectNotFound)
}

func TestProjectService_ListProjects(t *testing.T) {
	env := setupServiceTestEnv(t, rejectConfig())
	ctx := context.Background()

	_, err := env.projects.CreateProject(ctx, ProjectInput{Name: "Billing"})
	require.NoError(t, err)
	_, err = env.projects.CreateProject(ctx, ProjectInput{Name: "Payroll", Status: models.ProjectStatusCompleted})
	require.NoError(t, err)

	status := models.ProjectStatusCompleted
	page, err := env.projects.ListProjects(ctx, ListProjectsInput{Status: &status})
	require.NoError(t, err)
	require.Equal(t, int64(1), page.Total)
	require.Equal(t, "Payroll", page.Items[0].Name)

	page, err = env.projects.ListProjects(ctx, ListProjectsInput{Name: "BILL"})
	require.NoError(t, err)
	require.Equal(t, int64(1), page.Total)

	bad := models.ProjectStatus("UNKNOWN")
	_, err = env.projects.ListProjects(ctx, ListProjectsInput{Status: &bad})
	require.ErrorIs(t, err, ErrInvalidProjectStatus)
}

func TestProjectService_Assignments(t *testing.T) {
	env := setupServiceTestEnv(t, rejectConfig())
	ctx := context.Background()

	project, err := env.projects.CreateProject(ctx, ProjectInput{Name: "Billing"})
	require.NoError(t, err)
	dev, err := env.developers.CreateDeveloper(ctx, DeveloperInput{Name: "Kim", Email: "kim@example.com"})
	require.NoError(t, err)

	_, err = env.projects.AssignDeveloper(ctx, project.ID, AssignDeveloperInput{DeveloperID: dev.ID, Task: "backend"})
	require.NoError(t, err)

	// Re-assigning replaces the previous row
	_, err = env.projects.AssignDeveloper(ctx, project.ID, AssignDeveloperInput{DeveloperID: dev.ID, Task: "lead", Status: models.AssignmentStatusReleased})
	require.NoError(t, err)

	assignments, err := env.projects.ListAssignments(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	require.Equal(t, "lead", assignments[0].Task)
	require.Equal(t, models.AssignmentStatusReleased, assignments[0].Status)
	require.Equal(t, "Kim", assignments[0].Developer.Name)

	_, err = env.projects.AssignDeveloper(ctx, project.ID, AssignDeveloperInput{DeveloperID: "missing"})
	require.ErrorIs(t, err, ErrDeveloperNotFound)
	_, err = env.projects.AssignDeveloper(ctx, 9999, AssignDeveloperInput{DeveloperID: dev.ID})
	require.ErrorIs(t, err, ErrProjectNotFound)
	_, err = env.projects.AssignDeveloper(ctx, project.ID, AssignDeveloperInput{DeveloperID: dev.ID, Status: "BENCHED"})
	require.ErrorIs(t, err, ErrInvalidAssignment)

	require.NoError(t, env.projects.RemoveAssignment(ctx, project.ID, dev.ID))
	require.ErrorIs(t, env.projects.RemoveAssignment(ctx, project.ID, dev.ID), ErrAssignmentNotFound)
}

func TestProjectService_DeleteProject(t *testing.T) {
	env := setupServiceTestEnv(t, rejectConfig())
	ctx := context.Background()

	project, err := env.projects.CreateProject(ctx, ProjectInput{Name: "Billing"})
	require.NoError(t, err)
	dev, err := env.developers.CreateDeveloper(ctx, DeveloperInput{Name: "Kim", Email: "kim@example.com"})
	require.NoError(t, err)
	_, err = env.projects.AssignDeveloper(ctx, project.ID, AssignDeveloperInput{DeveloperID: dev.ID})
	require.NoError(t, err)

	require.NoError(t, env.projects.DeleteProject(ctx, project.ID))

	_, err = env.projects.GetProject(ctx, project.ID)
	require.ErrorIs(t, err, ErrProjectNotFound)
	require.ErrorIs(t, env.projects.DeleteProject(ctx, project.ID), ErrProjectNotFound)

	var remaining int64
	require.NoError(t, env.db.Model(&models.ProjectAssignment{}).Where("project_id = ?", project.ID).Count(&remaining).Error)
	require.Zero(t, remaining)
}

func TestNoticeService(t *testing.T) {
	env := setupServiceTestEnv(t, rejectConfig())
	ctx := context.Background()

	first, err := env.notices.CreateNotice(ctx, NoticeInput{Title: "Welcome"})
	require.NoError(t, err)
	pinned, err := env.notices.CreateNotice(ctx, NoticeInput{Title: "Read me", Pinned: true})
	require.NoError(t, err)

	_, err = env.notices.CreateNotice(ctx, NoticeInput{Title: "  "})
	require.ErrorIs(t, err, ErrTitleRequired)

	page, err := env.notices.ListNotices(ctx, 1, 0)
	require.NoError(t, err)
	require.Equal(t, int64(2), page.Total)
	require.Equal(t, pinned.ID, page.Items[0].ID)

	got, err := env.notices.GetNotice(ctx, first.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), got.ViewCount)
	got, err = env.notices.GetNotice(ctx, first.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), got.ViewCount)

	updated, err := env.notices.UpdateNotice(ctx, first.ID, NoticeInput{Title: "Welcome!", Content: "hello"})
	require.NoError(t, err)
	require.Equal(t, "hello", updated.Content)

	require.NoError(t, env.notices.DeleteNotice(ctx, first.ID))
	_, err = env.notices.GetNotice(ctx, first.ID)
	require.ErrorIs(t, err, ErrNoticeNotFound)
	require.ErrorIs(t, env.notices.DeleteNotice(ctx, first.ID), ErrNoticeNotFound)
}

func TestCodeService(t *testing.T) {
	env := setupServiceTestEnv(t, rejectConfig())
	ctx := context.Background()

	_, err := env.codes.SaveCode(ctx, models.Code{GroupCode: "grade", Code: "SR", Name: "Senior", SortOrder: 2, Used: true})
	require.NoError(t, err)
	_, err = env.codes.SaveCode(ctx, models.Code{GroupCode: "GRADE", Code: "JR", Name: "Junior", SortOrder: 1, Used: true})
	require.NoError(t, err)
	_, err = env.codes.SaveCode(ctx, models.Code{GroupCode: "GRADE", Code: "OLD", Name: "Retired", SortOrder: 3})
	require.NoError(t, err)

	codes, err := env.codes.ListCodes(ctx, "grade", false)
	require.NoError(t, err)
	require.Len(t, codes, 2)
	require.Equal(t, "JR", codes[0].Code)

	codes, err = env.codes.ListCodes(ctx, "GRADE", true)
	require.NoError(t, err)
	require.Len(t, codes, 3)

	// Saving again updates in place
	_, err = env.codes.SaveCode(ctx, models.Code{GroupCode: "GRADE", Code: "SR", Name: "Senior engineer", SortOrder: 2, Used: true})
	require.NoError(t, err)
	codes, err = env.codes.ListCodes(ctx, "GRADE", false)
	require.NoError(t, err)
	require.Equal(t, "Senior engineer", codes[1].Name)

	_, err = env.codes.SaveCode(ctx, models.Code{GroupCode: "GRADE", Name: "X"})
	require.ErrorIs(t, err, ErrCodeKeyRequired)
	_, err = env.codes.SaveCode(ctx, models.Code{GroupCode: "GRADE", Code: "X"})
	require.ErrorIs(t, err, ErrCodeNameRequired)

	require.NoError(t, env.codes.DeleteCode(ctx, "GRADE", "OLD"))
	require.ErrorIs(t, env.codes.DeleteCode(ctx, "GRADE", "OLD"), ErrCodeNotFound)

	empty, err := env.codes.ListCodes(ctx, "NOPE", false)
	require.NoError(t, err)
	require.NotNil(t, empty)
	require.Empty(t, empty)
}
