package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/coremade/core-hp/internal/config"
	"github.com/coremade/core-hp/internal/database"
	"github.com/coremade/core-hp/internal/filter"
	"github.com/coremade/core-hp/internal/models"
	"github.com/coremade/core-hp/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type serviceTestEnv struct {
	db         *gorm.DB
	developers *DeveloperService
	projects   *ProjectService
	notices    *NoticeService
	codes      *CodeService
}

func setupServiceTestEnv(t *testing.T, cfg DeveloperServiceConfig) serviceTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, database.Migrate(db))

	developerRepo := repository.NewDeveloperRepository(db, database.NewGate(2, time.Second))
	skillRepo := repository.NewSkillRecordRepository(db)

	return serviceTestEnv{
		db:         db,
		developers: NewDeveloperService(developerRepo, skillRepo, cfg),
		projects:   NewProjectService(repository.NewProjectRepository(db), developerRepo, 10),
		notices:    NewNoticeService(repository.NewNoticeRepository(db), 10),
		codes:      NewCodeService(repository.NewCodeRepository(db)),
	}
}

func rejectConfig() DeveloperServiceConfig {
	return DeveloperServiceConfig{
		DefaultPageSize: 10,
		SkillMatchMode:  filter.MatchSingleRecord,
		DeletePolicy:    config.DeletePolicyReject,
	}
}

func TestDeveloperServiceConfigFrom(t *testing.T) {
	cfg := &config.Config{
		DefaultPageSize:       25,
		SkillMatchMode:        config.SkillMatchPerToken,
		DeveloperDeletePolicy: config.DeletePolicyCascade,
	}

	got := DeveloperServiceConfigFrom(cfg)
	require.Equal(t, 25, got.DefaultPageSize)
	require.Equal(t, filter.MatchPerToken, got.SkillMatchMode)
	require.Equal(t, config.DeletePolicyCascade, got.DeletePolicy)
}

func TestNewDeveloperService_Defaults(t *testing.T) {
	svc := NewDeveloperService(nil, nil, DeveloperServiceConfig{})
	require.Equal(t, 10, svc.DefaultPageSize())
	require.Equal(t, config.DeletePolicyReject, svc.cfg.DeletePolicy)
}

func TestDeveloperService_CreateDeveloper(t *testing.T) {
	env := setupServiceTestEnv(t, rejectConfig())
	ctx := context.Background()

	dev, err := env.developers.CreateDeveloper(ctx, DeveloperInput{Name: "  Kim  ", Email: "kim@example.com"})
	require.NoError(t, err)
	require.NotEmpty(t, dev.ID)
	require.Equal(t, "Kim", dev.Name)

	_, err = env.developers.CreateDeveloper(ctx, DeveloperInput{Name: "Other", Email: "kim@example.com"})
	require.ErrorIs(t, err, ErrEmailTaken)

	_, err = env.developers.CreateDeveloper(ctx, DeveloperInput{Email: "x@example.com"})
	require.ErrorIs(t, err, ErrNameRequired)

	_, err = env.developers.CreateDeveloper(ctx, DeveloperInput{Name: "Lee"})
	require.ErrorIs(t, err, ErrEmailRequired)
}

func TestDeveloperService_UpdateDeveloper(t *testing.T) {
	env := setupServiceTestEnv(t, rejectConfig())
	ctx := context.Background()

	kim, err := env.developers.CreateDeveloper(ctx, DeveloperInput{Name: "Kim", Email: "kim@example.com"})
	require.NoError(t, err)
	_, err = env.developers.CreateDeveloper(ctx, DeveloperInput{Name: "Lee", Email: "lee@example.com"})
	require.NoError(t, err)

	// Keeping one's own email is allowed
	updated, err := env.developers.UpdateDeveloper(ctx, kim.ID, DeveloperInput{Name: "Kim Minsu", Email: "kim@example.com", Grade: "SENIOR"})
	require.NoError(t, err)
	require.Equal(t, "Kim Minsu", updated.Name)
	require.Equal(t, "SENIOR", updated.Grade)

	_, err = env.developers.UpdateDeveloper(ctx, kim.ID, DeveloperInput{Name: "Kim", Email: "lee@example.com"})
	require.ErrorIs(t, err, ErrEmailTaken)

	_, err = env.developers.UpdateDeveloper(ctx, "missing", DeveloperInput{Name: "X", Email: "x@example.com"})
	require.ErrorIs(t, err, ErrDeveloperNotFound)
}

func TestDeveloperService_ListDevelopers(t *testing.T) {
	env := setupServiceTestEnv(t, rejectConfig())
	ctx := context.Background()

	kim, err := env.developers.CreateDeveloper(ctx, DeveloperInput{Name: "Kim", Email: "kim@example.com", Grade: "SENIOR"})
	require.NoError(t, err)
	_, err = env.developers.CreateDeveloper(ctx, DeveloperInput{Name: "Lee", Email: "lee@example.com", Grade: "JUNIOR"})
	require.NoError(t, err)

	_, err = env.developers.AddSkillRecord(ctx, kim.ID, SkillRecordInput{StartYM: "2023-01", Language: "Java", DBMS: "Oracle"})
	require.NoError(t, err)

	page, err := env.developers.ListDevelopers(ctx, ListDevelopersInput{
		Criteria: filter.DeveloperCriteria{Skills: "java, oracle"},
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), page.Total)
	require.Len(t, page.Items, 1)
	require.Equal(t, kim.ID, page.Items[0].ID)
	require.Equal(t, 1, page.Page)
	require.Equal(t, 10, page.Limit)

	page, err = env.developers.ListDevelopers(ctx, ListDevelopersInput{
		Criteria: filter.DeveloperCriteria{Grade: "JUNIOR"},
		Page:     0,
		PageSize: 5,
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), page.Total)
	require.Equal(t, "Lee", page.Items[0].Name)
	require.Equal(t, 1, page.Page)
	require.Equal(t, 5, page.Limit)
}

func TestDeveloperService_SearchDevelopers(t *testing.T) {
	env := setupServiceTestEnv(t, rejectConfig())
	ctx := context.Background()

	for _, name := range []string{"Park", "Choi", "Ahn"} {
		_, err := env.developers.CreateDeveloper(ctx, DeveloperInput{Name: name, Email: name + "@example.com"})
		require.NoError(t, err)
	}

	page, err := env.developers.SearchDevelopers(ctx, "", 1)
	require.NoError(t, err)
	require.Equal(t, int64(3), page.Total)
	require.Equal(t, []string{"Ahn", "Choi", "Park"}, []string{page.Items[0].Name, page.Items[1].Name, page.Items[2].Name})
	require.False(t, page.HasMore())

	page, err = env.developers.SearchDevelopers(ctx, "", 2)
	require.NoError(t, err)
	require.Empty(t, page.Items)
	require.NotNil(t, page.Items)
	require.Equal(t, int64(3), page.Total)
}

func TestDeveloperService_DeleteDeveloper_Reject(t *testing.T) {
	env := setupServiceTestEnv(t, rejectConfig())
	ctx := context.Background()

	dev, err := env.developers.CreateDeveloper(ctx, DeveloperInput{Name: "Kim", Email: "kim@example.com"})
	require.NoError(t, err)
	_, err = env.developers.AddSkillRecord(ctx, dev.ID, SkillRecordInput{StartYM: "2022-03"})
	require.NoError(t, err)

	require.ErrorIs(t, env.developers.DeleteDeveloper(ctx, dev.ID), ErrDeveloperHasSkillRecords)

	_, err = env.developers.GetDeveloper(ctx, dev.ID)
	require.NoError(t, err)

	require.NoError(t, env.developers.DeleteSkillRecord(ctx, dev.ID, "2022-03"))
	require.NoError(t, env.developers.DeleteDeveloper(ctx, dev.ID))

	_, err = env.developers.GetDeveloper(ctx, dev.ID)
	require.ErrorIs(t, err, ErrDeveloperNotFound)
	require.ErrorIs(t, env.developers.DeleteDeveloper(ctx, dev.ID), ErrDeveloperNotFound)
}

func TestDeveloperService_DeleteDeveloper_Cascade(t *testing.T) {
	cfg := rejectConfig()
	cfg.DeletePolicy = config.DeletePolicyCascade
	env := setupServiceTestEnv(t, cfg)
	ctx := context.Background()

	dev, err := env.developers.CreateDeveloper(ctx, DeveloperInput{Name: "Kim", Email: "kim@example.com"})
	require.NoError(t, err)
	_, err = env.developers.AddSkillRecord(ctx, dev.ID, SkillRecordInput{StartYM: "2022-03"})
	require.NoError(t, err)

	require.NoError(t, env.developers.DeleteDeveloper(ctx, dev.ID))

	var remaining int64
	require.NoError(t, env.db.Table("skill_records").Where("developer_id = ?", dev.ID).Count(&remaining).Error)
	require.Zero(t, remaining)
}

func TestDeveloperService_AddSkillRecord(t *testing.T) {
	env := setupServiceTestEnv(t, rejectConfig())
	ctx := context.Background()

	dev, err := env.developers.CreateDeveloper(ctx, DeveloperInput{Name: "Kim", Email: "kim@example.com"})
	require.NoError(t, err)

	tests := []struct {
		name  string
		input SkillRecordInput
		want  error
	}{
		{"bad start", SkillRecordInput{StartYM: "2023-13"}, ErrInvalidYearMonth},
		{"bad end", SkillRecordInput{StartYM: "2023-01", EndYM: "23-02"}, ErrInvalidYearMonth},
		{"end before start", SkillRecordInput{StartYM: "2023-05", EndYM: "2023-04"}, ErrInvalidPeriod},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.developers.AddSkillRecord(ctx, dev.ID, tt.input)
			require.ErrorIs(t, err, tt.want)
		})
	}

	_, err = env.developers.AddSkillRecord(ctx, dev.ID, SkillRecordInput{StartYM: "2023-01", EndYM: "2023-06", Language: "Go"})
	require.NoError(t, err)
	_, err = env.developers.AddSkillRecord(ctx, dev.ID, SkillRecordInput{StartYM: "2023-01"})
	require.ErrorIs(t, err, ErrSkillRecordExists)
	_, err = env.developers.AddSkillRecord(ctx, "missing", SkillRecordInput{StartYM: "2023-01"})
	require.ErrorIs(t, err, ErrDeveloperNotFound)

	_, err = env.developers.AddSkillRecord(ctx, dev.ID, SkillRecordInput{StartYM: "2024-02"})
	require.NoError(t, err)

	records, err := env.developers.ListSkillRecords(ctx, dev.ID, "")
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "2024-02", records[0].StartYM)

	require.ErrorIs(t, env.developers.DeleteSkillRecord(ctx, dev.ID, "1999-01"), ErrSkillRecordNotFound)
}

func TestDeveloperService_ListSkillRecords_NarrowsBySkills(t *testing.T) {
	env := setupServiceTestEnv(t, rejectConfig())
	ctx := context.Background()

	dev, err := env.developers.CreateDeveloper(ctx, DeveloperInput{Name: "Lee", Email: "lee@example.com"})
	require.NoError(t, err)
	for _, in := range []SkillRecordInput{
		{StartYM: "2021-01", Language: "Java", DBMS: "Oracle"},
		{StartYM: "2022-01", Language: "Java", DBMS: "MySQL"},
		{StartYM: "2023-01", Language: "Go", OS: "Linux"},
	} {
		_, err := env.developers.AddSkillRecord(ctx, dev.ID, in)
		require.NoError(t, err)
	}

	records, err := env.developers.ListSkillRecords(ctx, dev.ID, "java")
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "2022-01", records[0].StartYM)

	records, err = env.developers.ListSkillRecords(ctx, dev.ID, "java, oracle")
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "2021-01", records[0].StartYM)

	// tokens held by different records do not combine
	records, err = env.developers.ListSkillRecords(ctx, dev.ID, "oracle,linux")
	require.NoError(t, err)
	require.Empty(t, records)

	records, err = env.developers.ListSkillRecords(ctx, dev.ID, " , ")
	require.NoError(t, err)
	require.Len(t, records, 3)

	_, err = env.developers.ListSkillRecords(ctx, "missing", "java")
	require.ErrorIs(t, err, ErrDeveloperNotFound)
}

// failingDeveloperRepo fails every listing with a store error
type failingDeveloperRepo struct {
	repository.DeveloperRepository
}

func (failingDeveloperRepo) List(context.Context, repository.DeveloperFilter) ([]models.Developer, int64, error) {
	return nil, 0, fmt.Errorf("%w: connection refused", repository.ErrStoreUnavailable)
}

func TestDeveloperService_ListDevelopers_StoreFailureIsRetryable(t *testing.T) {
	svc := NewDeveloperService(failingDeveloperRepo{}, nil, rejectConfig())

	_, err := svc.ListDevelopers(context.Background(), ListDevelopersInput{})
	require.Error(t, err)
	require.True(t, repository.IsRetryable(err))

	_, err = svc.SearchDevelopers(context.Background(), "go", 1)
	require.True(t, repository.IsRetryable(err))
}
