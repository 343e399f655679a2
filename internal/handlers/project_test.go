package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/coremade/core-hp/internal/database"
	"github.com/coremade/core-hp/internal/dto"
	"github.com/coremade/core-hp/internal/models"
	"github.com/coremade/core-hp/internal/repository"
	"github.com/coremade/core-hp/internal/services"
)

// ResourceHandlerTestSuite covers the project, notice and code handlers
type ResourceHandlerTestSuite struct {
	suite.Suite
	db       *gorm.DB
	projects *ProjectHandler
	notices  *NoticeHandler
	codes    *CodeHandler
}

func (suite *ResourceHandlerTestSuite) SetupTest() {
	var err error
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	suite.Require().NoError(err)

	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)

	suite.Require().NoError(database.Migrate(suite.db))

	developerRepo := repository.NewDeveloperRepository(suite.db, database.NewGate(2, 0))
	suite.projects = NewProjectHandler(services.NewProjectService(repository.NewProjectRepository(suite.db), developerRepo, 10), 10)
	suite.notices = NewNoticeHandler(services.NewNoticeService(repository.NewNoticeRepository(suite.db), 10), 10)
	suite.codes = NewCodeHandler(services.NewCodeService(repository.NewCodeRepository(suite.db)))
}

func (suite *ResourceHandlerTestSuite) TearDownTest() {
	suite.Require().NoError(database.Close(suite.db))
}

func (suite *ResourceHandlerTestSuite) createProject(name string, status models.ProjectStatus) dto.ProjectDTO {
	body, err := json.Marshal(map[string]any{"name": name, "status": status})
	suite.Require().NoError(err)

	c, w := developerTestContext(http.MethodPost, "/projects", body)
	suite.projects.CreateProject(c)
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var project dto.ProjectDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &project))
	return project
}

func (suite *ResourceHandlerTestSuite) TestProjects_ListByStatus() {
	suite.createProject("Billing", models.ProjectStatusPlanning)
	suite.createProject("Payroll", models.ProjectStatusInProgress)
	suite.createProject("Ledger", models.ProjectStatusInProgress)

	c, w := developerTestContext(http.MethodGet, "/projects?status=IN_PROGRESS", nil)
	suite.projects.ListProjects(c)
	suite.Require().Equal(http.StatusOK, w.Code)

	var response dto.ProjectListResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal(int64(2), response.TotalCount)
	suite.Equal(1, response.TotalPages)

	c, w = developerTestContext(http.MethodGet, "/projects?status=SOMETIME", nil)
	suite.projects.ListProjects(c)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ResourceHandlerTestSuite) TestProjects_InvalidID() {
	c, w := developerTestContext(http.MethodGet, "/projects/abc", nil)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	suite.projects.GetProject(c)
	suite.Equal(http.StatusBadRequest, w.Code)

	c, w = developerTestContext(http.MethodGet, "/projects/42", nil)
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	suite.projects.GetProject(c)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ResourceHandlerTestSuite) TestProjects_Assignments() {
	project := suite.createProject("Billing", "")
	suite.Equal(models.ProjectStatusPlanning, project.Status)

	developer := models.Developer{Name: "Kim", Email: "kim@example.com", Grade: "SENIOR"}
	suite.Require().NoError(suite.db.Create(&developer).Error)

	id := fmt.Sprint(project.ID)
	body, err := json.Marshal(map[string]any{"developer_id": developer.ID, "task": "backend"})
	suite.Require().NoError(err)
	c, w := developerTestContext(http.MethodPost, "/projects/"+id+"/assignments", body)
	c.Params = gin.Params{{Key: "id", Value: id}}
	suite.projects.AssignDeveloper(c)
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	c, w = developerTestContext(http.MethodGet, "/projects/"+id+"/assignments", nil)
	c.Params = gin.Params{{Key: "id", Value: id}}
	suite.projects.ListAssignments(c)
	suite.Require().Equal(http.StatusOK, w.Code)

	var response struct {
		Assignments []dto.AssignmentDTO `json:"assignments"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Require().Len(response.Assignments, 1)
	suite.Equal("Kim", response.Assignments[0].Developer.Name)
	suite.Equal(models.AssignmentStatusAssigned, response.Assignments[0].Status)

	c, w = developerTestContext(http.MethodDelete, "/projects/"+id+"/assignments/"+developer.ID, nil)
	c.Params = gin.Params{{Key: "id", Value: id}, {Key: "developerId", Value: developer.ID}}
	suite.projects.RemoveAssignment(c)
	suite.Equal(http.StatusOK, w.Code)

	c, w = developerTestContext(http.MethodDelete, "/projects/"+id, nil)
	c.Params = gin.Params{{Key: "id", Value: id}}
	suite.projects.DeleteProject(c)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *ResourceHandlerTestSuite) TestNotices() {
	body, err := json.Marshal(map[string]any{"title": "Welcome", "content": "hello"})
	suite.Require().NoError(err)
	c, w := developerTestContext(http.MethodPost, "/notices", body)
	suite.notices.CreateNotice(c)
	suite.Require().Equal(http.StatusCreated, w.Code)

	var notice models.Notice
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &notice))
	id := fmt.Sprint(notice.ID)

	c, w = developerTestContext(http.MethodGet, "/notices/"+id, nil)
	c.Params = gin.Params{{Key: "id", Value: id}}
	suite.notices.GetNotice(c)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &notice))
	suite.Equal(int64(1), notice.ViewCount)

	c, w = developerTestContext(http.MethodGet, "/notices", nil)
	suite.notices.ListNotices(c)
	suite.Require().Equal(http.StatusOK, w.Code)

	var list dto.NoticeListResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &list))
	suite.Equal(int64(1), list.TotalCount)

	c, w = developerTestContext(http.MethodPost, "/notices", []byte(`{"content":"no title"}`))
	suite.notices.CreateNotice(c)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ResourceHandlerTestSuite) TestCodes() {
	body, err := json.Marshal(map[string]any{"group_code": "GRADE", "code": "SR", "name": "Senior"})
	suite.Require().NoError(err)
	c, w := developerTestContext(http.MethodPost, "/codes", body)
	suite.codes.SaveCode(c)
	suite.Require().Equal(http.StatusOK, w.Code)

	c, w = developerTestContext(http.MethodGet, "/codes/GRADE", nil)
	c.Params = gin.Params{{Key: "group", Value: "GRADE"}}
	suite.codes.ListCodes(c)
	suite.Require().Equal(http.StatusOK, w.Code)

	var response struct {
		Codes []models.Code `json:"codes"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Require().Len(response.Codes, 1)
	suite.True(response.Codes[0].Used)

	c, w = developerTestContext(http.MethodDelete, "/codes/GRADE/XX", nil)
	c.Params = gin.Params{{Key: "group", Value: "GRADE"}, {Key: "code", Value: "XX"}}
	suite.codes.DeleteCode(c)
	suite.Equal(http.StatusNotFound, w.Code)
}

func TestResourceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ResourceHandlerTestSuite))
}
