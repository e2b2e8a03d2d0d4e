package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mskustudx/studx/internal/app/models/dto"
	"github.com/mskustudx/studx/internal/app/services"
	"github.com/mskustudx/studx/internal/middleware"
)

// CatalogController serves faculties, departments and courses
type CatalogController struct {
	catalogService *services.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService *services.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// GetAllFaculties lists faculties
// @Summary List faculties
// @Tags faculties
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Faculty}
// @Router /faculties [get]
func (c *CatalogController) GetAllFaculties(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.catalogService.ListFaculties(ctx)))
}

// GetFacultyByID retrieves a faculty
// @Summary Get faculty by ID
// @Tags faculties
// @Produce json
// @Param id path int true "Faculty ID"
// @Success 200 {object} dto.APIResponse{data=models.Faculty}
// @Failure 400 {object} dto.ErrorResponse "Invalid faculty ID"
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Router /faculties/{id} [get]
func (c *CatalogController) GetFacultyByID(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	faculty, err := c.catalogService.GetFaculty(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(faculty))
}

// GetAllDepartments lists departments
// @Summary List departments
// @Tags departments
// @Produce json
// @Param facultyId query int false "Filter by faculty ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Department}
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Router /departments [get]
func (c *CatalogController) GetAllDepartments(ctx *gin.Context) {
	var query dto.DepartmentListQuery
	if !middleware.BindQuery(ctx, &query) {
		return
	}

	departments, err := c.catalogService.ListDepartments(ctx, query.FacultyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(departments))
}

// GetDepartmentByID retrieves a department
// @Summary Get department by ID
// @Tags departments
// @Produce json
// @Param id path int true "Department ID"
// @Success 200 {object} dto.APIResponse{data=models.Department}
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Router /departments/{id} [get]
func (c *CatalogController) GetDepartmentByID(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	department, err := c.catalogService.GetDepartment(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(department))
}

// GetDepartmentCourses lists the courses visible to a department
// @Summary List department courses
// @Description Department-owned courses followed by the courses shared across its faculty
// @Tags departments
// @Produce json
// @Param id path int true "Department ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Course}
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Router /departments/{id}/courses [get]
func (c *CatalogController) GetDepartmentCourses(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	courses, err := c.catalogService.ListCoursesForDepartment(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courses))
}

// GetFacultyCourses lists every course of a faculty
// @Summary List faculty courses
// @Tags faculties
// @Produce json
// @Param id path int true "Faculty ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Course}
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Router /faculties/{id}/courses [get]
func (c *CatalogController) GetFacultyCourses(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	courses, err := c.catalogService.ListCoursesForFaculty(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courses))
}

// GetAllCourses lists courses
// @Summary List courses
// @Tags courses
// @Produce json
// @Param departmentId query int false "Courses visible to this department"
// @Param facultyId query int false "Courses of this faculty"
// @Success 200 {object} dto.APIResponse{data=[]models.Course}
// @Failure 404 {object} dto.ErrorResponse "Department or faculty not found"
// @Router /courses [get]
func (c *CatalogController) GetAllCourses(ctx *gin.Context) {
	var query dto.CourseListQuery
	if !middleware.BindQuery(ctx, &query) {
		return
	}

	courses, err := c.catalogService.ListCourses(ctx, query.DepartmentID, query.FacultyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courses))
}

// GetCourseByID retrieves a course
// @Summary Get course by ID
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=models.Course}
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [get]
func (c *CatalogController) GetCourseByID(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	course, err := c.catalogService.GetCourse(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(course))
}
