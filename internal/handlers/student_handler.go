package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/campusmind/guidance-scheduler/internal/httperr"
	"github.com/campusmind/guidance-scheduler/internal/httpresp"
	"github.com/campusmind/guidance-scheduler/internal/models"
)

type StudentHandler struct {
	db *gorm.DB
}

func NewStudentHandler(db *gorm.DB) *StudentHandler {
	return &StudentHandler{db: db}
}

func (h *StudentHandler) List(c *gin.Context) {
	search := c.Query("q")

	q := h.db.Model(&models.Student{})
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("name ILIKE ? OR student_number ILIKE ?", like, like)
	}

	var students []models.Student
	if err := q.Order("name ASC").Limit(200).Find(&students).Error; err != nil {
		httperr.Internal(c, "student_list_failed", "Could not list students.")
		return
	}

	httpresp.List(c, students)
}

func (h *StudentHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		httperr.BadRequest(c, "invalid_id", "Invalid student id.")
		return
	}

	var student models.Student
	if err := h.db.First(&student, id).Error; err != nil {
		httperr.NotFound(c, "student_not_found", "Student not found.")
		return
	}

	httpresp.OK(c, student)
}
