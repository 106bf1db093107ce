package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/campusmind/guidance-scheduler/internal/middleware"
	"github.com/campusmind/guidance-scheduler/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	counselorIDVal, exists := c.Get(middleware.ContextCounselorID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "counselor_not_in_context"})
		return
	}

	counselorID, ok := counselorIDVal.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_counselor_id_type"})
		return
	}

	var counselor models.Counselor
	if err := h.db.First(&counselor, counselorID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "counselor_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"counselor": gin.H{
			"id":    counselor.ID,
			"name":  counselor.Name,
			"email": counselor.Email,
			"phone": counselor.Phone,
			"role":  counselor.Role,
		},
	})
}
