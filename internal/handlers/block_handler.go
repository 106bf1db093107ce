package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campusmind/guidance-scheduler/internal/httperr"
	"github.com/campusmind/guidance-scheduler/internal/httpresp"
	"github.com/campusmind/guidance-scheduler/internal/middleware"
	ucSchedule "github.com/campusmind/guidance-scheduler/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type BlockHandler struct {
	createUC      *ucSchedule.CreateBlock
	bulkUC        *ucSchedule.BulkBlock
	monthLeaveUC  *ucSchedule.MonthLeave
	listUC        *ucSchedule.ListBlocks
	deleteUC      *ucSchedule.DeleteBlock
	deleteGroupUC *ucSchedule.DeleteBlockGroup
}

func NewBlockHandler(
	createUC *ucSchedule.CreateBlock,
	bulkUC *ucSchedule.BulkBlock,
	monthLeaveUC *ucSchedule.MonthLeave,
	listUC *ucSchedule.ListBlocks,
	deleteUC *ucSchedule.DeleteBlock,
	deleteGroupUC *ucSchedule.DeleteBlockGroup,
) *BlockHandler {
	return &BlockHandler{
		createUC:      createUC,
		bulkUC:        bulkUC,
		monthLeaveUC:  monthLeaveUC,
		listUC:        listUC,
		deleteUC:      deleteUC,
		deleteGroupUC: deleteGroupUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBlockRequest struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Reason    string `json:"reason"`
}

type BulkBlockRequest struct {
	Dates  []string `json:"dates" binding:"required"`
	Reason string   `json:"reason"`
}

type MonthLeaveRequest struct {
	Year   int    `json:"year" binding:"required"`
	Month  int    `json:"month" binding:"required"`
	Reason string `json:"reason"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *BlockHandler) Create(c *gin.Context) {
	counselorID := c.MustGet(middleware.ContextCounselorID).(uint)

	var req CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	block, err := h.createUC.Execute(c.Request.Context(), ucSchedule.CreateBlockInput{
		CounselorID: counselorID,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Reason:      req.Reason,
	})
	if err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "block_create_failed", "Could not create block.")
		}
		return
	}

	c.JSON(201, block)
}

func (h *BlockHandler) BulkCreate(c *gin.Context) {
	counselorID := c.MustGet(middleware.ContextCounselorID).(uint)

	var req BulkBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	report, err := h.bulkUC.Execute(c.Request.Context(), ucSchedule.BulkBlockInput{
		CounselorID: counselorID,
		Dates:       req.Dates,
		Reason:      req.Reason,
	})
	if err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "bulk_block_failed", "Could not create blocks.")
		}
		return
	}

	// Partial success is a success response; the report carries the split.
	c.JSON(201, report)
}

func (h *BlockHandler) MonthLeave(c *gin.Context) {
	counselorID := c.MustGet(middleware.ContextCounselorID).(uint)

	var req MonthLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	report, err := h.monthLeaveUC.Execute(c.Request.Context(), ucSchedule.MonthLeaveInput{
		CounselorID: counselorID,
		Year:        req.Year,
		Month:       req.Month,
		Reason:      req.Reason,
	})
	if err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "month_leave_failed", "Could not create month leave.")
		}
		return
	}

	c.JSON(201, report)
}

func (h *BlockHandler) List(c *gin.Context) {
	counselorID := c.MustGet(middleware.ContextCounselorID).(uint)

	grouped, err := h.listUC.Execute(c.Request.Context(), counselorID)
	if err != nil {
		httperr.Internal(c, "block_list_failed", "Could not list blocks.")
		return
	}

	httpresp.OK(c, grouped)
}

func (h *BlockHandler) Delete(c *gin.Context) {
	counselorID := c.MustGet(middleware.ContextCounselorID).(uint)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		httperr.BadRequest(c, "invalid_id", "Invalid block id.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), counselorID, uint(id)); err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "block_delete_failed", "Could not delete block.")
		}
		return
	}

	c.Status(204)
}

func (h *BlockHandler) DeleteGroup(c *gin.Context) {
	counselorID := c.MustGet(middleware.ContextCounselorID).(uint)

	tag := c.Param("tag")
	if tag == "" {
		httperr.BadRequest(c, "invalid_tag", "Invalid group tag.")
		return
	}

	report, err := h.deleteGroupUC.Execute(c.Request.Context(), counselorID, tag)
	if err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "block_group_delete_failed", "Could not delete block group.")
		}
		return
	}

	httpresp.OK(c, report)
}
