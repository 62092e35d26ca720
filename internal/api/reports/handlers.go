package reports

import (
	"strconv"
	"strings"
	"time"

	keycloakauth "github.com/JorgeSaicoski/keycloak-auth"
	"github.com/JorgeSaicoski/microservice-commons/responses"
	"github.com/JorgeSaicoski/site-reporter/internal/db"
	"github.com/JorgeSaicoski/site-reporter/internal/schedule"
	"github.com/JorgeSaicoski/site-reporter/internal/services/reports"
	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService *reports.ReportService
}

func NewReportHandler(reportService *reports.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

func (h *ReportHandler) SubmitDailyReports(c *gin.Context) {
	var req SubmitDailyReportsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	userID, exists := keycloakauth.GetUserID(c)
	if !exists {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	// Unknown period labels are a client error, not something the engine
	// silently skips.
	for _, entry := range req.Reports {
		if _, ok := schedule.PeriodByLabel(schedule.DefaultPeriods, entry.TimePeriod); !ok {
			responses.BadRequest(c, "Unknown time period: "+entry.TimePeriod)
			return
		}
	}

	outcome, err := h.reportService.SubmitDailyReports(userID, req.ToInput(), time.Now())
	if err != nil {
		if strings.HasPrefix(err.Error(), "invalid report date") {
			responses.BadRequest(c, err.Error())
			return
		}
		responses.InternalError(c, err.Error())
		return
	}

	response := BatchOutcomeToResponse(outcome)
	if len(outcome.Created) > 0 {
		responses.Created(c, "Daily reports processed", response)
		return
	}
	responses.Success(c, "No reports were accepted", response)
}

func (h *ReportHandler) UpdateHourlyReport(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid report ID")
		return
	}

	var req UpdateHourlyReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	userID, exists := keycloakauth.GetUserID(c)
	if !exists {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	report, err := h.reportService.UpdateHourlyReport(userID, uint(id), req.ToInput(), time.Now())
	if err != nil {
		switch {
		case err.Error() == "editing window has closed for this period":
			responses.Conflict(c, err.Error())
		case err.Error() == "access denied: report belongs to another user":
			responses.Unauthorized(c, err.Error())
		case strings.HasPrefix(err.Error(), "validation failed"):
			responses.BadRequest(c, err.Error())
		case strings.Contains(err.Error(), "not found"):
			responses.NotFound(c, err.Error())
		default:
			responses.InternalError(c, err.Error())
		}
		return
	}

	response := HourlyReportToResponse(report)
	responses.Success(c, "Hourly report updated successfully", response)
}

func (h *ReportHandler) GetDailyStatus(c *gin.Context) {
	userID, exists := keycloakauth.GetUserID(c)
	if !exists {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	now := time.Now()
	date := c.Query("date")
	if date == "" {
		date = now.Format(db.DateLayout)
	}

	states, err := h.reportService.GetDailyStatus(userID, date, now)
	if err != nil {
		responses.InternalError(c, err.Error())
		return
	}

	responses.Success(c, "Session status retrieved successfully", gin.H{
		"reportDate": date,
		"sessions":   SessionStatesToResponse(states),
	})
}

func (h *ReportHandler) GetUserReports(c *gin.Context) {
	userID, exists := keycloakauth.GetUserID(c)
	if !exists {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	// Parse optional date filters
	var startDate, endDate *string

	if startDateStr := c.Query("startDate"); startDateStr != "" {
		if _, err := time.Parse(db.DateLayout, startDateStr); err == nil {
			startDate = &startDateStr
		}
	}

	if endDateStr := c.Query("endDate"); endDateStr != "" {
		if _, err := time.Parse(db.DateLayout, endDateStr); err == nil {
			endDate = &endDateStr
		}
	}

	userReports, err := h.reportService.GetUserReports(userID, startDate, endDate)
	if err != nil {
		responses.InternalError(c, err.Error())
		return
	}

	reportResponses := HourlyReportsToResponse(userReports)
	responses.Success(c, "Report history retrieved successfully", gin.H{
		"reports": reportResponses,
		"total":   len(reportResponses),
	})
}

func (h *ReportHandler) GetDailyAchievement(c *gin.Context) {
	userID, exists := keycloakauth.GetUserID(c)
	if !exists {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	date := c.Query("date")
	if date == "" {
		date = time.Now().Format(db.DateLayout)
	}

	achieved, err := h.reportService.GetDailyAchievement(userID, date)
	if err != nil {
		responses.InternalError(c, err.Error())
		return
	}

	responses.Success(c, "Daily achievement retrieved successfully", DailyAchievementResponse{
		ReportDate:    date,
		DailyAchieved: achieved,
	})
}

func (h *ReportHandler) GetAttendanceSummary(c *gin.Context) {
	_, exists := keycloakauth.GetUserID(c)
	if !exists {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	now := time.Now()
	date := c.Query("date")
	if date == "" {
		date = now.Format(db.DateLayout)
	}

	summary, err := h.reportService.GenerateAttendanceSummary(date, now)
	if err != nil {
		responses.InternalError(c, err.Error())
		return
	}

	responses.Success(c, "Attendance summary generated successfully", summary)
}

func (h *ReportHandler) GetPerformanceReport(c *gin.Context) {
	userID, exists := keycloakauth.GetUserID(c)
	if !exists {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	startDateParam := c.Query("startDate")
	endDateParam := c.Query("endDate")

	if _, err := time.Parse(db.DateLayout, startDateParam); err != nil {
		responses.BadRequest(c, "Invalid start date format. Use YYYY-MM-DD")
		return
	}
	if _, err := time.Parse(db.DateLayout, endDateParam); err != nil {
		responses.BadRequest(c, "Invalid end date format. Use YYYY-MM-DD")
		return
	}

	report, err := h.reportService.GenerateUserPerformanceReport(userID, startDateParam, endDateParam)
	if err != nil {
		responses.InternalError(c, err.Error())
		return
	}

	responses.Success(c, "Performance report generated successfully", report)
}
