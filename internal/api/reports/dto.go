package reports

import (
	"time"

	"github.com/JorgeSaicoski/site-reporter/internal/db"
	"github.com/JorgeSaicoski/site-reporter/internal/schedule"
	svc "github.com/JorgeSaicoski/site-reporter/internal/services/reports"
)

// Request DTOs

// HourlyEntryRequest is one period's draft as the front-end sends it. This is
// the single normalization point: whatever naming the clients use on the
// wire, the engine only ever sees the canonical schedule.Entry produced here.
type HourlyEntryRequest struct {
	TimePeriod            string `json:"timePeriod" binding:"required"` // period label, e.g. "9am-12pm"
	HourlyActivity        string `json:"hourlyActivity"`
	HourlyAchieved        string `json:"hourlyAchieved"`
	ProblemDescription    string `json:"problemDescription"`
	ProblemResolved       string `json:"problemResolved"` // "Yes" / "No"
	ProblemStartTime      string `json:"problemStartTime"`
	ProblemEndTime        string `json:"problemEndTime"`
	OnlineSupportProblem  string `json:"onlineSupportProblem"`
	OnlineSupportStart    string `json:"onlineSupportStart"`
	OnlineSupportEnd      string `json:"onlineSupportEnd"`
	OnlineSupportEngineer string `json:"onlineSupportEngineer"`
}

type SubmitDailyReportsRequest struct {
	ReportDate  string               `json:"reportDate" binding:"required"` // YYYY-MM-DD
	SiteName    string               `json:"siteName"`
	ProjectName string               `json:"projectName"`
	Reports     []HourlyEntryRequest `json:"reports" binding:"required"`
}

type UpdateHourlyReportRequest struct {
	HourlyActivity        *string `json:"hourlyActivity"`
	HourlyAchieved        *string `json:"hourlyAchieved"`
	ProblemDescription    *string `json:"problemDescription"`
	ProblemResolved       *string `json:"problemResolved"`
	ProblemStartTime      *string `json:"problemStartTime"`
	ProblemEndTime        *string `json:"problemEndTime"`
	OnlineSupportProblem  *string `json:"onlineSupportProblem"`
	OnlineSupportStart    *string `json:"onlineSupportStart"`
	OnlineSupportEnd      *string `json:"onlineSupportEnd"`
	OnlineSupportEngineer *string `json:"onlineSupportEngineer"`
}

// Response DTOs

type HourlyReportResponse struct {
	ID                    uint      `json:"id"`
	UserID                string    `json:"userId"`
	ReportDate            string    `json:"reportDate"`
	TimePeriod            string    `json:"timePeriod"`
	SessionName           string    `json:"sessionName"`
	SiteName              string    `json:"siteName"`
	ProjectName           string    `json:"projectName"`
	HourlyActivity        string    `json:"hourlyActivity"`
	HourlyAchieved        string    `json:"hourlyAchieved"`
	DailyAchieved         string    `json:"dailyAchieved"`
	ProblemDescription    *string   `json:"problemDescription"`
	ProblemResolved       *string   `json:"problemResolved"`
	ProblemStartTime      *string   `json:"problemStartTime"`
	ProblemEndTime        *string   `json:"problemEndTime"`
	OnlineSupportProblem  *string   `json:"onlineSupportProblem"`
	OnlineSupportStart    *string   `json:"onlineSupportStart"`
	OnlineSupportEnd      *string   `json:"onlineSupportEnd"`
	OnlineSupportEngineer *string   `json:"onlineSupportEngineer"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

type ViolationResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type RejectionResponse struct {
	TimePeriod string              `json:"timePeriod"`
	Reason     string              `json:"reason"`
	Violations []ViolationResponse `json:"violations,omitempty"`
}

type BatchSubmitResponse struct {
	Created    []HourlyReportResponse `json:"created"`
	Rejections []RejectionResponse    `json:"rejections"`
}

type SessionStatusResponse struct {
	TimePeriod  string `json:"timePeriod"`
	SessionName string `json:"sessionName"`
	StartHour   int    `json:"startHour"`
	EndHour     int    `json:"endHour"`
	Status      string `json:"status"`
	CanEdit     bool   `json:"canEdit"`
}

type DailyAchievementResponse struct {
	ReportDate    string `json:"reportDate"`
	DailyAchieved string `json:"dailyAchieved"`
}

// Conversion methods

func (r *HourlyEntryRequest) ToEntry() schedule.Entry {
	return schedule.Entry{
		PeriodLabel: r.TimePeriod,
		Activity:    r.HourlyActivity,
		Achieved:    r.HourlyAchieved,
		Problem: schedule.ProblemReport{
			Description:     r.ProblemDescription,
			Resolved:        r.ProblemResolved,
			StartTime:       r.ProblemStartTime,
			EndTime:         r.ProblemEndTime,
			SupportProblem:  r.OnlineSupportProblem,
			SupportStart:    r.OnlineSupportStart,
			SupportEnd:      r.OnlineSupportEnd,
			SupportEngineer: r.OnlineSupportEngineer,
		},
	}
}

func (r *SubmitDailyReportsRequest) ToInput() *svc.SubmitDailyReportsInput {
	entries := make([]schedule.Entry, len(r.Reports))
	for i, report := range r.Reports {
		entries[i] = report.ToEntry()
	}
	return &svc.SubmitDailyReportsInput{
		ReportDate:  r.ReportDate,
		SiteName:    r.SiteName,
		ProjectName: r.ProjectName,
		Entries:     entries,
	}
}

func (r *UpdateHourlyReportRequest) ToInput() *svc.UpdateHourlyReportInput {
	return &svc.UpdateHourlyReportInput{
		HourlyActivity:        r.HourlyActivity,
		HourlyAchieved:        r.HourlyAchieved,
		ProblemDescription:    r.ProblemDescription,
		ProblemResolved:       r.ProblemResolved,
		ProblemStartTime:      r.ProblemStartTime,
		ProblemEndTime:        r.ProblemEndTime,
		OnlineSupportProblem:  r.OnlineSupportProblem,
		OnlineSupportStart:    r.OnlineSupportStart,
		OnlineSupportEnd:      r.OnlineSupportEnd,
		OnlineSupportEngineer: r.OnlineSupportEngineer,
	}
}

func HourlyReportToResponse(report *db.HourlyReport) HourlyReportResponse {
	return HourlyReportResponse{
		ID:                    report.ID,
		UserID:                report.UserID,
		ReportDate:            report.ReportDate,
		TimePeriod:            report.TimePeriod,
		SessionName:           report.SessionName,
		SiteName:              report.SiteName,
		ProjectName:           report.ProjectName,
		HourlyActivity:        report.HourlyActivity,
		HourlyAchieved:        report.HourlyAchieved,
		DailyAchieved:         report.DailyAchieved,
		ProblemDescription:    report.ProblemDescription,
		ProblemResolved:       report.ProblemResolved,
		ProblemStartTime:      report.ProblemStartTime,
		ProblemEndTime:        report.ProblemEndTime,
		OnlineSupportProblem:  report.OnlineSupportProblem,
		OnlineSupportStart:    report.OnlineSupportStart,
		OnlineSupportEnd:      report.OnlineSupportEnd,
		OnlineSupportEngineer: report.OnlineSupportEngineer,
		CreatedAt:             report.CreatedAt,
		UpdatedAt:             report.UpdatedAt,
	}
}

func HourlyReportsToResponse(reports []db.HourlyReport) []HourlyReportResponse {
	responses := make([]HourlyReportResponse, len(reports))
	for i, report := range reports {
		responses[i] = HourlyReportToResponse(&report)
	}
	return responses
}

func BatchOutcomeToResponse(outcome *svc.BatchOutcome) BatchSubmitResponse {
	response := BatchSubmitResponse{
		Created:    HourlyReportsToResponse(outcome.Created),
		Rejections: make([]RejectionResponse, len(outcome.Rejections)),
	}
	if response.Created == nil {
		response.Created = []HourlyReportResponse{}
	}
	for i, rejection := range outcome.Rejections {
		rr := RejectionResponse{
			TimePeriod: rejection.PeriodLabel,
			Reason:     string(rejection.Reason),
		}
		for _, v := range rejection.Violations {
			rr.Violations = append(rr.Violations, ViolationResponse{Field: v.Field, Message: v.Message})
		}
		response.Rejections[i] = rr
	}
	return response
}

func SessionStatesToResponse(states []schedule.SessionState) []SessionStatusResponse {
	responses := make([]SessionStatusResponse, len(states))
	for i, state := range states {
		responses[i] = SessionStatusResponse{
			TimePeriod:  state.Period.Label,
			SessionName: state.Period.Name,
			StartHour:   state.Period.StartHour,
			EndHour:     state.Period.EndHour,
			Status:      string(state.Status),
			CanEdit:     state.CanEdit,
		}
	}
	return responses
}
