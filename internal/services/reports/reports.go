package reports

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"log/slog"

	"github.com/JorgeSaicoski/pgconnect"
	clients "github.com/JorgeSaicoski/site-reporter/internal/client"
	"github.com/JorgeSaicoski/site-reporter/internal/db"
	"github.com/JorgeSaicoski/site-reporter/internal/schedule"
	"gorm.io/gorm"
)

/* ------------------------------------------------------------------ */
/*  Logger                                                            */
/* ------------------------------------------------------------------ */

var log = slog.Default().With(
	slog.String("layer", "service"),
	slog.String("service", "ReportService"),
)

/* ------------------------------------------------------------------ */
/*  Service definition & constructor                                  */
/* ------------------------------------------------------------------ */

type ReportService struct {
	reportRepo *pgconnect.Repository[db.HourlyReport]

	directory clients.DirectoryClient
	periods   []schedule.Period
}

func NewReportService(
	database *pgconnect.DB,
	directory clients.DirectoryClient,
) *ReportService {
	return &ReportService{
		reportRepo: pgconnect.NewRepository[db.HourlyReport](database),
		directory:  directory,
		periods:    schedule.DefaultPeriods,
	}
}

/* ------------------------------------------------------------------ */
/*  DTOs                                                              */
/* ------------------------------------------------------------------ */

type SubmitDailyReportsInput struct {
	ReportDate  string
	SiteName    string
	ProjectName string
	Entries     []schedule.Entry
}

type UpdateHourlyReportInput struct {
	HourlyActivity        *string
	HourlyAchieved        *string
	ProblemDescription    *string
	ProblemResolved       *string
	ProblemStartTime      *string
	ProblemEndTime        *string
	OnlineSupportProblem  *string
	OnlineSupportStart    *string
	OnlineSupportEnd      *string
	OnlineSupportEngineer *string
}

// BatchOutcome is what one submission attempt produced: the persisted rows
// plus the engine's structured rejections for everything it refused.
type BatchOutcome struct {
	Created    []db.HourlyReport
	Rejections []schedule.Rejection
}

/* ------------------------------------------------------------------ */
/*  Submission                                                        */
/* ------------------------------------------------------------------ */

// SubmitDailyReports gates one day's entries through the window engine and
// persists the accepted ones. The engine decides whether an attempt is
// allowed; this layer owns storage and nothing else.
func (s *ReportService) SubmitDailyReports(
	userID string,
	in *SubmitDailyReportsInput,
	now time.Time,
) (*BatchOutcome, error) {
	log.Info("submit-daily-reports:start", "userID", userID, "date", in.ReportDate, "entries", len(in.Entries))

	if _, err := time.Parse(db.DateLayout, in.ReportDate); err != nil {
		return nil, fmt.Errorf("invalid report date %q: %w", in.ReportDate, err)
	}

	existing, err := s.dayReports(userID, in.ReportDate)
	if err != nil {
		log.Error("submit-daily-reports:lookup-failed", "err", err)
		return nil, fmt.Errorf("failed to load existing reports: %w", err)
	}

	submitted := make(map[string]bool, len(existing))
	for _, r := range existing {
		submitted[r.TimePeriod] = true
	}

	result := schedule.SubmitBatch(s.periods, in.Entries, submitted, now)

	dailyAchieved := schedule.DailyAchievement(s.dayEntries(existing, result.Accepted))

	outcome := &BatchOutcome{Rejections: result.Rejections}
	for _, entry := range result.Accepted {
		period, _ := schedule.PeriodByLabel(s.periods, entry.PeriodLabel)
		report := db.HourlyReport{
			UserID:         userID,
			ReportDate:     in.ReportDate,
			TimePeriod:     period.Label,
			SessionName:    period.Name,
			SiteName:       in.SiteName,
			ProjectName:    in.ProjectName,
			HourlyActivity: strings.TrimSpace(entry.Activity),
			HourlyAchieved: strings.TrimSpace(entry.Achieved),
			DailyAchieved:  dailyAchieved,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		applyProblem(&report, entry.Problem)

		if err := s.reportRepo.Create(&report); err != nil {
			log.Error("submit-daily-reports:db-insert-failed", "period", period.Label, "err", err)
			return nil, fmt.Errorf("failed to create report for %s: %w", period.Label, err)
		}
		outcome.Created = append(outcome.Created, report)
	}

	log.Info("submit-daily-reports:done", "userID", userID,
		"created", len(outcome.Created), "rejected", len(outcome.Rejections))
	return outcome, nil
}

// UpdateHourlyReport corrects an already-submitted report. Allowed only while
// the report's period editing window (including the trailing grace) is open.
func (s *ReportService) UpdateHourlyReport(
	userID string,
	reportID uint,
	in *UpdateHourlyReportInput,
	now time.Time,
) (*db.HourlyReport, error) {
	log.Info("update-hourly-report:start", "reportID", reportID, "userID", userID)

	var report db.HourlyReport
	if err := s.reportRepo.FindByID(reportID, &report); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("update-hourly-report:not-found", "reportID", reportID)
			return nil, fmt.Errorf("hourly report not found: %w", err)
		}
		log.Error("update-hourly-report:lookup-failed", "err", err)
		return nil, fmt.Errorf("failed to load hourly report: %w", err)
	}

	if report.UserID != userID {
		log.Warn("update-hourly-report:access-denied", "reportID", reportID, "userID", userID)
		return nil, errors.New("access denied: report belongs to another user")
	}

	period, ok := schedule.PeriodByLabel(s.periods, report.TimePeriod)
	if !ok {
		return nil, fmt.Errorf("report has unknown period %q", report.TimePeriod)
	}
	if !schedule.WithinEditingWindow(period.StartHour, period.EndHour, now) {
		log.Warn("update-hourly-report:window-closed", "period", period.Label)
		return nil, errors.New("editing window has closed for this period")
	}

	if in.HourlyActivity != nil {
		report.HourlyActivity = strings.TrimSpace(*in.HourlyActivity)
	}
	if in.HourlyAchieved != nil {
		report.HourlyAchieved = strings.TrimSpace(*in.HourlyAchieved)
	}
	if in.ProblemDescription != nil {
		report.ProblemDescription = in.ProblemDescription
	}
	if in.ProblemResolved != nil {
		report.ProblemResolved = in.ProblemResolved
	}
	if in.ProblemStartTime != nil {
		report.ProblemStartTime = in.ProblemStartTime
	}
	if in.ProblemEndTime != nil {
		report.ProblemEndTime = in.ProblemEndTime
	}
	if in.OnlineSupportProblem != nil {
		report.OnlineSupportProblem = in.OnlineSupportProblem
	}
	if in.OnlineSupportStart != nil {
		report.OnlineSupportStart = in.OnlineSupportStart
	}
	if in.OnlineSupportEnd != nil {
		report.OnlineSupportEnd = in.OnlineSupportEnd
	}
	if in.OnlineSupportEngineer != nil {
		report.OnlineSupportEngineer = in.OnlineSupportEngineer
	}

	if violations := schedule.ValidateCorrection(reportEntry(&report)); len(violations) > 0 {
		fields := make([]string, len(violations))
		for i, v := range violations {
			fields[i] = v.Field
		}
		log.Warn("update-hourly-report:validation-failed", "fields", fields)
		return nil, fmt.Errorf("validation failed: missing %s", strings.Join(fields, ", "))
	}

	// Refresh the running daily roll-up with the edited achievement text.
	day, err := s.dayReports(userID, report.ReportDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load day reports: %w", err)
	}
	for i := range day {
		if day[i].ID == report.ID {
			day[i] = report
		}
	}
	report.DailyAchieved = schedule.DailyAchievement(s.dayEntries(day, nil))
	report.UpdatedAt = now

	if err := s.reportRepo.Update(&report); err != nil {
		log.Error("update-hourly-report:db-update-failed", "err", err)
		return nil, fmt.Errorf("failed to update hourly report: %w", err)
	}

	log.Info("update-hourly-report:success", "reportID", reportID)
	return &report, nil
}

/* ------------------------------------------------------------------ */
/*  Status & history                                                  */
/* ------------------------------------------------------------------ */

// GetDailyStatus derives every period's lifecycle state for the given date.
// Callers poll this; the engine recomputes from scratch on each call.
func (s *ReportService) GetDailyStatus(userID, date string, now time.Time) ([]schedule.SessionState, error) {
	log.Debug("get-daily-status", "userID", userID, "date", date)

	existing, err := s.dayReports(userID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load reports: %w", err)
	}
	submitted := make(map[string]bool, len(existing))
	for _, r := range existing {
		submitted[r.TimePeriod] = true
	}
	return schedule.ComputeStatuses(s.periods, submitted, now), nil
}

// GetUserReports returns a user's report history with optional date filters.
func (s *ReportService) GetUserReports(userID string, startDate, endDate *string) ([]db.HourlyReport, error) {
	var reports []db.HourlyReport

	query := "user_id = ?"
	args := []interface{}{userID}

	if startDate != nil {
		query += " AND report_date >= ?"
		args = append(args, *startDate)
	}
	if endDate != nil {
		query += " AND report_date <= ?"
		args = append(args, *endDate)
	}

	if err := s.reportRepo.FindWhere(&reports, query, args...); err != nil {
		return nil, fmt.Errorf("failed to retrieve report history: %w", err)
	}
	return reports, nil
}

// GetDailyAchievement rolls one day's achievement text into the summary
// string. The per-report achieved text remains the durable record.
func (s *ReportService) GetDailyAchievement(userID, date string) (string, error) {
	reports, err := s.dayReports(userID, date)
	if err != nil {
		return "", fmt.Errorf("failed to load reports: %w", err)
	}
	return schedule.DailyAchievement(s.dayEntries(reports, nil)), nil
}

/* ------------------------------------------------------------------ */
/*  Manager dashboards                                                */
/* ------------------------------------------------------------------ */

// GenerateAttendanceSummary aggregates one day's reports across all
// employees. Missed/pending counts come from the window engine so a day in
// progress does not count future sessions as missed. The service has no
// employee roster: only employees who filed at least one report that day
// appear, so TotalEmployees does not include fully absent staff.
func (s *ReportService) GenerateAttendanceSummary(date string, now time.Time) (*db.AttendanceSummary, error) {
	log.Debug("attendance-summary", "date", date)

	var reports []db.HourlyReport
	if err := s.reportRepo.FindWhere(&reports, "report_date = ?", date); err != nil {
		log.Error("attendance-summary:query-failed", "err", err)
		return nil, fmt.Errorf("failed to retrieve reports: %w", err)
	}

	byUser := make(map[string][]db.HourlyReport)
	for _, r := range reports {
		byUser[r.UserID] = append(byUser[r.UserID], r)
	}

	summary := &db.AttendanceSummary{
		ReportDate:     date,
		TotalEmployees: len(byUser),
	}

	userIDs := make([]string, 0, len(byUser))
	for userID := range byUser {
		userIDs = append(userIDs, userID)
	}
	sort.Strings(userIDs)

	for _, userID := range userIDs {
		submitted := make(map[string]bool)
		labels := make([]string, 0, len(byUser[userID]))
		for _, r := range byUser[userID] {
			submitted[r.TimePeriod] = true
			labels = append(labels, r.TimePeriod)
		}
		sort.Strings(labels)

		entry := db.AttendanceEntry{
			UserID:       userID,
			EmployeeName: s.employeeName(userID),
			Periods:      labels,
		}
		for _, state := range schedule.ComputeStatuses(s.periods, submitted, now) {
			switch state.Status {
			case schedule.StatusSubmitted:
				entry.SubmittedPeriods++
			case schedule.StatusMissed:
				entry.MissedPeriods++
			default:
				entry.PendingPeriods++
			}
		}
		summary.Entries = append(summary.Entries, entry)
	}

	log.Info("attendance-summary:success", "date", date, "employees", summary.TotalEmployees)
	return summary, nil
}

// GenerateUserPerformanceReport measures reporting discipline over a date
// range. Expected periods count only days the user reported at all.
func (s *ReportService) GenerateUserPerformanceReport(userID, startDate, endDate string) (*db.UserPerformanceReport, error) {
	log.Debug("performance-report", "userID", userID, "start", startDate, "end", endDate)

	var reports []db.HourlyReport
	if err := s.reportRepo.FindWhere(&reports,
		"user_id = ? AND report_date >= ? AND report_date <= ?",
		userID, startDate, endDate); err != nil {
		log.Error("performance-report:query-failed", "err", err)
		return nil, fmt.Errorf("failed to retrieve reports: %w", err)
	}

	report := &db.UserPerformanceReport{
		UserID:           userID,
		StartDate:        startDate,
		EndDate:          endDate,
		SubmittedPeriods: len(reports),
	}

	dates := make(map[string]bool)
	for _, r := range reports {
		dates[r.ReportDate] = true
		if r.ProblemDescription != nil && strings.TrimSpace(*r.ProblemDescription) != "" {
			report.ProblemsReported++
			if r.ProblemResolved != nil && *r.ProblemResolved == schedule.ProblemResolvedYes {
				report.ProblemsResolved++
			}
		}
	}
	report.DaysReported = len(dates)

	expected := report.DaysReported * len(s.periods)
	report.MissedPeriods = expected - report.SubmittedPeriods
	if expected > 0 {
		report.SubmissionRate = float64(report.SubmittedPeriods) / float64(expected)
	}

	log.Info("performance-report:success", "userID", userID,
		"days", report.DaysReported, "rate", report.SubmissionRate)
	return report, nil
}

/* ------------------------------------------------------------------ */
/*  Helpers                                                           */
/* ------------------------------------------------------------------ */

func (s *ReportService) dayReports(userID, date string) ([]db.HourlyReport, error) {
	var reports []db.HourlyReport
	if err := s.reportRepo.FindWhere(&reports,
		"user_id = ? AND report_date = ?", userID, date); err != nil {
		return nil, err
	}
	return reports, nil
}

// dayEntries assembles the day's entries in fixed period order, preferring
// already-persisted achievement text over the incoming batch for the same
// period. The engine's roll-up depends on this ordering for stable session
// numbers.
func (s *ReportService) dayEntries(persisted []db.HourlyReport, incoming []schedule.Entry) []schedule.Entry {
	entries := make([]schedule.Entry, len(s.periods))
	for i, p := range s.periods {
		entries[i] = schedule.Entry{PeriodLabel: p.Label}
		found := false
		for _, r := range persisted {
			if r.TimePeriod == p.Label {
				entries[i].Achieved = r.HourlyAchieved
				found = true
				break
			}
		}
		if found {
			continue
		}
		for _, e := range incoming {
			if e.PeriodLabel == p.Label {
				entries[i].Achieved = e.Achieved
				break
			}
		}
	}
	return entries
}

func (s *ReportService) employeeName(userID string) string {
	if s.directory == nil {
		return userID
	}
	emp, err := s.directory.GetEmployee(context.Background(), userID)
	if err != nil {
		log.Warn("attendance-summary:name-lookup-failed", "userID", userID, "err", err)
		return userID
	}
	return emp.Name
}

func applyProblem(report *db.HourlyReport, problem schedule.ProblemReport) {
	report.ProblemDescription = optional(problem.Description)
	report.ProblemResolved = optional(problem.Resolved)
	report.ProblemStartTime = optional(problem.StartTime)
	report.ProblemEndTime = optional(problem.EndTime)
	report.OnlineSupportProblem = optional(problem.SupportProblem)
	report.OnlineSupportStart = optional(problem.SupportStart)
	report.OnlineSupportEnd = optional(problem.SupportEnd)
	report.OnlineSupportEngineer = optional(problem.SupportEngineer)
}

func reportEntry(report *db.HourlyReport) schedule.Entry {
	return schedule.Entry{
		PeriodLabel: report.TimePeriod,
		Activity:    report.HourlyActivity,
		Achieved:    report.HourlyAchieved,
		Problem: schedule.ProblemReport{
			Description:     deref(report.ProblemDescription),
			Resolved:        deref(report.ProblemResolved),
			StartTime:       deref(report.ProblemStartTime),
			EndTime:         deref(report.ProblemEndTime),
			SupportProblem:  deref(report.OnlineSupportProblem),
			SupportStart:    deref(report.OnlineSupportStart),
			SupportEnd:      deref(report.OnlineSupportEnd),
			SupportEngineer: deref(report.OnlineSupportEngineer),
		},
	}
}

func optional(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
