package db

import (
	"time"
)

// DateLayout is the report-date format used across the service.
const DateLayout = "2006-01-02"

// HourlyReport is the persisted record for one (user, date, period) report.
// The composite unique index backs the at-most-once submission contract: the
// window engine validates preconditions, the database enforces them.
type HourlyReport struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	UserID      string `json:"userId" gorm:"not null;uniqueIndex:idx_report_user_date_period"`
	ReportDate  string `json:"reportDate" gorm:"not null;uniqueIndex:idx_report_user_date_period"` // YYYY-MM-DD
	TimePeriod  string `json:"timePeriod" gorm:"not null;uniqueIndex:idx_report_user_date_period"` // period label, e.g. "9am-12pm"
	SessionName string `json:"sessionName"`                                                        // e.g. "Morning Session"
	SiteName    string `json:"siteName"`
	ProjectName string `json:"projectName"`

	HourlyActivity string `json:"hourlyActivity" gorm:"not null"`
	HourlyAchieved string `json:"hourlyAchieved"`
	DailyAchieved  string `json:"dailyAchieved"` // running roll-up at submission time; lossy above the summary threshold

	// Optional problem block. Time fields are free text as entered on the form.
	ProblemDescription    *string `json:"problemDescription"`
	ProblemResolved       *string `json:"problemResolved"` // "Yes" / "No"
	ProblemStartTime      *string `json:"problemStartTime"`
	ProblemEndTime        *string `json:"problemEndTime"`
	OnlineSupportProblem  *string `json:"onlineSupportProblem"`
	OnlineSupportStart    *string `json:"onlineSupportStart"`
	OnlineSupportEnd      *string `json:"onlineSupportEnd"`
	OnlineSupportEngineer *string `json:"onlineSupportEngineer"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MomRecord is a Minutes-of-Meeting entry owned by the employee who filed it.
type MomRecord struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	UserID           string    `json:"userId" gorm:"not null;index"`
	Title            string    `json:"title" gorm:"not null"`
	MeetingDate      string    `json:"meetingDate" gorm:"not null;index"` // YYYY-MM-DD
	Location         *string   `json:"location"`
	Attendees        string    `json:"attendees"`
	DiscussionPoints string    `json:"discussionPoints"`
	ActionItems      string    `json:"actionItems"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// AttendanceSummary represents one day's aggregated attendance for managers
type AttendanceSummary struct {
	ReportDate     string            `json:"reportDate"`
	TotalEmployees int               `json:"totalEmployees"`
	Entries        []AttendanceEntry `json:"entries"`
}

// AttendanceEntry is one employee's line in the attendance summary
type AttendanceEntry struct {
	UserID           string   `json:"userId"`
	EmployeeName     string   `json:"employeeName"`
	SubmittedPeriods int      `json:"submittedPeriods"`
	MissedPeriods    int      `json:"missedPeriods"`
	PendingPeriods   int      `json:"pendingPeriods"`
	Periods          []string `json:"periods"` // labels of the submitted periods
}

// UserPerformanceReport represents individual reporting discipline over a date range
type UserPerformanceReport struct {
	UserID           string  `json:"userId"`
	StartDate        string  `json:"startDate"`
	EndDate          string  `json:"endDate"`
	DaysReported     int     `json:"daysReported"`
	SubmittedPeriods int     `json:"submittedPeriods"`
	MissedPeriods    int     `json:"missedPeriods"`
	SubmissionRate   float64 `json:"submissionRate"` // submitted / expected over reported days
	ProblemsReported int     `json:"problemsReported"`
	ProblemsResolved int     `json:"problemsResolved"`
}
