package moms

import (
	"errors"
	"fmt"
	"time"

	"log/slog"

	"github.com/JorgeSaicoski/pgconnect"
	"github.com/JorgeSaicoski/site-reporter/internal/db"
	"gorm.io/gorm"
)

/* ------------------------------------------------------------------ */
/*  Logger                                                            */
/* ------------------------------------------------------------------ */

var log = slog.Default().With(
	slog.String("layer", "service"),
	slog.String("service", "MomService"),
)

/* ------------------------------------------------------------------ */
/*  Service definition & constructor                                  */
/* ------------------------------------------------------------------ */

type MomService struct {
	momRepo *pgconnect.Repository[db.MomRecord]
}

func NewMomService(database *pgconnect.DB) *MomService {
	return &MomService{
		momRepo: pgconnect.NewRepository[db.MomRecord](database),
	}
}

/* ------------------------------------------------------------------ */
/*  DTOs                                                              */
/* ------------------------------------------------------------------ */

type CreateMomInput struct {
	Title            string
	MeetingDate      string
	Location         *string
	Attendees        string
	DiscussionPoints string
	ActionItems      string
}

type UpdateMomInput struct {
	Title            *string
	MeetingDate      *string
	Location         *string
	Attendees        *string
	DiscussionPoints *string
	ActionItems      *string
}

/* ------------------------------------------------------------------ */
/*  CRUD                                                              */
/* ------------------------------------------------------------------ */

func (s *MomService) CreateMom(in *CreateMomInput, userID string) (*db.MomRecord, error) {
	log.Info("create-mom:start", "userID", userID, "title", in.Title)

	if _, err := time.Parse(db.DateLayout, in.MeetingDate); err != nil {
		return nil, fmt.Errorf("invalid meeting date %q: %w", in.MeetingDate, err)
	}

	now := time.Now()
	mom := &db.MomRecord{
		UserID:           userID,
		Title:            in.Title,
		MeetingDate:      in.MeetingDate,
		Location:         in.Location,
		Attendees:        in.Attendees,
		DiscussionPoints: in.DiscussionPoints,
		ActionItems:      in.ActionItems,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.momRepo.Create(mom); err != nil {
		log.Error("create-mom:db-insert-failed", "err", err)
		return nil, fmt.Errorf("failed to create MoM record: %w", err)
	}

	log.Info("create-mom:success", "momID", mom.ID)
	return mom, nil
}

func (s *MomService) GetMom(id uint, userID string) (*db.MomRecord, error) {
	log.Debug("get-mom", "momID", id, "userID", userID)

	var mom db.MomRecord
	if err := s.momRepo.FindByID(id, &mom); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("get-mom:not-found", "momID", id)
			return nil, fmt.Errorf("MoM record not found: %w", err)
		}
		log.Error("get-mom:lookup-failed", "err", err)
		return nil, fmt.Errorf("failed to load MoM record: %w", err)
	}

	if mom.UserID != userID {
		log.Warn("get-mom:access-denied", "momID", id, "userID", userID)
		return nil, errors.New("access denied: MoM record is private to its author")
	}
	return &mom, nil
}

func (s *MomService) UpdateMom(id uint, in *UpdateMomInput, userID string) (*db.MomRecord, error) {
	log.Info("update-mom:start", "momID", id, "userID", userID)

	mom, err := s.GetMom(id, userID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		mom.Title = *in.Title
	}
	if in.MeetingDate != nil {
		if _, err := time.Parse(db.DateLayout, *in.MeetingDate); err != nil {
			return nil, fmt.Errorf("invalid meeting date %q: %w", *in.MeetingDate, err)
		}
		mom.MeetingDate = *in.MeetingDate
	}
	if in.Location != nil {
		mom.Location = in.Location
	}
	if in.Attendees != nil {
		mom.Attendees = *in.Attendees
	}
	if in.DiscussionPoints != nil {
		mom.DiscussionPoints = *in.DiscussionPoints
	}
	if in.ActionItems != nil {
		mom.ActionItems = *in.ActionItems
	}
	mom.UpdatedAt = time.Now()

	if err := s.momRepo.Update(mom); err != nil {
		log.Error("update-mom:db-update-failed", "err", err)
		return nil, fmt.Errorf("failed to update MoM record: %w", err)
	}

	log.Info("update-mom:success", "momID", id)
	return mom, nil
}

func (s *MomService) DeleteMom(id uint, userID string) error {
	log.Info("delete-mom:start", "momID", id, "userID", userID)

	mom, err := s.GetMom(id, userID)
	if err != nil {
		return err
	}

	if err := s.momRepo.Delete(mom); err != nil {
		log.Error("delete-mom:db-delete-failed", "err", err)
		return fmt.Errorf("failed to delete MoM record: %w", err)
	}

	log.Info("delete-mom:success", "momID", id)
	return nil
}

func (s *MomService) GetUserMoms(userID string, startDate, endDate *string) ([]db.MomRecord, error) {
	log.Debug("list-moms", "userID", userID)

	query := "user_id = ?"
	args := []interface{}{userID}

	if startDate != nil {
		query += " AND meeting_date >= ?"
		args = append(args, *startDate)
	}
	if endDate != nil {
		query += " AND meeting_date <= ?"
		args = append(args, *endDate)
	}

	var moms []db.MomRecord
	if err := s.momRepo.FindWhere(&moms, query, args...); err != nil {
		log.Error("list-moms:query-failed", "err", err)
		return nil, fmt.Errorf("failed to retrieve MoM records: %w", err)
	}

	log.Info("list-moms:success", "count", len(moms))
	return moms, nil
}
