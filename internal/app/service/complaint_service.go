package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"smartpg/internal/common"
	"smartpg/internal/domain/model"
	"smartpg/internal/domain/repository"

	"github.com/google/uuid"
)

type ComplaintService struct {
	complaintRepo repository.ComplaintRepository
	userRepo      repository.UserRepository
	events        EventPublisher
}

func NewComplaintService(
	complaintRepo repository.ComplaintRepository,
	userRepo repository.UserRepository,
	events EventPublisher,
) *ComplaintService {
	return &ComplaintService{
		complaintRepo: complaintRepo,
		userRepo:      userRepo,
		events:        events,
	}
}

type CreateComplaintRequest struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

type UpdateComplaintRequest struct {
	Status model.ComplaintStatus `json:"status"`
}

// Create raises a complaint on behalf of the authenticated resident. The
// resident's name is resolved from the user record, not taken from the
// request, so a renamed account can't spoof another resident.
func (s *ComplaintService) Create(ctx context.Context, residentID string, req CreateComplaintRequest) (*model.Complaint, error) {
	if req.Type == "" || req.Description == "" {
		return nil, common.Errorf("type and description are required: %w", common.ErrBadRequest)
	}

	resident, err := s.userRepo.FindByID(ctx, residentID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve resident: %w", err)
	}

	complaint := &model.Complaint{
		ID:           uuid.NewString(),
		ResidentID:   resident.ID,
		ResidentName: resident.Name,
		Type:         req.Type,
		Description:  req.Description,
		Status:       model.ComplaintPending,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.complaintRepo.Create(ctx, complaint); err != nil {
		return nil, fmt.Errorf("failed to create complaint: %w", err)
	}

	if s.events != nil {
		event := model.Event{
			ID:        uuid.NewString(),
			Type:      model.EventComplaintRaised,
			EntityID:  complaint.ID,
			Summary:   complaint.Type + " complaint from " + complaint.ResidentName,
			CreatedAt: complaint.CreatedAt,
		}
		if err := s.events.Publish(ctx, event); err != nil {
			log.Printf("WARN: failed to publish complaint event for %s: %v", complaint.ID, err)
		}
	}
	return complaint, nil
}

func (s *ComplaintService) List(ctx context.Context) ([]model.Complaint, error) {
	complaints, err := s.complaintRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}
	return complaints, nil
}

// UpdateStatus moves a complaint through PENDING -> IN_PROGRESS -> RESOLVED.
// Any of the three values may be set directly; only the value set is
// validated, not the ordering.
func (s *ComplaintService) UpdateStatus(ctx context.Context, id string, req UpdateComplaintRequest) (*model.Complaint, error) {
	if !req.Status.Valid() {
		return nil, common.Errorf("unknown complaint status %q: %w", req.Status, common.ErrBadRequest)
	}
	if err := s.complaintRepo.UpdateStatus(ctx, id, req.Status); err != nil {
		return nil, fmt.Errorf("failed to update complaint status: %w", err)
	}
	complaint, err := s.complaintRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload complaint: %w", err)
	}
	return complaint, nil
}
