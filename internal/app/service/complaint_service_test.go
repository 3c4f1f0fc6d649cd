package service

import (
	"context"
	"testing"

	"smartpg/internal/common"
	"smartpg/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedResident(t *testing.T, repo *memUserRepo) *model.User {
	t.Helper()
	user := &model.User{
		ID:    "res-1",
		Name:  "John Doe",
		Email: "john@example.com",
		Role:  model.RoleResident,
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestCreateComplaintStartsPending(t *testing.T) {
	userRepo := newMemUserRepo()
	resident := seedResident(t, userRepo)
	events := &memEventPublisher{}
	svc := NewComplaintService(newMemComplaintRepo(), userRepo, events)

	complaint, err := svc.Create(context.Background(), resident.ID, CreateComplaintRequest{
		Type:        "Water",
		Description: "No water on the second floor",
	})
	require.NoError(t, err)

	assert.Equal(t, model.ComplaintPending, complaint.Status)
	assert.Equal(t, resident.ID, complaint.ResidentID)
	assert.Equal(t, resident.Name, complaint.ResidentName)
	require.Len(t, events.events, 1)
	assert.Equal(t, model.EventComplaintRaised, events.events[0].Type)
	assert.Equal(t, complaint.ID, events.events[0].EntityID)
}

func TestCreateComplaintRequiresTypeAndDescription(t *testing.T) {
	userRepo := newMemUserRepo()
	resident := seedResident(t, userRepo)
	svc := NewComplaintService(newMemComplaintRepo(), userRepo, nil)

	_, err := svc.Create(context.Background(), resident.ID, CreateComplaintRequest{Type: "Water"})
	assert.ErrorIs(t, err, common.ErrBadRequest)
}

func TestCreateComplaintUnknownResident(t *testing.T) {
	svc := NewComplaintService(newMemComplaintRepo(), newMemUserRepo(), nil)

	_, err := svc.Create(context.Background(), "ghost", CreateComplaintRequest{
		Type:        "Internet",
		Description: "Wi-Fi down",
	})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestUpdateComplaintStatus(t *testing.T) {
	userRepo := newMemUserRepo()
	resident := seedResident(t, userRepo)
	svc := NewComplaintService(newMemComplaintRepo(), userRepo, nil)

	complaint, err := svc.Create(context.Background(), resident.ID, CreateComplaintRequest{
		Type:        "Electricity",
		Description: "Power socket sparking",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), complaint.ID, UpdateComplaintRequest{
		Status: model.ComplaintInProgress,
	})
	require.NoError(t, err)
	assert.Equal(t, model.ComplaintInProgress, updated.Status)
}

func TestUpdateComplaintStatusRejectsUnknownValue(t *testing.T) {
	svc := NewComplaintService(newMemComplaintRepo(), newMemUserRepo(), nil)

	_, err := svc.UpdateStatus(context.Background(), "any", UpdateComplaintRequest{Status: "ESCALATED"})
	assert.ErrorIs(t, err, common.ErrBadRequest)
}
