package service

import (
	"context"
	"testing"

	"smartpg/internal/common"
	"smartpg/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTwoResidents(t *testing.T, repo *memUserRepo) {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), &model.User{
		ID: "r1", Name: "John Doe", Email: "john@example.com", Role: model.RoleResident,
	}))
	require.NoError(t, repo.Create(context.Background(), &model.User{
		ID: "r2", Name: "Jane Smith", Email: "jane@example.com", Role: model.RoleResident,
	}))
}

func TestAdminTogglesRentForExactlyOneResident(t *testing.T) {
	repo := newMemUserRepo()
	seedTwoResidents(t, repo)
	svc := NewResidentService(repo)

	paid := true
	updated, err := svc.Update(context.Background(), "admin-01", model.RoleAdmin, "r1", UpdateUserRequest{
		IsRentPaid: &paid,
	})
	require.NoError(t, err)
	assert.True(t, updated.IsRentPaid)

	other, err := repo.FindByID(context.Background(), "r2")
	require.NoError(t, err)
	assert.False(t, other.IsRentPaid)
}

func TestResidentCannotEditAnotherProfile(t *testing.T) {
	repo := newMemUserRepo()
	seedTwoResidents(t, repo)
	svc := NewResidentService(repo)

	name := "Imposter"
	_, err := svc.Update(context.Background(), "r1", model.RoleResident, "r2", UpdateUserRequest{Name: &name})
	assert.ErrorIs(t, err, common.ErrForbidden)
}

func TestResidentCannotTouchBillingFields(t *testing.T) {
	repo := newMemUserRepo()
	seedTwoResidents(t, repo)
	svc := NewResidentService(repo)

	paid := true
	_, err := svc.Update(context.Background(), "r1", model.RoleResident, "r1", UpdateUserRequest{IsRentPaid: &paid})
	assert.ErrorIs(t, err, common.ErrForbidden)
}

func TestResidentEditsOwnProfile(t *testing.T) {
	repo := newMemUserRepo()
	seedTwoResidents(t, repo)
	svc := NewResidentService(repo)

	phone := "+91 9999999999"
	updated, err := svc.Update(context.Background(), "r1", model.RoleResident, "r1", UpdateUserRequest{
		PhoneNumber: &phone,
	})
	require.NoError(t, err)
	assert.Equal(t, phone, updated.PhoneNumber)
	assert.Equal(t, "John Doe", updated.Name, "untouched fields keep their values")
}

func TestDeleteRemovesExactlyTargetResident(t *testing.T) {
	repo := newMemUserRepo()
	seedTwoResidents(t, repo)
	svc := NewResidentService(repo)

	require.NoError(t, svc.Delete(context.Background(), "r1"))

	_, err := repo.FindByID(context.Background(), "r1")
	assert.ErrorIs(t, err, common.ErrNotFound)
	_, err = repo.FindByID(context.Background(), "r2")
	assert.NoError(t, err)
}

func TestDeleteRefusesAdminAccount(t *testing.T) {
	repo := newMemUserRepo()
	require.NoError(t, repo.Create(context.Background(), &model.User{
		ID: "admin-01", Name: "Administrator", Email: "admin@pg.com", Role: model.RoleAdmin,
	}))
	svc := NewResidentService(repo)

	err := svc.Delete(context.Background(), "admin-01")
	assert.ErrorIs(t, err, common.ErrForbidden)
}

func TestDeleteUnknownResident(t *testing.T) {
	svc := NewResidentService(newMemUserRepo())
	assert.ErrorIs(t, svc.Delete(context.Background(), "ghost"), common.ErrNotFound)
}
