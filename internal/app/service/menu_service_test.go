package service

import (
	"context"
	"testing"

	"smartpg/internal/common"
	"smartpg/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuGetSeedsDefaultWhenEmpty(t *testing.T) {
	repo := newMemMenuRepo(nil)
	svc := NewMenuService(repo)

	menu, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.True(t, menu.Complete())
	assert.Equal(t, 1, repo.replaceCalls, "healed menu must be written back")
	assert.Equal(t, model.DefaultWeeklyMenu()["Monday"], menu["Monday"])
}

func TestMenuGetHealsMissingWeekday(t *testing.T) {
	stored := model.DefaultWeeklyMenu()
	delete(stored, "Monday")
	repo := newMemMenuRepo(stored)
	svc := NewMenuService(repo)

	menu, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.True(t, menu.Complete())
	assert.Equal(t, model.DefaultWeeklyMenu()["Monday"], menu["Monday"])
	assert.Equal(t, 1, repo.replaceCalls)
}

func TestMenuGetLeavesCompleteMenuAlone(t *testing.T) {
	repo := newMemMenuRepo(model.DefaultWeeklyMenu())
	svc := NewMenuService(repo)

	menu, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.True(t, menu.Complete())
	assert.Zero(t, repo.replaceCalls)
}

func TestMenuReplaceFillsPartialPayload(t *testing.T) {
	repo := newMemMenuRepo(model.DefaultWeeklyMenu())
	svc := NewMenuService(repo)

	partial := model.WeeklyMenu{
		"Monday": {
			Breakfast: model.Meal{Menu: "Dosa", Time: "08:00 AM - 09:30 AM"},
			Lunch:     model.Meal{Menu: "Curd Rice", Time: "01:00 PM - 02:30 PM"},
			Dinner:    model.Meal{Menu: "Khichdi", Time: "08:00 PM - 09:30 PM"},
		},
	}
	stored, err := svc.Replace(context.Background(), partial)
	require.NoError(t, err)

	assert.True(t, stored.Complete())
	assert.Equal(t, "Dosa", stored["Monday"].Breakfast.Menu)
	assert.Equal(t, model.DefaultWeeklyMenu()["Tuesday"], stored["Tuesday"])
}

func TestMenuReplaceRejectsEmptyPayload(t *testing.T) {
	svc := NewMenuService(newMemMenuRepo(nil))

	_, err := svc.Replace(context.Background(), nil)
	assert.ErrorIs(t, err, common.ErrBadRequest)
}
