package client

import (
	"testing"

	"smartpg/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestRouterStartsOnDashboard(t *testing.T) {
	router := NewTabRouter(model.RoleResident, false)
	assert.Equal(t, model.TabDashboard, router.Active())
}

func TestRouterRejectsForbiddenTab(t *testing.T) {
	router := NewTabRouter(model.RoleResident, false)

	assert.False(t, router.Select(model.TabResidents))
	assert.Equal(t, model.TabDashboard, router.Active(), "a rejected switch must not move the active tab")
}

func TestRouterSwitchesPermittedTab(t *testing.T) {
	router := NewTabRouter(model.RoleAdmin, false)

	assert.True(t, router.Select(model.TabResidents))
	assert.Equal(t, model.TabResidents, router.Active())

	assert.False(t, router.Select(model.TabChat), "chat is resident-only unless enabled for all roles")
	assert.Equal(t, model.TabResidents, router.Active())
}

func TestRouterChatForAllRoles(t *testing.T) {
	router := NewTabRouter(model.RoleAdmin, true)
	assert.True(t, router.Select(model.TabChat))
}

func TestRouterReset(t *testing.T) {
	router := NewTabRouter(model.RoleResident, false)
	assert.True(t, router.Select(model.TabFood))

	router.Reset()
	assert.Equal(t, model.TabDashboard, router.Active())
}
