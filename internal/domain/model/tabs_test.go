package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermittedTabsByRole(t *testing.T) {
	resident := PermittedTabs(RoleResident, false)
	assert.Equal(t, []Tab{TabDashboard, TabFood, TabComplaints, TabNotices, TabProfile, TabChat}, resident)

	admin := PermittedTabs(RoleAdmin, false)
	assert.Equal(t, []Tab{TabDashboard, TabFood, TabComplaints, TabNotices, TabResidents}, admin)
	assert.NotContains(t, admin, TabChat)
	assert.NotContains(t, resident, TabResidents)
}

func TestPermittedTabsChatForAllRoles(t *testing.T) {
	admin := PermittedTabs(RoleAdmin, true)
	assert.Contains(t, admin, TabChat)

	// The resident list already carries chat; the flag must not duplicate it.
	resident := PermittedTabs(RoleResident, true)
	count := 0
	for _, tab := range resident {
		if tab == TabChat {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestPermittedTabsUnknownRole(t *testing.T) {
	assert.Nil(t, PermittedTabs("JANITOR", false))
	assert.False(t, TabPermitted("JANITOR", TabDashboard, false))
}

func TestTabPermitted(t *testing.T) {
	assert.True(t, TabPermitted(RoleResident, TabChat, false))
	assert.False(t, TabPermitted(RoleAdmin, TabChat, false))
	assert.True(t, TabPermitted(RoleAdmin, TabChat, true))
	assert.False(t, TabPermitted(RoleResident, TabResidents, false))
}
