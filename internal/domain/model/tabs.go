package model

// Tab identifies one feature view of the authenticated shell.
type Tab string

const (
	TabDashboard  Tab = "dashboard"
	TabComplaints Tab = "complaints"
	TabNotices    Tab = "notices"
	TabChat       Tab = "chat"
	TabResidents  Tab = "residents"
	TabFood       Tab = "food"
	TabProfile    Tab = "profile"
)

// DefaultTab is where every session starts and where logout resets to.
const DefaultTab = TabDashboard

// tabsByRole is the closed permitted-tabs table. Adding a role or tab is a
// single entry here, not a scattered conditional.
var tabsByRole = map[string][]Tab{
	RoleResident: {TabDashboard, TabFood, TabComplaints, TabNotices, TabProfile, TabChat},
	RoleAdmin:    {TabDashboard, TabFood, TabComplaints, TabNotices, TabResidents},
}

// PermittedTabs returns the tabs a role may render. chatAllRoles mirrors the
// theme variant where the chat assistant is common to both roles rather
// than resident-only.
func PermittedTabs(role string, chatAllRoles bool) []Tab {
	base, ok := tabsByRole[role]
	if !ok {
		return nil
	}
	tabs := make([]Tab, len(base))
	copy(tabs, base)
	if chatAllRoles && !containsTab(tabs, TabChat) {
		tabs = append(tabs, TabChat)
	}
	return tabs
}

// TabPermitted reports whether a role may render the given tab.
func TabPermitted(role string, tab Tab, chatAllRoles bool) bool {
	return containsTab(PermittedTabs(role, chatAllRoles), tab)
}

func containsTab(tabs []Tab, tab Tab) bool {
	for _, t := range tabs {
		if t == tab {
			return true
		}
	}
	return false
}
