package client

import "smartpg/internal/domain/model"

// TabRouter holds the single active-tab value and rejects transitions to
// tabs the session's role may not render. Rejection is an explicit no-op:
// the active tab simply does not change.
type TabRouter struct {
	role         string
	chatAllRoles bool
	active       model.Tab
}

func NewTabRouter(role string, chatAllRoles bool) *TabRouter {
	return &TabRouter{
		role:         role,
		chatAllRoles: chatAllRoles,
		active:       model.DefaultTab,
	}
}

func (r *TabRouter) Active() model.Tab {
	return r.active
}

func (r *TabRouter) Permitted() []model.Tab {
	return model.PermittedTabs(r.role, r.chatAllRoles)
}

// Select switches the active tab and reports whether the switch happened.
func (r *TabRouter) Select(tab model.Tab) bool {
	if !model.TabPermitted(r.role, tab, r.chatAllRoles) {
		return false
	}
	r.active = tab
	return true
}

// Reset returns the router to the initial dashboard state, as logout does.
func (r *TabRouter) Reset() {
	r.active = model.DefaultTab
}
