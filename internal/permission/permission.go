// Package permission implements the capability decision engine. It evaluates
// whether a member, given their role and an optional custom permission set,
// may perform an action, and validates permission configurations before they
// are persisted. The engine is a pure decision table over a closed schema:
// five categories, each with a fixed set of boolean flags.
package permission

import (
	"strings"

	"github.com/lufutu/scrumsan-sub003/pkg/domain"
)

// Action identifies a capability as "category.flag", e.g. "projects.viewAll".
type Action string

// All actions of the closed schema.
const (
	ActionTeamViewAll   Action = "teamMembers.viewAll"
	ActionTeamManageAll Action = "teamMembers.manageAll"

	ActionProjectsViewAll        Action = "projects.viewAll"
	ActionProjectsViewAssigned   Action = "projects.viewAssigned"
	ActionProjectsManageAll      Action = "projects.manageAll"
	ActionProjectsManageAssigned Action = "projects.manageAssigned"

	ActionInvoicingViewAll        Action = "invoicing.viewAll"
	ActionInvoicingViewAssigned   Action = "invoicing.viewAssigned"
	ActionInvoicingManageAll      Action = "invoicing.manageAll"
	ActionInvoicingManageAssigned Action = "invoicing.manageAssigned"

	ActionClientsViewAll        Action = "clients.viewAll"
	ActionClientsViewAssigned   Action = "clients.viewAssigned"
	ActionClientsManageAll      Action = "clients.manageAll"
	ActionClientsManageAssigned Action = "clients.manageAssigned"

	ActionWorklogsManageAll Action = "worklogs.manageAll"
)

// DefaultMemberConfig is the fixed minimal configuration applied to members
// without a custom permission set: they may only view assigned projects.
func DefaultMemberConfig() domain.PermissionConfig {
	return domain.PermissionConfig{
		Projects: domain.ScopedFlags{ViewAssigned: true},
	}
}

// HasPermission reports whether the given role, with the optionally attached
// permission set, allows the action.
//
// Owners always pass. Guests pass only for viewing assigned projects, whatever
// their attached set says. Members without a set fall back to the minimal
// default. Admins without a set have full access; with a set attached they are
// subject to its flags like everyone else.
func HasPermission(role domain.Role, set *domain.PermissionSet, action Action) bool {
	switch role {
	case domain.RoleOwner:
		return true
	case domain.RoleGuest:
		return action == ActionProjectsViewAssigned
	case domain.RoleAdmin:
		if set == nil {
			return true
		}
	case domain.RoleMember:
		if set == nil {
			return configAllows(DefaultMemberConfig(), action)
		}
	default:
		return false
	}

	return configAllows(set.Config, action)
}

// configAllows looks an action up in a configuration. Unknown categories and
// flags evaluate to false.
func configAllows(config domain.PermissionConfig, action Action) bool {
	category, flag, ok := strings.Cut(string(action), ".")
	if !ok {
		return false
	}

	switch category {
	case "teamMembers":
		switch flag {
		case "viewAll":
			return config.TeamMembers.ViewAll
		case "manageAll":
			return config.TeamMembers.ManageAll
		}
	case "projects":
		return scopedAllows(config.Projects, flag)
	case "invoicing":
		return scopedAllows(config.Invoicing, flag)
	case "clients":
		return scopedAllows(config.Clients, flag)
	case "worklogs":
		if flag == "manageAll" {
			return config.Worklogs.ManageAll
		}
	}

	return false
}

func scopedAllows(flags domain.ScopedFlags, flag string) bool {
	switch flag {
	case "viewAll":
		return flags.ViewAll
	case "viewAssigned":
		return flags.ViewAssigned
	case "manageAll":
		return flags.ManageAll
	case "manageAssigned":
		return flags.ManageAssigned
	default:
		return false
	}
}
