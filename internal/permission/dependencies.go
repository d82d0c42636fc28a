package permission

import "github.com/lufutu/scrumsan-sub003/pkg/domain"

// dependencyPair couples a manage flag with the view flag it implies.
type dependencyPair struct {
	manage  func(domain.PermissionConfig) bool
	view    func(domain.PermissionConfig) bool
	message string
}

// The closed schema has seven manage/view dependencies. Worklogs carries a
// single manage flag with no paired view flag, so it never appears here.
var dependencyPairs = []dependencyPair{
	{
		manage:  func(c domain.PermissionConfig) bool { return c.TeamMembers.ManageAll },
		view:    func(c domain.PermissionConfig) bool { return c.TeamMembers.ViewAll },
		message: "team members: manage all requires view all",
	},
	{
		manage:  func(c domain.PermissionConfig) bool { return c.Projects.ManageAll },
		view:    func(c domain.PermissionConfig) bool { return c.Projects.ViewAll },
		message: "projects: manage all requires view all",
	},
	{
		manage:  func(c domain.PermissionConfig) bool { return c.Projects.ManageAssigned },
		view:    func(c domain.PermissionConfig) bool { return c.Projects.ViewAssigned },
		message: "projects: manage assigned requires view assigned",
	},
	{
		manage:  func(c domain.PermissionConfig) bool { return c.Invoicing.ManageAll },
		view:    func(c domain.PermissionConfig) bool { return c.Invoicing.ViewAll },
		message: "invoicing: manage all requires view all",
	},
	{
		manage:  func(c domain.PermissionConfig) bool { return c.Invoicing.ManageAssigned },
		view:    func(c domain.PermissionConfig) bool { return c.Invoicing.ViewAssigned },
		message: "invoicing: manage assigned requires view assigned",
	},
	{
		manage:  func(c domain.PermissionConfig) bool { return c.Clients.ManageAll },
		view:    func(c domain.PermissionConfig) bool { return c.Clients.ViewAll },
		message: "clients: manage all requires view all",
	},
	{
		manage:  func(c domain.PermissionConfig) bool { return c.Clients.ManageAssigned },
		view:    func(c domain.PermissionConfig) bool { return c.Clients.ViewAssigned },
		message: "clients: manage assigned requires view assigned",
	},
}

// ValidateDependencies checks that every enabled manage flag is accompanied by
// its paired view flag. It returns one human-readable message per violated
// pair; an empty result means the configuration is internally consistent.
func ValidateDependencies(config domain.PermissionConfig) []string {
	var violations []string
	for _, pair := range dependencyPairs {
		if pair.manage(config) && !pair.view(config) {
			violations = append(violations, pair.message)
		}
	}

	return violations
}
