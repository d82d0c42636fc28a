package permission

import "github.com/lufutu/scrumsan-sub003/pkg/domain"

// Verb is the high-level operation being attempted on a resource.
type Verb string

const (
	VerbView   Verb = "view"
	VerbCreate Verb = "create"
	VerbUpdate Verb = "update"
	VerbDelete Verb = "delete"
)

// ResourceType classifies what a verb is applied to. Projects, boards, sprints
// and tasks all fall under the projects category.
type ResourceType string

const (
	ResourceProject ResourceType = "project"
	ResourceBoard   ResourceType = "board"
	ResourceSprint  ResourceType = "sprint"
	ResourceTask    ResourceType = "task"
	ResourceMember  ResourceType = "member"
	ResourceInvoice ResourceType = "invoice"
	ResourceClient  ResourceType = "client"
	ResourceWorklog ResourceType = "worklog"
)

// Resource describes the target of a permission check.
type Resource struct {
	Type ResourceType
	// OwnerID is the user who created the resource, when known.
	OwnerID domain.UserID
	// Assigned reports whether the acting member is assigned to the resource
	// (for projects, through an open engagement).
	Assigned bool
}

// HasPermissionWithContext evaluates an action against a member's role and
// attached permission set.
func HasPermissionWithContext(member domain.Member, set *domain.PermissionSet, action Action) bool {
	return HasPermission(member.Role, set, action)
}

// CanPerformAction decides whether a member may apply a verb to a resource.
// Owners always pass, and a resource owner may always view or update their own
// resource. Otherwise the verb/resource pair is mapped to the matching
// category action: the All scope first, then the Assigned scope when the
// member is assigned to the resource.
func CanPerformAction(member domain.Member, set *domain.PermissionSet, verb Verb, resource Resource) bool {
	if member.Role == domain.RoleOwner {
		return true
	}
	if resource.OwnerID != (domain.UserID{}) && resource.OwnerID == member.UserID &&
		(verb == VerbView || verb == VerbUpdate) {
		return true
	}

	category, ok := categoryFor(resource.Type)
	if !ok {
		return false
	}

	word := "manage"
	if verb == VerbView {
		word = "view"
	}

	if HasPermissionWithContext(member, set, Action(category+"."+word+"All")) {
		return true
	}
	if resource.Assigned && HasPermissionWithContext(member, set, Action(category+"."+word+"Assigned")) {
		return true
	}

	return false
}

func categoryFor(resource ResourceType) (string, bool) {
	switch resource {
	case ResourceProject, ResourceBoard, ResourceSprint, ResourceTask:
		return "projects", true
	case ResourceMember:
		return "teamMembers", true
	case ResourceInvoice:
		return "invoicing", true
	case ResourceClient:
		return "clients", true
	case ResourceWorklog:
		return "worklogs", true
	default:
		return "", false
	}
}
