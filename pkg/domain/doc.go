// Package domain contains the core domain entities and types used by the
// application. These types represent the business concepts (organizations,
// members, permission sets, projects, boards, sprints, tasks, invitations)
// and are intentionally free of infrastructure concerns so they can be shared
// across packages.
package domain
