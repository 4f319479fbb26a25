// Package policy decides whether an actor may perform an operation. Every role
// check in the service lives in the rules table below.
package policy

import (
	"time"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
)

// Operation names one RPC.
type Operation string

const (
	OpGetEmployees          Operation = "getEmployees"
	OpCreateEmployee        Operation = "createEmployee"
	OpDeactivateEmployee    Operation = "deactivateEmployee"
	OpSendInvitation        Operation = "sendInvitation"
	OpGetMyProgress         Operation = "getMyProgress"
	OpGetEmployeeProgress   Operation = "getEmployeeProgress"
	OpStartTask             Operation = "startTask"
	OpCompleteTask          Operation = "completeTask"
	OpSkipTask              Operation = "skipTask"
	OpGetAllTasks           Operation = "getAllTasks"
	OpCreateTask            Operation = "createTask"
	OpUpdateTask            Operation = "updateTask"
	OpDeleteTask            Operation = "deleteTask"
	OpAssignTasksToEmployee Operation = "assignTasksToEmployee"
	OpGrantRole             Operation = "grantRole"
	OpRevokeRole            Operation = "revokeRole"
	OpListRoleGrants        Operation = "listRoleGrants"
)

// Rule is the shape of check an operation needs.
type Rule int

const (
	// RuleAnyRole admits every active actor in the company.
	RuleAnyRole Rule = iota + 1
	// RuleManagerScoped admits everyone, limiting managers to direct reports.
	RuleManagerScoped
	// RulePrivileged admits admin, hr and manager. Managers get
	// ScopeDirectReports.
	RulePrivileged
	// RuleOwner admits only the actor the target belongs to.
	RuleOwner
	// RuleHROrDirectManager admits admin, hr, or the target's manager.
	RuleHROrDirectManager
	// RuleAdmin admits admin only.
	RuleAdmin
)

var rules = map[Operation]Rule{
	OpGetAllTasks:           RuleAnyRole,
	OpGetMyProgress:         RuleAnyRole,
	OpGetEmployees:          RuleManagerScoped,
	OpCreateEmployee:        RulePrivileged,
	OpDeactivateEmployee:    RulePrivileged,
	OpCreateTask:            RulePrivileged,
	OpUpdateTask:            RulePrivileged,
	OpDeleteTask:            RulePrivileged,
	OpAssignTasksToEmployee: RulePrivileged,
	OpSkipTask:              RulePrivileged,
	OpStartTask:             RuleOwner,
	OpCompleteTask:          RuleOwner,
	OpSendInvitation:        RuleHROrDirectManager,
	OpGetEmployeeProgress:   RuleHROrDirectManager,
	OpGrantRole:             RuleAdmin,
	OpRevokeRole:            RuleAdmin,
	OpListRoleGrants:        RuleAdmin,
}

// RuleFor returns the rule registered for op.
func RuleFor(op Operation) (Rule, bool) {
	r, ok := rules[op]
	return r, ok
}

// Operations lists every operation with a rule.
func Operations() []Operation {
	out := make([]Operation, 0, len(rules))
	for op := range rules {
		out = append(out, op)
	}
	return out
}

// Target describes the record an operation touches. OwnerID means the
// employee's user_id for owner rules and the employee's manager_id for
// direct-manager rules.
type Target struct {
	CompanyID  string
	OwnerID    string
	Department string
	Team       string
}

type Reason string

const (
	ReasonNone             Reason = ""
	ReasonCrossTenant      Reason = "cross_tenant"
	ReasonInactive         Reason = "inactive"
	ReasonRole             Reason = "role"
	ReasonNotOwner         Reason = "not_owner"
	ReasonNotManager       Reason = "not_manager"
	ReasonUnknownOperation Reason = "unknown_operation"
)

// Scope records how far an allowed decision reaches.
type Scope int

const (
	ScopeAll Scope = iota
	// ScopeDirectReports means the actor qualified only as a manager. Reads
	// are limited to direct reports and new hires report to the actor.
	ScopeDirectReports
)

type Decision struct {
	Allowed bool
	Reason  Reason
	Scope   Scope
}

func allow(scope Scope) Decision { return Decision{Allowed: true, Scope: scope} }
func deny(r Reason) Decision     { return Decision{Reason: r} }

// Err converts a denial into a domain error. Cross-tenant denials read as not
// found so callers learn nothing about other companies.
func (d Decision) Err() error {
	switch {
	case d.Allowed:
		return nil
	case d.Reason == ReasonCrossTenant:
		return domain.NotFound("record not found")
	case d.Reason == ReasonInactive:
		return domain.Forbidden("account is inactive")
	case d.Reason == ReasonNotOwner:
		return domain.Forbidden("only the assigned employee may do this")
	case d.Reason == ReasonNotManager:
		return domain.Forbidden("only hr, admins or the employee's manager may do this")
	default:
		return domain.Forbidden("not permitted")
	}
}

// Authorize evaluates op for actor against target at the current time.
func Authorize(actor domain.Actor, op Operation, target Target) Decision {
	return AuthorizeAt(actor, op, target, time.Now())
}

// AuthorizeAt is Authorize with an explicit clock for grant expiry.
func AuthorizeAt(actor domain.Actor, op Operation, target Target, now time.Time) Decision {
	if actor.CompanyID == "" || actor.CompanyID != target.CompanyID {
		return deny(ReasonCrossTenant)
	}
	if !actor.IsActive {
		return deny(ReasonInactive)
	}

	rule, ok := rules[op]
	if !ok {
		return deny(ReasonUnknownOperation)
	}

	roles := EffectiveRoles(actor, target, now)

	switch rule {
	case RuleAnyRole:
		return allow(ScopeAll)

	case RuleManagerScoped:
		if roles.Has(domain.RoleAdmin) || roles.Has(domain.RoleHR) {
			return allow(ScopeAll)
		}
		if roles.Has(domain.RoleManager) {
			return allow(ScopeDirectReports)
		}
		return deny(ReasonRole)

	case RulePrivileged:
		if roles.Has(domain.RoleAdmin) || roles.Has(domain.RoleHR) {
			return allow(ScopeAll)
		}
		if roles.Has(domain.RoleManager) {
			return allow(ScopeDirectReports)
		}
		return deny(ReasonRole)

	case RuleOwner:
		if target.OwnerID != "" && target.OwnerID == actor.ID {
			return allow(ScopeAll)
		}
		return deny(ReasonNotOwner)

	case RuleHROrDirectManager:
		if roles.Has(domain.RoleAdmin) || roles.Has(domain.RoleHR) {
			return allow(ScopeAll)
		}
		if roles.Has(domain.RoleManager) {
			if target.OwnerID != "" && target.OwnerID == actor.ID {
				return allow(ScopeAll)
			}
			return deny(ReasonNotManager)
		}
		return deny(ReasonRole)

	case RuleAdmin:
		if roles.Has(domain.RoleAdmin) {
			return allow(ScopeAll)
		}
		return deny(ReasonRole)
	}

	return deny(ReasonUnknownOperation)
}

type Roles map[domain.Role]struct{}

func (s Roles) Has(r domain.Role) bool {
	_, ok := s[r]
	return ok
}

// EffectiveRoles is the actor's primary role plus every active grant whose
// scope covers the target.
func EffectiveRoles(actor domain.Actor, target Target, now time.Time) Roles {
	roles := Roles{actor.Role: {}}
	for _, g := range actor.Grants {
		if g.CompanyID != "" && g.CompanyID != actor.CompanyID {
			continue
		}
		if !g.ActiveAt(now) || !g.Role.Valid() {
			continue
		}
		if g.Covers(target.Department, target.Team) {
			roles[g.Role] = struct{}{}
		}
	}
	return roles
}
