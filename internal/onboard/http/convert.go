package http

import (
	"time"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
	"github.com/aussiebroadwan/onboard/internal/onboard/service"
	"github.com/aussiebroadwan/onboard/pkg/onboardsdk"
)

func toCompany(c domain.Company) onboardsdk.Company {
	return onboardsdk.Company{
		ID:               c.ID,
		Name:             c.Name,
		Domain:           c.Domain,
		SubscriptionPlan: c.SubscriptionPlan,
		EmployeeLimit:    c.EmployeeLimit,
		CreatedAt:        c.CreatedAt,
	}
}

func toActor(a domain.Actor) onboardsdk.Actor {
	return onboardsdk.Actor{
		ID:          a.ID,
		CompanyID:   a.CompanyID,
		Email:       a.Email,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		Role:        string(a.Role),
		IsActive:    a.IsActive,
		LastLoginAt: a.LastLoginAt,
	}
}

func toEmployee(e domain.EmployeeProfile) onboardsdk.Employee {
	return onboardsdk.Employee{
		ID:                    e.ID,
		CompanyID:             e.CompanyID,
		UserID:                e.UserID,
		EmployeeNumber:        e.EmployeeNumber,
		FirstName:             e.FirstName,
		LastName:              e.LastName,
		PersonalEmail:         e.PersonalEmail,
		WorkEmail:             e.WorkEmail,
		Department:            e.Department,
		Team:                  e.Team,
		Position:              e.Position,
		EmploymentType:        string(e.EmploymentType),
		StartDate:             e.StartDate,
		ManagerID:             e.ManagerID,
		OnboardingStatus:      string(e.Status),
		InvitationSentAt:      e.InvitationSentAt,
		FirstLoginAt:          e.FirstLoginAt,
		OnboardingCompletedAt: e.OnboardingCompletedAt,
		IsActive:              e.IsActive,
		CreatedAt:             e.CreatedAt,
		UpdatedAt:             e.UpdatedAt,
	}
}

func toEmployeeOverviews(list []service.EmployeeOverview, now time.Time) []onboardsdk.EmployeeOverview {
	out := make([]onboardsdk.EmployeeOverview, 0, len(list))
	for _, e := range list {
		out = append(out, onboardsdk.EmployeeOverview{
			Employee:    toEmployee(e.EmployeeProfile),
			ManagerName: e.ManagerName,
			Assignments: toAssignments(e.Assignments, now),
			Progress:    toProgress(e.Progress),
		})
	}
	return out
}

func toTask(t domain.OnboardingTask) onboardsdk.Task {
	return onboardsdk.Task{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		TaskType:      string(t.Type),
		Required:      t.Required,
		OrderSequence: t.OrderSequence,
		IsActive:      t.IsActive,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func toTasks(list []domain.OnboardingTask) []onboardsdk.Task {
	out := make([]onboardsdk.Task, 0, len(list))
	for _, t := range list {
		out = append(out, toTask(t))
	}
	return out
}

// toAssignment reports the effective status at now.
func toAssignment(a domain.TaskAssignment, now time.Time) onboardsdk.Assignment {
	return onboardsdk.Assignment{
		ID:             a.ID,
		EmployeeID:     a.EmployeeID,
		TaskID:         a.TaskID,
		TaskTitle:      a.TaskTitle,
		TaskType:       string(a.TaskType),
		Required:       a.Required,
		Status:         string(a.EffectiveStatus(now)),
		Priority:       string(a.Priority),
		DueDate:        a.DueDate,
		AssignedAt:     a.AssignedAt,
		StartedAt:      a.StartedAt,
		CompletedAt:    a.CompletedAt,
		Notes:          a.Notes,
		CompletionData: a.CompletionData,
		AssignedBy:     a.AssignedBy,
	}
}

func toAssignments(list []domain.TaskAssignment, now time.Time) []onboardsdk.Assignment {
	out := make([]onboardsdk.Assignment, 0, len(list))
	for _, a := range list {
		out = append(out, toAssignment(a, now))
	}
	return out
}

func toInvitation(inv domain.Invitation, now time.Time) onboardsdk.Invitation {
	return onboardsdk.Invitation{
		ID:         inv.ID,
		EmployeeID: inv.EmployeeID,
		Email:      inv.Email,
		Status:     inv.Status(now),
		ExpiresAt:  inv.ExpiresAt,
		UsedAt:     inv.UsedAt,
		CreatedAt:  inv.CreatedAt,
	}
}

func toProgress(p domain.Progress) onboardsdk.Progress {
	return onboardsdk.Progress{
		Total:                      p.Total,
		Completed:                  p.Completed,
		Required:                   p.Required,
		CompletedRequired:          p.CompletedRequired,
		Skipped:                    p.Skipped,
		Overdue:                    p.Overdue,
		ProgressPercentage:         p.ProgressPercentage,
		RequiredProgressPercentage: p.RequiredProgressPercentage,
	}
}

func toReport(r service.ProgressReport) onboardsdk.ProgressReport {
	return onboardsdk.ProgressReport{
		Employee:    toEmployee(r.Employee),
		Assignments: toAssignments(r.Assignments, r.AsOf),
		Progress:    toProgress(r.Progress),
		AsOf:        r.AsOf,
	}
}

func toGrant(g domain.RoleAssignment) onboardsdk.RoleGrant {
	return onboardsdk.RoleGrant{
		ID:         g.ID,
		ActorID:    g.ActorID,
		Role:       string(g.Role),
		ScopeType:  string(g.ScopeType),
		ScopeValue: g.ScopeValue,
		ExpiresAt:  g.ExpiresAt,
		GrantedBy:  g.GrantedBy,
		RevokedAt:  g.RevokedAt,
		CreatedAt:  g.CreatedAt,
	}
}

func toGrants(list []domain.RoleAssignment) []onboardsdk.RoleGrant {
	out := make([]onboardsdk.RoleGrant, 0, len(list))
	for _, g := range list {
		out = append(out, toGrant(g))
	}
	return out
}
