package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
	"github.com/aussiebroadwan/onboard/internal/onboard/policy"
	"github.com/aussiebroadwan/onboard/internal/onboard/store"
	"github.com/aussiebroadwan/onboard/pkg/slogx"
)

type EmployeeService struct {
	Base
	Assignments *AssignmentService
}

type ListEmployeesInput struct {
	Status          domain.OnboardingStatus
	IncludeInactive bool
}

// EmployeeOverview is one roster row: the record, its manager's name and its
// checklist with progress.
type EmployeeOverview struct {
	domain.EmployeeProfile
	ManagerName string
	Assignments []domain.TaskAssignment
	Progress    domain.Progress
}

// List returns the company's employees newest first, each with its
// assignments. Managers without a wider grant only see their direct reports.
func (s *EmployeeService) List(ctx context.Context, actor domain.Actor, in ListEmployeesInput) ([]EmployeeOverview, error) {
	d, err := s.authorize(ctx, actor, policy.OpGetEmployees, companyTarget(actor.CompanyID))
	if err != nil {
		return nil, err
	}
	if in.Status != "" && !in.Status.Valid() {
		return nil, domain.Validation("unknown onboarding status %q", in.Status)
	}

	f := store.EmployeeFilter{
		CompanyID:       actor.CompanyID,
		Status:          in.Status,
		IncludeInactive: in.IncludeInactive,
	}
	if d.Scope == policy.ScopeDirectReports {
		f.ManagerID = actor.ID
	}

	employees, err := s.Store.Employees().ListEmployees(ctx, f)
	if err != nil {
		return nil, translate(err, "employees")
	}
	if len(employees) == 0 {
		return nil, nil
	}

	all, err := s.Store.Assignments().ListAssignmentsByCompany(ctx, actor.CompanyID)
	if err != nil {
		return nil, translate(err, "assignments")
	}
	byEmployee := make(map[string][]domain.TaskAssignment)
	for _, a := range all {
		byEmployee[a.EmployeeID] = append(byEmployee[a.EmployeeID], a)
	}

	now := s.now()
	managers := make(map[string]string)
	out := make([]EmployeeOverview, 0, len(employees))
	for _, e := range employees {
		assignments := byEmployee[e.ID]
		out = append(out, EmployeeOverview{
			EmployeeProfile: e,
			ManagerName:     s.managerName(ctx, managers, e),
			Assignments:     assignments,
			Progress:        domain.Summarize(assignments, now),
		})
	}
	return out, nil
}

// managerName resolves e's manager through cache. A manager that cannot be
// read leaves the name empty.
func (s *EmployeeService) managerName(ctx context.Context, cache map[string]string, e domain.EmployeeProfile) string {
	if e.ManagerID == "" {
		return ""
	}
	if name, ok := cache[e.ManagerID]; ok {
		return name
	}
	name := ""
	if m, err := s.Store.Actors().GetActorByID(ctx, e.ManagerID); err == nil && m.CompanyID == e.CompanyID {
		name = m.FullName()
	} else if err != nil {
		slogx.FromContext(ctx).Debug("manager lookup failed",
			slog.String("manager_id", e.ManagerID),
			slog.Any("error", err),
		)
	}
	cache[e.ManagerID] = name
	return name
}

type CreateEmployeeInput struct {
	EmployeeNumber string
	FirstName      string
	LastName       string
	PersonalEmail  string
	WorkEmail      string
	Department     string
	Team           string
	Position       string
	EmploymentType domain.EmploymentType
	StartDate      *time.Time
	ManagerID      string

	// AssignDefaultTasks assigns every active task when nil or true.
	AssignDefaultTasks *bool
}

func (in CreateEmployeeInput) profile() domain.EmployeeProfile {
	return domain.EmployeeProfile{
		EmployeeNumber: strings.TrimSpace(in.EmployeeNumber),
		FirstName:      strings.TrimSpace(in.FirstName),
		LastName:       strings.TrimSpace(in.LastName),
		PersonalEmail:  strings.TrimSpace(in.PersonalEmail),
		WorkEmail:      strings.TrimSpace(in.WorkEmail),
		Department:     strings.TrimSpace(in.Department),
		Team:           strings.TrimSpace(in.Team),
		Position:       strings.TrimSpace(in.Position),
		EmploymentType: in.EmploymentType,
		StartDate:      in.StartDate,
		ManagerID:      in.ManagerID,
	}
}

// Create records a new hire in not_started and, by default, assigns every
// active task. The employee and its assignments are written in one
// transaction.
func (s *EmployeeService) Create(ctx context.Context, actor domain.Actor, in CreateEmployeeInput) (domain.EmployeeProfile, []domain.TaskAssignment, error) {
	log := slogx.FromContext(ctx)

	// 1. Authorize against the department and team the hire joins.
	emp := in.profile()
	target := policy.Target{CompanyID: actor.CompanyID, Department: emp.Department, Team: emp.Team}
	d, err := s.authorize(ctx, actor, policy.OpCreateEmployee, target)
	if err != nil {
		return domain.EmployeeProfile{}, nil, err
	}

	// 2. Validate fields.
	if err := emp.Validate(); err != nil {
		return domain.EmployeeProfile{}, nil, err
	}
	if emp.EmploymentType == "" {
		emp.EmploymentType = domain.EmploymentFullTime
	}

	// 3. Managers creating hires without naming a manager become the manager.
	if emp.ManagerID == "" && d.Scope == policy.ScopeDirectReports {
		emp.ManagerID = actor.ID
	}
	if emp.ManagerID != "" {
		mgr, err := s.Store.Actors().GetActorByID(ctx, emp.ManagerID)
		if err != nil || mgr.CompanyID != actor.CompanyID {
			return domain.EmployeeProfile{}, nil, domain.Validation("manager %s not found", emp.ManagerID)
		}
	}

	now := s.now()
	emp.ID = s.id()
	emp.CompanyID = actor.CompanyID
	emp.CreatedBy = actor.ID
	emp.Status = domain.StatusNotStarted
	emp.IsActive = true
	emp.CreatedAt = now
	emp.UpdatedAt = now

	// 4. Write the employee and default assignments together. The company row
	// lock serializes the capacity check.
	var assignments []domain.TaskAssignment
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		co, err := tx.Companies().GetCompanyForUpdate(ctx, actor.CompanyID)
		if err != nil {
			return translate(err, "company")
		}
		count, err := tx.Employees().CountActiveEmployees(ctx, co.ID)
		if err != nil {
			return translate(err, "employees")
		}
		if !co.HasCapacity(count) {
			return domain.Conflict("company has reached its limit of %d employees", co.EmployeeLimit)
		}

		if err := tx.Employees().CreateEmployee(ctx, emp); err != nil {
			return translate(err, "an employee with this email")
		}

		if in.AssignDefaultTasks != nil && !*in.AssignDefaultTasks {
			return nil
		}
		tasks, err := tx.Tasks().ListActiveTasks(ctx, co.ID)
		if err != nil {
			return translate(err, "tasks")
		}
		assignments, err = s.Assignments.assign(ctx, tx, emp, tasks, actor.ID, "", nil, now)
		return err
	})
	if err != nil {
		return domain.EmployeeProfile{}, nil, err
	}

	log.Info("employee created",
		slog.String("employee_id", emp.ID),
		slog.String("created_by", actor.ID),
		slog.Int("assignments", len(assignments)),
	)
	return emp, assignments, nil
}

// Deactivate marks the employee inactive. Records are never deleted and
// deactivating twice is a no-op. Only is_active changes, so onboarding state
// written concurrently survives.
func (s *EmployeeService) Deactivate(ctx context.Context, actor domain.Actor, employeeID string) (domain.EmployeeProfile, error) {
	emp, err := loadEmployee(ctx, s.Store.Employees(), employeeID)
	if err != nil {
		return emp, err
	}
	if _, err := s.authorize(ctx, actor, policy.OpDeactivateEmployee, employeeTarget(policy.OpDeactivateEmployee, emp)); err != nil {
		return domain.EmployeeProfile{}, err
	}

	changed := false
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		emp, err = lockEmployee(ctx, tx, employeeID)
		if err != nil || !emp.IsActive {
			return err
		}
		now := s.now()
		if err := tx.Employees().SetEmployeeActive(ctx, emp.ID, false, now); err != nil {
			return translate(err, "employee")
		}
		emp.IsActive = false
		emp.UpdatedAt = now
		changed = true
		return nil
	})
	if err != nil {
		return domain.EmployeeProfile{}, err
	}

	if changed {
		slogx.FromContext(ctx).Info("employee deactivated",
			slog.String("employee_id", emp.ID),
			slog.String("deactivated_by", actor.ID),
		)
	}
	return emp, nil
}
