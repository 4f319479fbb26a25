package service

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
	"github.com/aussiebroadwan/onboard/internal/onboard/policy"
	"github.com/aussiebroadwan/onboard/internal/onboard/store"
)

type ProgressService struct {
	Base
}

// ProgressReport is one employee's assignments with their summary. AsOf is
// the instant overdue was derived at.
type ProgressReport struct {
	Employee    domain.EmployeeProfile
	Assignments []domain.TaskAssignment
	Progress    domain.Progress
	AsOf        time.Time
}

// Mine reports on the employee record linked to the caller.
func (s *ProgressService) Mine(ctx context.Context, actor domain.Actor) (ProgressReport, error) {
	if _, err := s.authorize(ctx, actor, policy.OpGetMyProgress, companyTarget(actor.CompanyID)); err != nil {
		return ProgressReport{}, err
	}
	emp, err := s.Store.Employees().GetEmployeeByUserID(ctx, actor.ID)
	if errors.Is(err, store.ErrNotFound) || (err == nil && emp.CompanyID != actor.CompanyID) {
		return ProgressReport{}, domain.NotFound("no employee record is linked to this account")
	}
	if err != nil {
		return ProgressReport{}, translate(err, "employee")
	}
	return s.report(ctx, emp)
}

// ForEmployee reports on any employee the caller may oversee.
func (s *ProgressService) ForEmployee(ctx context.Context, actor domain.Actor, employeeID string) (ProgressReport, error) {
	emp, err := loadEmployee(ctx, s.Store.Employees(), employeeID)
	if err != nil {
		return ProgressReport{}, err
	}
	if _, err := s.authorize(ctx, actor, policy.OpGetEmployeeProgress, employeeTarget(policy.OpGetEmployeeProgress, emp)); err != nil {
		return ProgressReport{}, err
	}
	return s.report(ctx, emp)
}

func (s *ProgressService) report(ctx context.Context, emp domain.EmployeeProfile) (ProgressReport, error) {
	list, err := s.Store.Assignments().ListAssignmentsByEmployee(ctx, emp.ID)
	if err != nil {
		return ProgressReport{}, translate(err, "assignments")
	}
	now := s.now()
	return ProgressReport{
		Employee:    emp,
		Assignments: list,
		Progress:    domain.Summarize(list, now),
		AsOf:        now,
	}, nil
}
