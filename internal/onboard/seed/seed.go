// Package seed loads a YAML catalog of onboarding tasks, and optionally
// employees, into a company.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
	"github.com/aussiebroadwan/onboard/internal/onboard/service"
	"github.com/aussiebroadwan/onboard/pkg/slogx"
	"gopkg.in/yaml.v3"
)

// CurrentVersion is the catalog format this package reads.
const CurrentVersion = "1"

type Catalog struct {
	Version   string     `yaml:"version"`
	Tasks     []Task     `yaml:"tasks"`
	Employees []Employee `yaml:"employees,omitempty"`
}

type Task struct {
	Title       string          `yaml:"title"`
	Description string          `yaml:"description,omitempty"`
	Type        domain.TaskType `yaml:"type"`
	// Required defaults to true.
	Required *bool `yaml:"required,omitempty"`
	Order    *int  `yaml:"order,omitempty"`
}

type Employee struct {
	EmployeeNumber string                `yaml:"employee_number,omitempty"`
	FirstName      string                `yaml:"first_name"`
	LastName       string                `yaml:"last_name"`
	PersonalEmail  string                `yaml:"personal_email,omitempty"`
	WorkEmail      string                `yaml:"work_email,omitempty"`
	Department     string                `yaml:"department,omitempty"`
	Team           string                `yaml:"team,omitempty"`
	Position       string                `yaml:"position,omitempty"`
	EmploymentType domain.EmploymentType `yaml:"employment_type,omitempty"`
	// StartDate is YYYY-MM-DD.
	StartDate string `yaml:"start_date,omitempty"`
	ManagerID string `yaml:"manager_id,omitempty"`
}

// LoadFile reads and validates a catalog.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load decodes a catalog, rejecting unknown keys.
func Load(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid seed file: %w", err)
	}
	return &c, nil
}

// Validate checks the catalog before anything is written.
func (c *Catalog) Validate() error {
	if c.Version != "" && c.Version != CurrentVersion {
		return fmt.Errorf("unsupported version %q", c.Version)
	}
	seen := map[string]bool{}
	for i, t := range c.Tasks {
		key := strings.ToLower(strings.TrimSpace(t.Title))
		if key == "" {
			return fmt.Errorf("tasks[%d]: title is required", i)
		}
		if seen[key] {
			return fmt.Errorf("tasks[%d]: duplicate title %q", i, t.Title)
		}
		seen[key] = true
		if !t.Type.Valid() {
			return fmt.Errorf("tasks[%d]: unknown type %q", i, t.Type)
		}
	}
	for i, e := range c.Employees {
		if e.StartDate == "" {
			continue
		}
		if _, err := time.Parse(time.DateOnly, e.StartDate); err != nil {
			return fmt.Errorf("employees[%d]: start_date must be YYYY-MM-DD", i)
		}
	}
	return nil
}

// Result counts what Apply wrote and skipped.
type Result struct {
	TasksCreated     int
	TasksSkipped     int
	EmployeesCreated int
	EmployeesSkipped int
}

// Seeder writes catalogs through the services, so seeding obeys the same
// authorization and validation as the API.
type Seeder struct {
	Tasks     *service.TaskService
	Employees *service.EmployeeService
}

// Apply is idempotent: tasks whose title already exists and employees whose
// email is taken are skipped.
func (s *Seeder) Apply(ctx context.Context, actor domain.Actor, c *Catalog) (Result, error) {
	log := slogx.FromContext(ctx)
	var res Result

	existing, err := s.Tasks.List(ctx, actor)
	if err != nil {
		return res, err
	}
	have := make(map[string]bool, len(existing))
	for _, t := range existing {
		have[strings.ToLower(t.Title)] = true
	}

	for _, t := range c.Tasks {
		if have[strings.ToLower(strings.TrimSpace(t.Title))] {
			res.TasksSkipped++
			continue
		}
		_, err := s.Tasks.Create(ctx, actor, service.CreateTaskInput{
			Title:         t.Title,
			Description:   t.Description,
			Type:          t.Type,
			Required:      t.Required,
			OrderSequence: t.Order,
		})
		if err != nil {
			return res, fmt.Errorf("task %q: %w", t.Title, err)
		}
		res.TasksCreated++
	}

	for _, e := range c.Employees {
		in := service.CreateEmployeeInput{
			EmployeeNumber: e.EmployeeNumber,
			FirstName:      e.FirstName,
			LastName:       e.LastName,
			PersonalEmail:  e.PersonalEmail,
			WorkEmail:      e.WorkEmail,
			Department:     e.Department,
			Team:           e.Team,
			Position:       e.Position,
			EmploymentType: e.EmploymentType,
			ManagerID:      e.ManagerID,
		}
		if e.StartDate != "" {
			d, _ := time.Parse(time.DateOnly, e.StartDate)
			in.StartDate = &d
		}

		_, _, err := s.Employees.Create(ctx, actor, in)
		switch {
		case errors.Is(err, domain.ErrConflict):
			log.Debug("seed employee exists", slog.String("email", firstNonEmpty(e.WorkEmail, e.PersonalEmail)))
			res.EmployeesSkipped++
		case err != nil:
			return res, fmt.Errorf("employee %s %s: %w", e.FirstName, e.LastName, err)
		default:
			res.EmployeesCreated++
		}
	}

	log.Info("seed applied",
		slog.Int("tasks_created", res.TasksCreated),
		slog.Int("tasks_skipped", res.TasksSkipped),
		slog.Int("employees_created", res.EmployeesCreated),
		slog.Int("employees_skipped", res.EmployeesSkipped),
	)
	return res, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
