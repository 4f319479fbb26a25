package domain

import "time"

// Progress aggregates one employee's assignments.
type Progress struct {
	Total                      int     `json:"total"`
	Completed                  int     `json:"completed"`
	Required                   int     `json:"required"`
	CompletedRequired          int     `json:"completedRequired"`
	Skipped                    int     `json:"skipped"`
	Overdue                    int     `json:"overdue"`
	ProgressPercentage         float64 `json:"progressPercentage"`
	RequiredProgressPercentage float64 `json:"requiredProgressPercentage"`
}

// Summarize counts assignments. The result does not depend on input order.
func Summarize(assignments []TaskAssignment, now time.Time) Progress {
	var p Progress
	for _, a := range assignments {
		p.Total++
		if a.Required {
			p.Required++
		}
		switch a.Status {
		case AssignmentCompleted:
			p.Completed++
			if a.Required {
				p.CompletedRequired++
			}
		case AssignmentSkipped:
			p.Skipped++
		}
		if a.EffectiveStatus(now) == AssignmentOverdue {
			p.Overdue++
		}
	}
	p.ProgressPercentage = percent(p.Completed, p.Total)
	p.RequiredProgressPercentage = percent(p.CompletedRequired, p.Required)
	return p
}

// RequirementsMet is the completion gate. It holds vacuously when nothing is
// required.
func RequirementsMet(assignments []TaskAssignment) bool {
	for _, a := range assignments {
		if a.Required && a.Status != AssignmentCompleted {
			return false
		}
	}
	return true
}

func percent(n, d int) float64 {
	if d <= 0 {
		return 0
	}
	p := float64(n) / float64(d) * 100
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}
