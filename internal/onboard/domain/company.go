package domain

import "time"

const DefaultSubscriptionPlan = "basic"

// Company is the tenant boundary. Every other record carries its ID.
type Company struct {
	ID               string
	Name             string
	Domain           string
	SubscriptionPlan string
	EmployeeLimit    int // 0 means unlimited
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// HasCapacity reports whether another active employee fits under the limit.
func (c Company) HasCapacity(activeEmployees int) bool {
	return c.EmployeeLimit <= 0 || activeEmployees < c.EmployeeLimit
}
