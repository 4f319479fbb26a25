package onboardsdk

import (
	"encoding/json"
	"time"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
	Keys     string `json:"keys"`
}

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// ============================================================================
// Records
// ============================================================================

type Company struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Domain           string    `json:"domain"`
	SubscriptionPlan string    `json:"subscriptionPlan"`
	EmployeeLimit    int       `json:"employeeLimit"`
	CreatedAt        time.Time `json:"createdAt"`
}

type Actor struct {
	ID          string     `json:"id"`
	CompanyID   string     `json:"companyId"`
	Email       string     `json:"email"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"isActive"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

type Employee struct {
	ID                    string     `json:"id"`
	CompanyID             string     `json:"companyId"`
	UserID                string     `json:"userId,omitempty"`
	EmployeeNumber        string     `json:"employeeNumber,omitempty"`
	FirstName             string     `json:"firstName"`
	LastName              string     `json:"lastName"`
	PersonalEmail         string     `json:"personalEmail,omitempty"`
	WorkEmail             string     `json:"workEmail,omitempty"`
	Department            string     `json:"department,omitempty"`
	Team                  string     `json:"team,omitempty"`
	Position              string     `json:"position,omitempty"`
	EmploymentType        string     `json:"employmentType"`
	StartDate             *time.Time `json:"startDate,omitempty"`
	ManagerID             string     `json:"managerId,omitempty"`
	OnboardingStatus      string     `json:"onboardingStatus"`
	InvitationSentAt      *time.Time `json:"invitationSentAt,omitempty"`
	FirstLoginAt          *time.Time `json:"firstLoginAt,omitempty"`
	OnboardingCompletedAt *time.Time `json:"onboardingCompletedAt,omitempty"`
	IsActive              bool       `json:"isActive"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
}

// EmployeeOverview is one getEmployees row: the employee record plus its
// manager's name, assignments and progress.
type EmployeeOverview struct {
	Employee
	ManagerName string       `json:"managerName,omitempty"`
	Assignments []Assignment `json:"assignments"`
	Progress    Progress     `json:"progress"`
}

type Task struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	TaskType      string    `json:"taskType"`
	Required      bool      `json:"required"`
	OrderSequence int       `json:"orderSequence"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Assignment.Status is the effective status, so it may read overdue.
type Assignment struct {
	ID             string          `json:"id"`
	EmployeeID     string          `json:"employeeId"`
	TaskID         string          `json:"taskId"`
	TaskTitle      string          `json:"taskTitle"`
	TaskType       string          `json:"taskType"`
	Required       bool            `json:"required"`
	Status         string          `json:"status"`
	Priority       string          `json:"priority"`
	DueDate        *time.Time      `json:"dueDate,omitempty"`
	AssignedAt     time.Time       `json:"assignedAt"`
	StartedAt      *time.Time      `json:"startedAt,omitempty"`
	CompletedAt    *time.Time      `json:"completedAt,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	CompletionData json.RawMessage `json:"completionData,omitempty"`
	AssignedBy     string          `json:"assignedBy,omitempty"`
}

type Invitation struct {
	ID         string     `json:"id"`
	EmployeeID string     `json:"employeeId"`
	Email      string     `json:"email"`
	Status     string     `json:"status"`
	ExpiresAt  time.Time  `json:"expiresAt"`
	UsedAt     *time.Time `json:"usedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	// Token is only returned by servers running with token echo enabled.
	Token string `json:"token,omitempty"`
}

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

type ProgressReport struct {
	Employee    Employee     `json:"employee"`
	Assignments []Assignment `json:"assignments"`
	Progress    Progress     `json:"progress"`
	AsOf        time.Time    `json:"asOf"`
}

type RoleGrant struct {
	ID         string     `json:"id"`
	ActorID    string     `json:"actorId"`
	Role       string     `json:"role"`
	ScopeType  string     `json:"scopeType"`
	ScopeValue string     `json:"scopeValue,omitempty"`
	ExpiresAt  *time.Time `json:"expiresAt,omitempty"`
	GrantedBy  string     `json:"grantedBy,omitempty"`
	RevokedAt  *time.Time `json:"revokedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// ============================================================================
// Requests
// ============================================================================

type GetEmployeesRequest struct {
	Status          string `json:"status,omitempty"`
	IncludeInactive bool   `json:"includeInactive,omitempty"`
}

type CreateEmployeeRequest struct {
	EmployeeNumber     string     `json:"employeeNumber,omitempty"`
	FirstName          string     `json:"firstName"`
	LastName           string     `json:"lastName"`
	PersonalEmail      string     `json:"personalEmail,omitempty"`
	WorkEmail          string     `json:"workEmail,omitempty"`
	Department         string     `json:"department,omitempty"`
	Team               string     `json:"team,omitempty"`
	Position           string     `json:"position,omitempty"`
	EmploymentType     string     `json:"employmentType,omitempty"`
	StartDate          *time.Time `json:"startDate,omitempty"`
	ManagerID          string     `json:"managerId,omitempty"`
	AssignDefaultTasks *bool      `json:"assignDefaultTasks,omitempty"`
}

type CreateEmployeeResponse struct {
	Employee    Employee     `json:"employee"`
	Assignments []Assignment `json:"assignments"`
}

type EmployeeRequest struct {
	EmployeeID string `json:"employeeId"`
}

type SendInvitationRequest struct {
	EmployeeID string `json:"employeeId"`
	Email      string `json:"email,omitempty"`
}

type TokenRequest struct {
	Token string `json:"token"`
}

type AcceptInvitationRequest struct {
	Token     string `json:"token"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

type AcceptInvitationResponse struct {
	Actor    Actor    `json:"actor"`
	Employee Employee `json:"employee"`
}

type AssignmentRequest struct {
	AssignmentID string `json:"assignmentId"`
}

type CompleteTaskRequest struct {
	AssignmentID   string          `json:"assignmentId"`
	Notes          string          `json:"notes,omitempty"`
	CompletionData json.RawMessage `json:"completionData,omitempty"`
}

type SkipTaskRequest struct {
	AssignmentID string `json:"assignmentId"`
	Notes        string `json:"notes,omitempty"`
}

type CreateTaskRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	TaskType      string `json:"taskType"`
	Required      *bool  `json:"required,omitempty"`
	OrderSequence *int   `json:"orderSequence,omitempty"`
}

type UpdateTaskRequest struct {
	TaskID        string `json:"taskId"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	TaskType      string `json:"taskType"`
	Required      bool   `json:"required"`
	OrderSequence *int   `json:"orderSequence,omitempty"`
	IsActive      bool   `json:"isActive"`
}

type TaskRequest struct {
	TaskID string `json:"taskId"`
}

type AssignTasksRequest struct {
	EmployeeID string     `json:"employeeId"`
	TaskIDs    []string   `json:"taskIds,omitempty"`
	DueDate    *time.Time `json:"dueDate,omitempty"`
	Priority   string     `json:"priority,omitempty"`
}

type GrantRoleRequest struct {
	ActorID    string     `json:"actorId"`
	Role       string     `json:"role"`
	ScopeType  string     `json:"scopeType,omitempty"`
	ScopeValue string     `json:"scopeValue,omitempty"`
	ExpiresAt  *time.Time `json:"expiresAt,omitempty"`
}

type RevokeRoleRequest struct {
	GrantID string `json:"grantId"`
}

type ListRoleGrantsRequest struct {
	ActorID string `json:"actorId,omitempty"`
}

type ProvisionCompany struct {
	Name             string `json:"name"`
	Domain           string `json:"domain"`
	SubscriptionPlan string `json:"subscriptionPlan,omitempty"`
	EmployeeLimit    int    `json:"employeeLimit,omitempty"`
}

type ProvisionAdmin struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

type ProvisionRequest struct {
	Company ProvisionCompany `json:"company"`
	Admin   ProvisionAdmin   `json:"admin"`
}

type ProvisionResponse struct {
	Company Company `json:"company"`
	Admin   Actor   `json:"admin"`
}
