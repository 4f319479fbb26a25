package onboardsdk

import "context"

// ============================================================================
// Public operations
// ============================================================================

// Provision creates a company and its first admin. token is the server's
// provisioning secret.
func (c *Client) Provision(ctx context.Context, token string, req ProvisionRequest) (*ProvisionResponse, error) {
	var out ProvisionResponse
	err := c.call(ctx, "provision", req, &out, map[string]string{ProvisionTokenHeader: token})
	return &out, err
}

func (c *Client) ValidateInvitation(ctx context.Context, token string) (*Invitation, error) {
	var out Invitation
	return &out, c.call(ctx, "validateInvitation", TokenRequest{Token: token}, &out, nil)
}

func (c *Client) AcceptInvitation(ctx context.Context, req AcceptInvitationRequest) (*AcceptInvitationResponse, error) {
	var out AcceptInvitationResponse
	return &out, c.call(ctx, "acceptInvitation", req, &out, nil)
}

// ============================================================================
// Employees
// ============================================================================

// GetEmployees lists the roster newest first.
func (c *Client) GetEmployees(ctx context.Context, req GetEmployeesRequest) ([]EmployeeOverview, error) {
	var out []EmployeeOverview
	err := c.call(ctx, "getEmployees", req, &out, nil)
	return out, err
}

func (c *Client) CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (*CreateEmployeeResponse, error) {
	var out CreateEmployeeResponse
	return &out, c.call(ctx, "createEmployee", req, &out, nil)
}

func (c *Client) DeactivateEmployee(ctx context.Context, employeeID string) (*Employee, error) {
	var out Employee
	return &out, c.call(ctx, "deactivateEmployee", EmployeeRequest{EmployeeID: employeeID}, &out, nil)
}

func (c *Client) SendInvitation(ctx context.Context, req SendInvitationRequest) (*Invitation, error) {
	var out Invitation
	return &out, c.call(ctx, "sendInvitation", req, &out, nil)
}

// ============================================================================
// Progress
// ============================================================================

func (c *Client) GetMyProgress(ctx context.Context) (*ProgressReport, error) {
	var out ProgressReport
	return &out, c.call(ctx, "getMyProgress", nil, &out, nil)
}

func (c *Client) GetEmployeeProgress(ctx context.Context, employeeID string) (*ProgressReport, error) {
	var out ProgressReport
	return &out, c.call(ctx, "getEmployeeProgress", EmployeeRequest{EmployeeID: employeeID}, &out, nil)
}

// ============================================================================
// Assignments
// ============================================================================

func (c *Client) StartTask(ctx context.Context, assignmentID string) (*Assignment, error) {
	var out Assignment
	return &out, c.call(ctx, "startTask", AssignmentRequest{AssignmentID: assignmentID}, &out, nil)
}

func (c *Client) CompleteTask(ctx context.Context, req CompleteTaskRequest) (*Assignment, error) {
	var out Assignment
	return &out, c.call(ctx, "completeTask", req, &out, nil)
}

func (c *Client) SkipTask(ctx context.Context, req SkipTaskRequest) (*Assignment, error) {
	var out Assignment
	return &out, c.call(ctx, "skipTask", req, &out, nil)
}

func (c *Client) AssignTasksToEmployee(ctx context.Context, req AssignTasksRequest) ([]Assignment, error) {
	var out []Assignment
	err := c.call(ctx, "assignTasksToEmployee", req, &out, nil)
	return out, err
}

// ============================================================================
// Tasks
// ============================================================================

func (c *Client) GetAllTasks(ctx context.Context) ([]Task, error) {
	var out []Task
	err := c.call(ctx, "getAllTasks", nil, &out, nil)
	return out, err
}

func (c *Client) CreateTask(ctx context.Context, req CreateTaskRequest) (*Task, error) {
	var out Task
	return &out, c.call(ctx, "createTask", req, &out, nil)
}

func (c *Client) UpdateTask(ctx context.Context, req UpdateTaskRequest) (*Task, error) {
	var out Task
	return &out, c.call(ctx, "updateTask", req, &out, nil)
}

func (c *Client) DeleteTask(ctx context.Context, taskID string) (*Task, error) {
	var out Task
	return &out, c.call(ctx, "deleteTask", TaskRequest{TaskID: taskID}, &out, nil)
}

// ============================================================================
// Role grants
// ============================================================================

func (c *Client) GrantRole(ctx context.Context, req GrantRoleRequest) (*RoleGrant, error) {
	var out RoleGrant
	return &out, c.call(ctx, "grantRole", req, &out, nil)
}

func (c *Client) RevokeRole(ctx context.Context, grantID string) (*RoleGrant, error) {
	var out RoleGrant
	return &out, c.call(ctx, "revokeRole", RevokeRoleRequest{GrantID: grantID}, &out, nil)
}

func (c *Client) ListRoleGrants(ctx context.Context, actorID string) ([]RoleGrant, error) {
	var out []RoleGrant
	err := c.call(ctx, "listRoleGrants", ListRoleGrantsRequest{ActorID: actorID}, &out, nil)
	return out, err
}
