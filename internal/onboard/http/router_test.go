package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
	"github.com/aussiebroadwan/onboard/internal/onboard/notify"
	"github.com/aussiebroadwan/onboard/internal/onboard/service"
	"github.com/aussiebroadwan/onboard/internal/onboard/store/drivers/sqlite"
	"github.com/aussiebroadwan/onboard/pkg/cryptox"
	"github.com/aussiebroadwan/onboard/pkg/jwtx"
	"github.com/aussiebroadwan/onboard/pkg/onboardsdk"
	"github.com/stretchr/testify/require"
)

const provisionToken = "operator-secret"

type testServer struct {
	url    string
	signer *jwtx.EdDSASigner
	mail   *notify.MemorySender
}

func newTestServer(t *testing.T, requiredScope string) *testServer {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	signer, err := jwtx.NewSignerEdDSA("test", pemKey)
	require.NoError(t, err)
	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddSigner(signer))
	verifier := jwtx.NewVerifierEdDSA(keys, jwtx.VerifyOptions{Issuer: "test-issuer"})

	mail := &notify.MemorySender{}
	base := service.Base{Store: st}
	assignments := &service.AssignmentService{Base: base}

	router := NewRouter(keys, verifier, "test", st, nil)
	router.RequiredScope = requiredScope
	router.Identity = &service.IdentityService{Base: base}
	router.Handlers = &Handlers{
		Employees:      &service.EmployeeService{Base: base, Assignments: assignments},
		Assignments:    assignments,
		Invitations:    &service.InvitationService{Base: base, Sender: mail, ReturnToken: true},
		Tasks:          &service.TaskService{Base: base},
		Progress:       &service.ProgressService{Base: base},
		Roles:          &service.RoleService{Base: base},
		Provisioner:    &service.ProvisionService{Base: base},
		ProvisionToken: provisionToken,
	}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return &testServer{url: srv.URL, signer: signer, mail: mail}
}

func (s *testServer) client(t *testing.T, subject string, scopes ...string) *onboardsdk.Client {
	t.Helper()
	c := onboardsdk.NewClient(s.url)
	if subject == "" {
		return c
	}
	claims := jwtx.NewAccessClaims(subject, scopes, time.Hour, "test-issuer", nil, time.Now())
	token, err := s.signer.Sign(claims)
	require.NoError(t, err)
	return c.WithToken(token)
}

func (s *testServer) provision(t *testing.T, domainName string) *onboardsdk.ProvisionResponse {
	t.Helper()
	out, err := s.client(t, "").Provision(context.Background(), provisionToken, onboardsdk.ProvisionRequest{
		Company: onboardsdk.ProvisionCompany{Name: domainName, Domain: domainName},
		Admin:   onboardsdk.ProvisionAdmin{Email: "admin@" + domainName, FirstName: "Ada"},
	})
	require.NoError(t, err)
	return out
}

func TestHealth(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, "")
	ctx := context.Background()

	live, err := s.client(t, "").Liveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)

	ready, err := s.client(t, "").Readiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Checks.Database)
	require.Equal(t, "ok", ready.Checks.Keys)
}

func TestOnboardingFlow(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, "")
	ctx := context.Background()

	tenant := s.provision(t, "acme.test")
	require.Equal(t, "admin", tenant.Admin.Role)
	admin := s.client(t, tenant.Admin.ID)

	// 1. Build the checklist.
	contract, err := admin.CreateTask(ctx, onboardsdk.CreateTaskRequest{Title: "Sign contract", TaskType: "document"})
	require.NoError(t, err)
	require.True(t, contract.Required)
	optional := false
	lunch, err := admin.CreateTask(ctx, onboardsdk.CreateTaskRequest{Title: "Team lunch", TaskType: "meeting", Required: &optional})
	require.NoError(t, err)

	tasks, err := admin.GetAllTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	// 2. Hire with the default checklist.
	created, err := admin.CreateEmployee(ctx, onboardsdk.CreateEmployeeRequest{
		FirstName: "Grace", LastName: "Hopper", WorkEmail: "grace@acme.test",
	})
	require.NoError(t, err)
	require.Equal(t, "not_started", created.Employee.OnboardingStatus)
	require.Len(t, created.Assignments, 2)

	// 3. Invite and accept.
	inv, err := admin.SendInvitation(ctx, onboardsdk.SendInvitationRequest{EmployeeID: created.Employee.ID})
	require.NoError(t, err)
	require.Equal(t, "issued", inv.Status)
	require.NotEmpty(t, inv.Token)
	require.Len(t, s.mail.Sent(), 1)

	anon := s.client(t, "")
	checked, err := anon.ValidateInvitation(ctx, inv.Token)
	require.NoError(t, err)
	require.Equal(t, inv.ID, checked.ID)

	acc, err := anon.AcceptInvitation(ctx, onboardsdk.AcceptInvitationRequest{Token: inv.Token})
	require.NoError(t, err)
	require.Equal(t, "employee", acc.Actor.Role)
	require.Equal(t, "in_progress", acc.Employee.OnboardingStatus)

	_, err = anon.AcceptInvitation(ctx, onboardsdk.AcceptInvitationRequest{Token: inv.Token})
	require.True(t, onboardsdk.IsCode(err, onboardsdk.CodeAlreadyUsed), "got %v", err)

	// 4. The new hire works through the checklist.
	grace := s.client(t, acc.Actor.ID)
	report, err := grace.GetMyProgress(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, report.Progress.Total)

	var contractAssignment, lunchAssignment string
	for _, a := range report.Assignments {
		switch a.TaskID {
		case contract.ID:
			contractAssignment = a.ID
		case lunch.ID:
			lunchAssignment = a.ID
		}
	}

	_, err = grace.SkipTask(ctx, onboardsdk.SkipTaskRequest{AssignmentID: lunchAssignment})
	require.True(t, onboardsdk.IsCode(err, onboardsdk.CodeForbidden), "got %v", err)
	_, err = admin.SkipTask(ctx, onboardsdk.SkipTaskRequest{AssignmentID: contractAssignment})
	require.True(t, onboardsdk.IsCode(err, onboardsdk.CodeInvalidTransition), "got %v", err)

	skipped, err := admin.SkipTask(ctx, onboardsdk.SkipTaskRequest{AssignmentID: lunchAssignment})
	require.NoError(t, err)
	require.Equal(t, "skipped", skipped.Status)

	done, err := grace.CompleteTask(ctx, onboardsdk.CompleteTaskRequest{
		AssignmentID:   contractAssignment,
		CompletionData: []byte(`{"signed":true}`),
	})
	require.NoError(t, err)
	require.Equal(t, "completed", done.Status)

	// 5. HR sees the finished onboarding.
	report, err = admin.GetEmployeeProgress(ctx, created.Employee.ID)
	require.NoError(t, err)
	require.Equal(t, "completed", report.Employee.OnboardingStatus)
	require.InDelta(t, 100.0, report.Progress.RequiredProgressPercentage, 0.001)

	roster, err := admin.GetEmployees(ctx, onboardsdk.GetEmployeesRequest{})
	require.NoError(t, err)
	require.Len(t, roster, 1)
	require.Equal(t, created.Employee.ID, roster[0].ID)
	require.Equal(t, "completed", roster[0].OnboardingStatus)
	require.Len(t, roster[0].Assignments, 2)
	require.Equal(t, 1, roster[0].Progress.CompletedRequired)
	require.Equal(t, 1, roster[0].Progress.Skipped)

	// The employee cannot read the roster.
	_, err = grace.GetEmployees(ctx, onboardsdk.GetEmployeesRequest{})
	require.True(t, onboardsdk.IsCode(err, onboardsdk.CodeForbidden), "got %v", err)
}

func TestTenantIsolation(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, "")
	ctx := context.Background()

	acme := s.client(t, s.provision(t, "acme.test").Admin.ID)
	globex := s.client(t, s.provision(t, "globex.test").Admin.ID)

	created, err := acme.CreateEmployee(ctx, onboardsdk.CreateEmployeeRequest{
		FirstName: "Grace", LastName: "Hopper", WorkEmail: "grace@acme.test",
	})
	require.NoError(t, err)

	_, err = globex.GetEmployeeProgress(ctx, created.Employee.ID)
	require.True(t, onboardsdk.IsCode(err, onboardsdk.CodeNotFound), "got %v", err)

	list, err := globex.GetEmployees(ctx, onboardsdk.GetEmployeesRequest{})
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestAuthentication(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, "onboard")
	ctx := context.Background()
	tenant := s.provision(t, "acme.test")

	t.Run("missing token", func(t *testing.T) {
		_, err := s.client(t, "").GetAllTasks(ctx)
		require.True(t, onboardsdk.IsCode(err, onboardsdk.CodeUnauthorized), "got %v", err)
	})

	t.Run("missing scope", func(t *testing.T) {
		_, err := s.client(t, tenant.Admin.ID).GetAllTasks(ctx)
		require.True(t, onboardsdk.IsCode(err, onboardsdk.CodeInsufficientScope), "got %v", err)
	})

	t.Run("unknown subject", func(t *testing.T) {
		_, err := s.client(t, "ghost", "onboard").GetAllTasks(ctx)
		require.True(t, onboardsdk.IsCode(err, onboardsdk.CodeForbidden), "got %v", err)
	})

	t.Run("scoped token", func(t *testing.T) {
		_, err := s.client(t, tenant.Admin.ID, "onboard").GetAllTasks(ctx)
		require.NoError(t, err)
	})

	t.Run("wrong provision token", func(t *testing.T) {
		_, err := s.client(t, "").Provision(ctx, "nope", onboardsdk.ProvisionRequest{})
		require.True(t, onboardsdk.IsCode(err, onboardsdk.CodeUnauthorized), "got %v", err)
	})
}

func TestMalformedBody(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, "")

	resp, err := http.Post(s.url+"/v1/onboarding/validateInvitation", "application/json", strings.NewReader(`{"token":`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp2, err := http.Get(s.url + "/v1/onboarding/getAllTasks")
	require.NoError(t, err)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusMethodNotAllowed, resp2.StatusCode)
}

func TestStatusFor(t *testing.T) {
	t.Parallel()
	cases := map[string]int{
		"validation_error":     http.StatusBadRequest,
		"forbidden":            http.StatusForbidden,
		"not_found":            http.StatusNotFound,
		"conflict":             http.StatusConflict,
		"duplicate_assignment": http.StatusConflict,
		"invalid_transition":   http.StatusConflict,
		"already_used":         http.StatusConflict,
		"expired":              http.StatusGone,
		"server_error":         http.StatusInternalServerError,
	}
	for kind, want := range cases {
		require.Equal(t, want, statusFor(domain.Kind(kind)), kind)
	}
}
