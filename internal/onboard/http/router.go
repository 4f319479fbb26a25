package http

import (
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/aussiebroadwan/onboard/internal/onboard/service"
	"github.com/aussiebroadwan/onboard/internal/onboard/store"
	"github.com/aussiebroadwan/onboard/pkg/httpx"
	"github.com/aussiebroadwan/onboard/pkg/jwtx"
	"github.com/aussiebroadwan/onboard/pkg/slogx"

	_ "github.com/aussiebroadwan/onboard/api/onboard" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

const rpcPrefix = "/v1/onboarding/"

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	Handlers *Handlers
	Identity *service.IdentityService

	// RequiredScope, when set, must be present on every bearer token.
	RequiredScope string
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		otelhttp.NewMiddleware("onboard",
			otelhttp.WithSpanNameFormatter(func(_ string, req *http.Request) string {
				return req.Method + " " + req.URL.Path
			}),
		),
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerEmployees()
	r.registerInvitations()
	r.registerAssignments()
	r.registerTasks()
	r.registerRoles()
	r.registerProvision()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Onboard API
//	@version		0.1.0
//	@description	Multi-tenant employee onboarding: employees, task checklists, invitations and progress.
//	@description
//	@description				Every operation is a POST to /v1/onboarding/{operation} with a JSON body.
//	@description				Bearer tokens are EdDSA JWTs verified against the configured JWKS.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/onboard
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured wraps an RPC that needs a resolved actor.
func (r *Router) secured(h http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
	var scopes []string
	if r.RequiredScope != "" {
		scopes = append(scopes, r.RequiredScope)
	}
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier), // verify JWT (iss/aud/exp)
		httpx.RequireAnyScope(scopes...),
		httpx.RateLimitByUser(limit),
		ActorMiddleware(r.Identity),
	)
}

func (r *Router) rpc(op string, h http.Handler) {
	r.Mux.Handle("POST "+rpcPrefix+op, h)
}

func (r *Router) registerEmployees() {
	h := r.Handlers
	r.rpc("getEmployees", r.secured(h.GetEmployees, httpx.LenientLimit))
	r.rpc("createEmployee", r.secured(h.CreateEmployee, httpx.ModerateLimit))
	r.rpc("deactivateEmployee", r.secured(h.DeactivateEmployee, httpx.ModerateLimit))
	r.rpc("getMyProgress", r.secured(h.GetMyProgress, httpx.LenientLimit))
	r.rpc("getEmployeeProgress", r.secured(h.GetEmployeeProgress, httpx.LenientLimit))
}

func (r *Router) registerInvitations() {
	h := r.Handlers
	r.rpc("sendInvitation", r.secured(h.SendInvitation, httpx.ModerateLimit))

	// Token holders are anonymous, so these are limited per IP.
	r.rpc("validateInvitation", httpx.Chain(http.HandlerFunc(h.ValidateInvitation),
		httpx.RateLimitByIP(httpx.StrictLimit),
	))
	r.rpc("acceptInvitation", httpx.Chain(http.HandlerFunc(h.AcceptInvitation),
		httpx.RateLimitByIP(httpx.StrictLimit),
	))
}

func (r *Router) registerAssignments() {
	h := r.Handlers
	r.rpc("startTask", r.secured(h.StartTask, httpx.ModerateLimit))
	r.rpc("completeTask", r.secured(h.CompleteTask, httpx.ModerateLimit))
	r.rpc("skipTask", r.secured(h.SkipTask, httpx.ModerateLimit))
	r.rpc("assignTasksToEmployee", r.secured(h.AssignTasksToEmployee, httpx.ModerateLimit))
}

func (r *Router) registerTasks() {
	h := r.Handlers
	r.rpc("getAllTasks", r.secured(h.GetAllTasks, httpx.LenientLimit))
	r.rpc("createTask", r.secured(h.CreateTask, httpx.ModerateLimit))
	r.rpc("updateTask", r.secured(h.UpdateTask, httpx.ModerateLimit))
	r.rpc("deleteTask", r.secured(h.DeleteTask, httpx.ModerateLimit))
}

func (r *Router) registerRoles() {
	h := r.Handlers
	r.rpc("grantRole", r.secured(h.GrantRole, httpx.ModerateLimit))
	r.rpc("revokeRole", r.secured(h.RevokeRole, httpx.ModerateLimit))
	r.rpc("listRoleGrants", r.secured(h.ListRoleGrants, httpx.LenientLimit))
}

func (r *Router) registerProvision() {
	// Without an operator token the route does not exist.
	if r.Handlers.ProvisionToken == "" {
		return
	}
	r.rpc("provision", httpx.Chain(http.HandlerFunc(r.Handlers.Provision),
		httpx.RateLimitByIP(httpx.StrictLimit),
	))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
