package http

import (
	"net/http"

	"homeo-clinic-api/internal/delivery/http/handler"
	"homeo-clinic-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	patientHandler       *handler.PatientHandler
	complaintHandler     *handler.ComplaintHandler
	caseModuleRoutes     []handler.CaseModuleRoute
	prescriptionHandler  *handler.PrescriptionHandler
	followUpHandler      *handler.FollowUpHandler
	investigationHandler *handler.InvestigationHandler
	reportHandler        *handler.ReportHandler
	auditLogHandler      *handler.AuditLogHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	complaintHandler *handler.ComplaintHandler,
	caseModuleRoutes []handler.CaseModuleRoute,
	prescriptionHandler *handler.PrescriptionHandler,
	followUpHandler *handler.FollowUpHandler,
	investigationHandler *handler.InvestigationHandler,
	reportHandler *handler.ReportHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          authHandler,
		patientHandler:       patientHandler,
		complaintHandler:     complaintHandler,
		caseModuleRoutes:     caseModuleRoutes,
		prescriptionHandler:  prescriptionHandler,
		followUpHandler:      followUpHandler,
		investigationHandler: investigationHandler,
		reportHandler:        reportHandler,
		auditLogHandler:      auditLogHandler,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Clinical routes (protected)
	user := api.PathPrefix("/user").Subrouter()
	user.Use(r.authMiddleware.Authenticate)

	// Patients
	user.HandleFunc("/new-patient", r.patientHandler.Create).Methods(http.MethodPost)
	user.HandleFunc("/patients", r.patientHandler.List).Methods(http.MethodGet)
	user.HandleFunc("/patients/{patientId}", r.patientHandler.Get).Methods(http.MethodGet)
	user.HandleFunc("/patients/{patientId}", r.patientHandler.Update).Methods(http.MethodPut)

	// Complaints
	user.HandleFunc("/new-complaint", r.complaintHandler.Create).Methods(http.MethodPost)
	user.HandleFunc("/complaints", r.complaintHandler.List).Methods(http.MethodGet)
	user.HandleFunc("/complaint/{patientId}", r.complaintHandler.ListByPatient).Methods(http.MethodGet)

	// Case modules, one GET/PUT pair per section
	for _, route := range r.caseModuleRoutes {
		user.HandleFunc("/patients/{patientId}/"+route.Path, route.Get).Methods(http.MethodGet)
		user.HandleFunc("/patients/{patientId}/"+route.Path, route.Put).Methods(http.MethodPut)
	}

	// Follow-ups
	user.HandleFunc("/patients/{patientId}/followups", r.followUpHandler.Create).Methods(http.MethodPost)
	user.HandleFunc("/patients/{patientId}/followups", r.followUpHandler.ListByPatient).Methods(http.MethodGet)
	user.HandleFunc("/followups/{id}", r.followUpHandler.Update).Methods(http.MethodPut)
	user.HandleFunc("/followups/{id}", r.followUpHandler.Delete).Methods(http.MethodDelete)

	// Investigations
	user.HandleFunc("/patients/{patientId}/investigations", r.investigationHandler.Create).Methods(http.MethodPost)
	user.HandleFunc("/patients/{patientId}/investigations", r.investigationHandler.ListByPatient).Methods(http.MethodGet)
	user.HandleFunc("/investigations/{id}", r.investigationHandler.Update).Methods(http.MethodPut)
	user.HandleFunc("/investigations/{id}", r.investigationHandler.Delete).Methods(http.MethodDelete)

	// Reports and audit trail
	user.HandleFunc("/reports/overview", r.reportHandler.Overview).Methods(http.MethodGet)
	user.HandleFunc("/audit-logs", r.auditLogHandler.List).Methods(http.MethodGet)

	// Prescriptions (protected)
	prescriptions := api.PathPrefix("/prescriptions").Subrouter()
	prescriptions.Use(r.authMiddleware.Authenticate)
	prescriptions.HandleFunc("", r.prescriptionHandler.Create).Methods(http.MethodPost)
	prescriptions.HandleFunc("/patient/{patientId}", r.prescriptionHandler.ListByPatient).Methods(http.MethodGet)
	prescriptions.HandleFunc("/{id}", r.prescriptionHandler.Update).Methods(http.MethodPut)
	prescriptions.HandleFunc("/{id}", r.prescriptionHandler.Delete).Methods(http.MethodDelete)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
