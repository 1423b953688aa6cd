package routes

import (
	"net/http"

	"github.com/dento-health/dento-portal/backend/internal/api/handlers"
	"github.com/dento-health/dento-portal/backend/internal/api/middleware"
	"github.com/dento-health/dento-portal/backend/internal/application/services"
	"github.com/dento-health/dento-portal/backend/internal/domain/entities"
	"github.com/dento-health/dento-portal/backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	authHandler        *handlers.AuthHandler
	userHandler        *handlers.UserHandler
	clinicHandler      *handlers.ClinicHandler
	doctorHandler      *handlers.DoctorHandler
	patientHandler     *handlers.PatientHandler
	appointmentHandler *handlers.AppointmentHandler
	treatmentHandler   *handlers.TreatmentHandler
	reportHandler      *handlers.ReportHandler
	diagnosisHandler   *handlers.DiagnosisHandler

	authService     *services.AuthService
	sessionCookie   string
	cacheMiddleware *middleware.CacheMiddleware
	metrics         *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	clinicHandler *handlers.ClinicHandler,
	doctorHandler *handlers.DoctorHandler,
	patientHandler *handlers.PatientHandler,
	appointmentHandler *handlers.AppointmentHandler,
	treatmentHandler *handlers.TreatmentHandler,
	reportHandler *handlers.ReportHandler,
	diagnosisHandler *handlers.DiagnosisHandler,
	authService *services.AuthService,
	sessionCookie string,
	cacheMiddleware *middleware.CacheMiddleware,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:                http.NewServeMux(),
		authHandler:        authHandler,
		userHandler:        userHandler,
		clinicHandler:      clinicHandler,
		doctorHandler:      doctorHandler,
		patientHandler:     patientHandler,
		appointmentHandler: appointmentHandler,
		treatmentHandler:   treatmentHandler,
		reportHandler:      reportHandler,
		diagnosisHandler:   diagnosisHandler,
		authService:        authService,
		sessionCookie:      sessionCookie,
		cacheMiddleware:    cacheMiddleware,
		metrics:            metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	requireAuth := middleware.RequireAuth
	staffOnly := middleware.RequireUserType(entities.UserTypeDoctor, entities.UserTypeStudent, entities.UserTypeAdmin)
	adminOnly := middleware.RequireUserType(entities.UserTypeAdmin)

	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Auth endpoints
	r.mux.HandleFunc("POST /api/auth/register", r.authHandler.Register)
	r.mux.HandleFunc("POST /api/auth/login", r.authHandler.Login)
	r.mux.HandleFunc("POST /api/auth/logout", r.authHandler.Logout)
	r.mux.HandleFunc("GET /api/auth/me", requireAuth(r.authHandler.Me))

	// User administration endpoints
	r.mux.HandleFunc("GET /api/users", adminOnly(r.userHandler.ListUsers))
	r.mux.HandleFunc("GET /api/users/{id}", requireAuth(r.userHandler.GetUser))
	r.mux.HandleFunc("PUT /api/users/{id}", adminOnly(r.userHandler.UpdateUser))
	r.mux.HandleFunc("DELETE /api/users/{id}", adminOnly(r.userHandler.DeleteUser))

	// Clinic endpoints
	r.mux.HandleFunc("GET /api/clinics", r.clinicHandler.ListClinics)
	r.mux.HandleFunc("GET /api/clinics/{id}", r.clinicHandler.GetClinic)
	r.mux.HandleFunc("POST /api/clinics", adminOnly(r.clinicHandler.CreateClinic))
	r.mux.HandleFunc("PUT /api/clinics/{id}", adminOnly(r.clinicHandler.UpdateClinic))
	r.mux.HandleFunc("DELETE /api/clinics/{id}", adminOnly(r.clinicHandler.DeleteClinic))

	// Doctor endpoints
	r.mux.HandleFunc("GET /api/doctors", r.doctorHandler.ListDoctors)
	r.mux.HandleFunc("GET /api/doctors/search", r.doctorHandler.SearchDoctors)
	r.mux.HandleFunc("GET /api/doctors/{id}", r.doctorHandler.GetDoctor)
	r.mux.HandleFunc("POST /api/doctors", adminOnly(r.doctorHandler.CreateDoctor))
	r.mux.HandleFunc("PUT /api/doctors/{id}", adminOnly(r.doctorHandler.UpdateDoctor))
	r.mux.HandleFunc("DELETE /api/doctors/{id}", adminOnly(r.doctorHandler.DeleteDoctor))

	// Patient endpoints
	r.mux.HandleFunc("GET /api/patients", staffOnly(r.patientHandler.ListPatients))
	r.mux.HandleFunc("GET /api/patients/{id}", requireAuth(r.patientHandler.GetPatient))
	r.mux.HandleFunc("POST /api/patients", staffOnly(r.patientHandler.CreatePatient))
	r.mux.HandleFunc("PUT /api/patients/{id}", staffOnly(r.patientHandler.UpdatePatient))
	r.mux.HandleFunc("DELETE /api/patients/{id}", staffOnly(r.patientHandler.DeletePatient))

	// Appointment endpoints
	r.mux.HandleFunc("GET /api/appointments", requireAuth(r.appointmentHandler.ListAppointments))
	r.mux.HandleFunc("GET /api/appointments/{id}", requireAuth(r.appointmentHandler.GetAppointment))
	r.mux.HandleFunc("POST /api/appointments", requireAuth(r.appointmentHandler.BookAppointment))
	r.mux.HandleFunc("PUT /api/appointments/{id}", staffOnly(r.appointmentHandler.UpdateAppointment))
	r.mux.HandleFunc("PUT /api/appointments/{id}/reschedule", requireAuth(r.appointmentHandler.RescheduleAppointment))
	r.mux.HandleFunc("POST /api/appointments/{id}/cancel", requireAuth(r.appointmentHandler.CancelAppointment))
	r.mux.HandleFunc("DELETE /api/appointments/{id}", staffOnly(r.appointmentHandler.DeleteAppointment))

	// Treatment endpoints
	r.mux.HandleFunc("GET /api/patients/{id}/treatments", requireAuth(r.treatmentHandler.ListTreatments))
	r.mux.HandleFunc("POST /api/treatments", staffOnly(r.treatmentHandler.CreateTreatment))
	r.mux.HandleFunc("PUT /api/treatments/{id}", staffOnly(r.treatmentHandler.UpdateTreatment))
	r.mux.HandleFunc("DELETE /api/treatments/{id}", staffOnly(r.treatmentHandler.DeleteTreatment))

	// Treatment plan endpoints
	r.mux.HandleFunc("GET /api/patients/{id}/treatment-plans", requireAuth(r.treatmentHandler.ListTreatmentPlans))
	r.mux.HandleFunc("POST /api/treatment-plans", staffOnly(r.treatmentHandler.CreateTreatmentPlan))
	r.mux.HandleFunc("PUT /api/treatment-plans/{id}", staffOnly(r.treatmentHandler.UpdateTreatmentPlan))
	r.mux.HandleFunc("DELETE /api/treatment-plans/{id}", staffOnly(r.treatmentHandler.DeleteTreatmentPlan))

	// Report endpoints
	r.mux.HandleFunc("GET /api/reports", staffOnly(r.reportHandler.ListReports))
	r.mux.HandleFunc("GET /api/reports/{id}", requireAuth(r.reportHandler.GetReport))
	r.mux.HandleFunc("POST /api/reports", staffOnly(r.reportHandler.CreateReport))
	r.mux.HandleFunc("PUT /api/reports/{id}", staffOnly(r.reportHandler.UpdateReport))
	r.mux.HandleFunc("DELETE /api/reports/{id}", staffOnly(r.reportHandler.DeleteReport))

	// AI diagnosis endpoint. Anonymous access is intentional: visitors
	// run the symptom checker before creating an account.
	r.mux.HandleFunc("POST /api/ai/diagnosis", r.diagnosisHandler.Diagnose)

	// Apply middleware in reverse order (last middleware wraps first)
	// CORS must be outermost so cached responses also get CORS headers.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	// Session resolution must run before any RequireAuth handler
	handler = middleware.SessionMiddleware(r.authService, r.sessionCookie)(handler)

	// Apply cache middleware if available
	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)

	// Apply HTTP performance optimizations (compression, ETag, cache headers)
	handler = middleware.ResponseOptimization(handler)

	// CORS wraps everything so headers are set even on cache HITs
	handler = middleware.CORSMiddleware(handler)

	return handler
}
