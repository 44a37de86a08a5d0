package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/ayursetu/ayur-hub/internal/ai"
	"github.com/ayursetu/ayur-hub/internal/auth"
	"github.com/ayursetu/ayur-hub/internal/blob"
	"github.com/ayursetu/ayur-hub/internal/catalog"
	"github.com/ayursetu/ayur-hub/internal/config"
	"github.com/ayursetu/ayur-hub/internal/patients"
	"github.com/ayursetu/ayur-hub/internal/plans"
	"github.com/ayursetu/ayur-hub/internal/reports"
	"github.com/ayursetu/ayur-hub/internal/storage"
	"github.com/ayursetu/ayur-hub/internal/storage/memory"
	"github.com/ayursetu/ayur-hub/internal/storage/postgres"
)

// Server is the HTTP server wiring storage, services and routes
type Server struct {
	config         *config.Config
	mux            *http.ServeMux
	storage        storage.Storage
	catalog        *catalog.Catalog
	authMiddleware *auth.Middleware
}

// New creates a new HTTP server
func New(cfg *config.Config) *Server {
	s := &Server{
		config:  cfg,
		mux:     http.NewServeMux(),
		catalog: catalog.Default(),
	}

	s.initStorage()
	s.routes()
	return s
}

// initStorage selects Memory or Postgres storage
func (s *Server) initStorage() {
	if s.config.DatabaseURL == "" {
		log.Println("Using in-memory storage")
		s.storage = memory.New()
	} else {
		log.Println("Connecting to PostgreSQL...")
		ctx := context.Background()
		pgStorage, err := postgres.New(ctx, s.config.DatabaseURL)
		if err != nil {
			log.Printf("PostgreSQL connection failed: %v", err)
			log.Println("Falling back to in-memory storage")
			s.storage = memory.New()
		} else {
			log.Println("PostgreSQL connected")
			s.storage = pgStorage
		}
	}
}

// routes registers all HTTP routes
func (s *Server) routes() {
	// Health check (no auth required)
	s.mux.HandleFunc("/healthz", s.handleHealthz)

	// Auth API (no auth required)
	authService := auth.NewService(s.config)
	authHandler := auth.NewHandlers(authService)
	s.authMiddleware = auth.NewMiddleware(s.config, authService)

	// POST /v1/auth/dev - local dev token
	s.mux.HandleFunc("POST /v1/auth/dev", authHandler.HandleDevAuth)

	// Food catalog API (read-only)
	foodsHandler := catalog.NewHandler(s.catalog)
	s.mux.HandleFunc("GET /v1/foods", foodsHandler.HandleList)
	s.mux.HandleFunc("GET /v1/foods/{id}", foodsHandler.HandleGet)

	// Patients API
	patientsService := patients.NewService(s.storage)
	patientsHandler := patients.NewHandler(patientsService)

	// GET /v1/patients - list all patients
	s.mux.HandleFunc("GET /v1/patients", patientsHandler.HandleList)

	// POST /v1/patients - create patient
	s.mux.HandleFunc("POST /v1/patients", patientsHandler.HandleCreate)

	// GET /v1/patients/{id} - get patient
	s.mux.HandleFunc("GET /v1/patients/{id}", patientsHandler.HandleGet)

	// PATCH /v1/patients/{id} - update patient
	s.mux.HandleFunc("PATCH /v1/patients/{id}", patientsHandler.HandleUpdate)

	// DELETE /v1/patients/{id} - delete patient
	s.mux.HandleFunc("DELETE /v1/patients/{id}", patientsHandler.HandleDelete)

	// GET /v1/assessment/questions - constitution quiz questions
	s.mux.HandleFunc("GET /v1/assessment/questions", patientsHandler.HandleAssessmentQuestions)

	// POST /v1/assessment - score a filled-in constitution quiz
	s.mux.HandleFunc("POST /v1/assessment", patientsHandler.HandleAssess)

	// Weekly plans API
	aiProvider := ai.NewProvider(s.config)
	plansService := plans.NewService(s.getDietPlansStorage(), s.storage, s.catalog, aiProvider)
	plansHandler := plans.NewHandler(plansService)

	// GET /v1/patients/{id}/plan - get active weekly plan
	s.mux.HandleFunc("GET /v1/patients/{id}/plan", plansHandler.HandleGet)

	// PUT /v1/patients/{id}/plan - save weekly plan
	s.mux.HandleFunc("PUT /v1/patients/{id}/plan", plansHandler.HandleSave)

	// DELETE /v1/patients/{id}/plan - delete weekly plan
	s.mux.HandleFunc("DELETE /v1/patients/{id}/plan", plansHandler.HandleDelete)

	// POST /v1/patients/{id}/plan/generate - AI-generate full plan
	s.mux.HandleFunc("POST /v1/patients/{id}/plan/generate", plansHandler.HandleGenerate)

	// POST /v1/patients/{id}/plan/suggest - AI-suggest meals for one slot
	s.mux.HandleFunc("POST /v1/patients/{id}/plan/suggest", plansHandler.HandleSuggest)

	// Reports API
	reportsBlobStore := s.initReportsBlobStore()
	reportsService := reports.NewService(
		s.getReportsStorage(),
		s.getDietPlansStorage(),
		s.storage,
		s.catalog,
		reportsBlobStore,
		s.config.ReportsMaxPerPatient,
		s.config.Blob.S3.PresignTTLSeconds,
		s.config.Blob.S3.PublicBaseURL,
		s.config.Blob.S3.PreferPublicURL,
	)
	reportsHandler := reports.NewHandlers(reportsService)

	// POST /v1/reports - generate report
	s.mux.HandleFunc("POST /v1/reports", reportsHandler.HandleCreate)

	// GET /v1/reports - list reports for a patient
	s.mux.HandleFunc("GET /v1/reports", reportsHandler.HandleList)

	// GET /v1/reports/{id}/download - download report
	s.mux.HandleFunc("GET /v1/reports/{id}/download", reportsHandler.HandleDownload)

	// DELETE /v1/reports/{id} - delete report
	s.mux.HandleFunc("DELETE /v1/reports/{id}", reportsHandler.HandleDelete)
}

// getDietPlansStorage returns the diet plans storage based on storage type
func (s *Server) getDietPlansStorage() storage.DietPlansStorage {
	switch st := s.storage.(type) {
	case *memory.MemoryStorage:
		return st.GetDietPlansStorage()
	case *postgres.PostgresStorage:
		return st.GetDietPlansStorage()
	default:
		log.Fatal("unknown storage type")
		return nil
	}
}

// getReportsStorage returns the reports storage based on storage type
func (s *Server) getReportsStorage() storage.ReportsStorage {
	switch st := s.storage.(type) {
	case *memory.MemoryStorage:
		return st.GetReportsStorage()
	case *postgres.PostgresStorage:
		return st.GetReportsStorage()
	default:
		log.Fatal("unknown storage type")
		return nil
	}
}

// initReportsBlobStore initializes the blob store for report files.
// Reports follow BLOB_MODE unless REPORTS_MODE overrides it. A nil store
// means local mode: report bytes stay inline with the stored metadata.
func (s *Server) initReportsBlobStore() blob.Store {
	blobCfg := s.config.Blob
	blobCfg.Mode = s.config.Blob.EffectiveReportsMode()
	blobCfg.ReportsModeSet = false
	blobCfg.ReportsMode = blobCfg.Mode

	log.Printf("INFO blob: initializing reports store (mode=%s)", blobCfg.Mode)
	store, mode, err := blob.NewBlobStore(blobCfg, log.Default())
	if err != nil {
		log.Fatalf("FATAL blob: failed to initialize reports store: %v", err)
	}
	log.Printf("INFO blob: reports blob mode: %s", mode)
	return store
}

// handleHealthz reports server status
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
	})
}

// Start runs the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)

	// Build middleware chain (outermost first): CORS -> Rate Limit -> Auth -> Router
	var handler http.Handler = s.mux
	if s.authMiddleware != nil && s.config.AuthMode != "none" {
		if s.config.AuthRequired {
			handler = s.authMiddleware.RequireAuth(handler)
		} else {
			handler = s.authMiddleware.OptionalAuth(handler)
		}
	}
	handler = RateLimitMiddleware(s.config, handler)
	handler = CORSMiddleware(s.config, handler)

	log.Printf("Server listening on http://localhost%s\n", addr)
	log.Printf("Health check: http://localhost%s/healthz\n", addr)
	log.Printf("Patients API: http://localhost%s/v1/patients\n", addr)

	return http.ListenAndServe(addr, handler)
}

// Close closes storage and releases resources
func (s *Server) Close() error {
	if s.storage != nil {
		return s.storage.Close()
	}
	return nil
}
