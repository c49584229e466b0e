package http

import (
	"net/http"
	"time"

	"github.com/MohitGedela/GeoShield/pkg/usecase"
	"github.com/MohitGedela/GeoShield/pkg/utils/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// DefaultClientURL is the origin of the bundled web client in development
const DefaultClientURL = "http://localhost:5173"

// ObserverCounter reports how many observers are connected to the broadcast channel
type ObserverCounter interface {
	Count() int
}

type Server struct {
	router    *chi.Mux
	uc        *usecase.UseCases
	clientURL string
	observers ObserverCounter
	socket    http.Handler
}

type Options func(*Server)

// WithClientURL sets the origin allowed by CORS
func WithClientURL(url string) Options {
	return func(s *Server) {
		s.clientURL = url
	}
}

// WithObserverEndpoint mounts the broadcast channel handler at /socket
func WithObserverEndpoint(handler http.Handler, counter ObserverCounter) Options {
	return func(s *Server) {
		s.socket = handler
		s.observers = counter
	}
}

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router:    r,
		uc:        uc,
		clientURL: DefaultClientURL,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware(s.clientURL))

	r.Get("/health", healthHandler(s.observers))

	if s.socket != nil {
		r.Handle("/socket", s.socket)
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/safe-zones", func(r chi.Router) {
			r.Get("/", listSafeZonesHandler(uc.SafeZone))
			r.Put("/{id}", updateSafeZoneHandler(uc.SafeZone))
		})

		r.Route("/requests", func(r chi.Router) {
			r.Get("/", listRequestsHandler(uc.Request))
			r.Post("/", createRequestHandler(uc.Request))
			r.Get("/{id}", getRequestHandler(uc.Request))
			r.Put("/{id}", updateRequestHandler(uc.Request))
			r.Post("/{id}/accept", acceptRequestHandler(uc.Assignment))
			r.Post("/{id}/complete", completeRequestHandler(uc.Assignment))
		})

		r.Get("/volunteers", listVolunteersHandler(uc.Registration))
		r.Post("/volunteers", registerVolunteerHandler(uc.Registration))
		r.Post("/survivors", registerUserHandler(uc.Registration.RegisterSurvivor))
		r.Post("/coordinators", registerUserHandler(uc.Registration.RegisterCoordinator))
		r.Get("/users", listUsersHandler(uc.Registration))

		r.Post("/check-in", checkInHandler(uc.CheckIn))
		r.Get("/check-ins", listCheckInsHandler(uc.CheckIn))

		r.Route("/messages", func(r chi.Router) {
			r.Get("/", listMessagesHandler(uc.Messaging))
			r.Post("/", sendMessageHandler(uc.Messaging))
			r.Put("/{id}/read", markReadHandler(uc.Messaging))
		})
		r.Post("/alerts/forward", forwardAlertHandler(uc.Messaging))

		r.Route("/verify", func(r chi.Router) {
			r.Post("/send-code", sendCodeHandler(uc.Verification))
			r.Post("/verify-code", verifyCodeHandler(uc.Verification))
		})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests and carries a request-scoped
// logger in the context
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		logger := logging.Default().With("request_id", middleware.GetReqID(r.Context()))
		r = r.WithContext(logging.With(r.Context(), logger))

		defer func() {
			logger.Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

func healthHandler(observers ObserverCounter) http.HandlerFunc {
	type response struct {
		Status    string `json:"status"`
		Observers int    `json:"observers"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		resp := response{Status: "ok"}
		if observers != nil {
			resp.Observers = observers.Count()
		}
		writeJSON(w, r, http.StatusOK, resp)
	}
}
