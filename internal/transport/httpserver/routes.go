package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"visionx-go/internal/config"
	"visionx-go/internal/transport/httpserver/handler"
	authmw "visionx-go/internal/transport/httpserver/middleware"
	"visionx-go/pkg/logger"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, log logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(authmw.NewCORS(cfg.AllowedOrigins))

	auth := authmw.NewJWTAuth(handlers.Users, log)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		// Public surface. A bearer token is honored when present so the
		// read-only tournament and community endpoints know who is asking.
		r.Group(func(r chi.Router) {
			r.Use(auth.Optional)

			r.Post("/auth/register", handlers.Register)
			r.Post("/auth/token", handlers.Login)
			r.Post("/auth/refresh", handlers.Refresh)

			r.Get("/tournaments", handlers.ListTournaments)
			r.Get("/tournaments/{id}", handlers.GetTournament)
			r.Get("/tournaments/{id}/teams", handlers.TournamentTeams)
			r.Get("/tournaments/{id}/matches", handlers.TournamentMatches)

			r.Get("/teams", handlers.ListTeams)
			r.Get("/teams/{id}", handlers.GetTeam)

			r.Get("/registrations", handlers.ListRegistrations)
			r.Get("/registrations/{id}", handlers.GetRegistration)

			r.Get("/matches", handlers.ListMatches)
			r.Get("/matches/{id}", handlers.GetMatch)

			r.Get("/spirit-scores", handlers.ListSpiritScores)
			r.Get("/spirit-scores/{id}", handlers.GetSpiritScore)

			r.Get("/threads", handlers.ListThreads)
			r.Get("/threads/{id}", handlers.GetThread)
			r.Get("/threads/{id}/replies", handlers.ThreadReplies)
			r.Get("/replies", handlers.ListReplies)

			r.Get("/resources", handlers.ListResources)
			r.Get("/resources/{id}", handlers.GetResource)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.Require)

			r.Get("/auth/me", handlers.AuthMe)

			r.Get("/admin/users", handlers.AdminListUsers)
			r.Post("/admin/users", handlers.AdminCreateUser)

			r.Get("/children", handlers.ListChildren)
			r.Post("/children", handlers.CreateChild)
			r.Get("/children/{id}", handlers.GetChild)
			r.Patch("/children/{id}", handlers.UpdateChild)
			r.Delete("/children/{id}", handlers.DeleteChild)
			r.Get("/children/{id}/unified-history", handlers.ChildUnifiedHistory)
			r.Get("/children/{id}/assessments", handlers.AssessmentsByChild)

			r.Get("/sessions", handlers.ListSessions)
			r.Post("/sessions", handlers.CreateSession)
			r.Get("/sessions/upcoming", handlers.ListUpcomingSessions)
			r.Get("/sessions/{id}", handlers.GetSession)
			r.Patch("/sessions/{id}", handlers.UpdateSession)
			r.Delete("/sessions/{id}", handlers.DeleteSession)
			r.Post("/sessions/{id}/mark-attendance", handlers.MarkSessionAttendance)

			r.Get("/attendance", handlers.ListAttendance)
			r.Get("/attendance/{id}", handlers.GetAttendance)
			r.Post("/attendance/{id}/mark", handlers.MarkAttendance)
			r.Delete("/attendance/{id}", handlers.DeleteAttendance)

			r.Get("/home-visits", handlers.ListHomeVisits)
			r.Post("/home-visits", handlers.CreateHomeVisit)
			r.Get("/home-visits/{id}", handlers.GetHomeVisit)
			r.Patch("/home-visits/{id}", handlers.UpdateHomeVisit)
			r.Delete("/home-visits/{id}", handlers.DeleteHomeVisit)

			r.Get("/lsas-assessments", handlers.ListAssessments)
			r.Post("/lsas-assessments", handlers.CreateAssessment)
			r.Get("/lsas-assessments/{id}", handlers.GetAssessment)
			r.Patch("/lsas-assessments/{id}", handlers.UpdateAssessment)
			r.Delete("/lsas-assessments/{id}", handlers.DeleteAssessment)

			r.Get("/coach-activities", handlers.ListActivities)
			r.Post("/coach-activities", handlers.CreateActivity)
			r.Get("/coach-activities/{id}", handlers.GetActivity)
			r.Patch("/coach-activities/{id}", handlers.UpdateActivity)
			r.Delete("/coach-activities/{id}", handlers.DeleteActivity)

			r.Get("/my-profile", handlers.MyCoachingProfile)
			r.Get("/my-registrations", handlers.MyRegistrations)

			r.Get("/dashboard", handlers.Dashboard)
			r.Get("/reports/participation", handlers.ParticipationReport)
			r.Get("/reports/gender-distribution", handlers.GenderDistribution)
			r.Get("/reports/coach-workload", handlers.CoachWorkload)

			r.Post("/tournaments", handlers.CreateTournament)
			r.Put("/tournaments/{id}", handlers.UpdateTournament)
			r.Delete("/tournaments/{id}", handlers.DeleteTournament)
			r.Post("/tournaments/{id}/generate_schedule", handlers.GenerateSchedule)

			r.Post("/teams", handlers.CreateTeam)
			r.Patch("/teams/{id}", handlers.UpdateTeam)
			r.Delete("/teams/{id}", handlers.DeleteTeam)
			r.Get("/teams/{id}/roster", handlers.TeamRoster)

			r.Post("/registrations", handlers.RegisterPlayer)
			r.Delete("/registrations/{id}", handlers.DeleteRegistration)

			r.Post("/matches", handlers.CreateMatch)
			r.Patch("/matches/{id}", handlers.UpdateMatch)
			r.Delete("/matches/{id}", handlers.DeleteMatch)

			r.Post("/spirit-scores", handlers.CreateSpiritScore)
			r.Patch("/spirit-scores/{id}", handlers.UpdateSpiritScore)
			r.Delete("/spirit-scores/{id}", handlers.DeleteSpiritScore)

			r.Post("/threads", handlers.CreateThread)
			r.Put("/threads/{id}", handlers.UpdateThread)
			r.Delete("/threads/{id}", handlers.DeleteThread)

			r.Post("/replies", handlers.CreateReply)
			r.Patch("/replies/{id}", handlers.UpdateReply)
			r.Delete("/replies/{id}", handlers.DeleteReply)

			r.Post("/resources", handlers.CreateResource)
			r.Patch("/resources/{id}", handlers.UpdateResource)
			r.Delete("/resources/{id}", handlers.DeleteResource)
		})
	})

	return r
}
