package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/being-saiful/productivity-tracker1/internal/service"
)

type Server struct {
	mx           *chi.Mux
	userService  service.UserServiceI
	usageService service.UsageServiceI
	statsService service.StatsServiceI
	jwtService   JWTServiceI
}

type ServicesList struct {
	UserService  service.UserServiceI
	UsageService service.UsageServiceI
	StatsService service.StatsServiceI
	JwtService   JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:           chi.NewMux(),
		userService:  servicesOptions.UserService,
		usageService: servicesOptions.UsageService,
		statsService: servicesOptions.StatsService,
		jwtService:   servicesOptions.JwtService,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Delete("/user", s.DeleteAccount)
			r.Post("/usage/log", s.LogUsage)
			r.Post("/usage/classify", s.ClassifyApp)
			r.Get("/usage/today", s.UsageToday)
			r.Get("/usage/weekly", s.UsageWeekly)
			r.Get("/stats/today", s.StatsToday)
			r.Patch("/stats/today", s.StatsPatch)
			r.Get("/stats/history", s.StatsHistory)
			r.Get("/roadmap", s.Roadmap)
		})
	})
}

func (s *Server) Handler() http.Handler {
	return s.mx
}

func (s *Server) Run(address string) error {
	return http.ListenAndServe(address, s.mx)
}
