// @title Productivity Tracker API
// @description Tracks daily productivity from checklists, focus timers and classified app usage
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/being-saiful/productivity-tracker1/internal/api"
	"github.com/being-saiful/productivity-tracker1/internal/classifier"
	"github.com/being-saiful/productivity-tracker1/internal/repository"
	"github.com/being-saiful/productivity-tracker1/internal/service"
	"github.com/being-saiful/productivity-tracker1/internal/worker"
	"github.com/being-saiful/productivity-tracker1/pkg/cleanup"
	"github.com/being-saiful/productivity-tracker1/pkg/config"
	jwtservice "github.com/being-saiful/productivity-tracker1/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}

	usersRepo := repository.NewUsersRepo(&dbCfg)
	usageRepo := repository.NewUsageRepo(&dbCfg)
	statsRepo := repository.NewStatsRepo(&dbCfg)

	remote := classifier.New(
		cfg.GetString("ML_SERVICE_URL"),
		time.Duration(cfg.GetInt("CLASSIFY_TIMEOUT_SECONDS", 5))*time.Second,
	)

	userService := service.NewUserService(usersRepo)
	usageService := service.NewUsageService(usageRepo, usersRepo, remote, nil)
	statsService := service.NewStatsService(statsRepo, usageRepo)

	sweeper := worker.NewSweeper(usageRepo, usageService, nil, worker.SweeperOpts{
		Interval:  time.Duration(cfg.GetInt("CLASSIFY_SWEEP_SECONDS", 60)) * time.Second,
		BatchSize: cfg.GetInt("CLASSIFY_BATCH_SIZE", 20),
	})
	sweeper.Start()
	cleanup.Register(&cleanup.Job{
		Name: "stopping classification sweeper",
		F: func() error {
			sweeper.Stop()
			return nil
		},
	})

	serv := api.New(&api.ServicesList{
		UserService:  userService,
		UsageService: usageService,
		StatsService: statsService,
		JwtService:   jwtservice.New(cfg.GetString("JWT_SECRET")),
	})

	go func() {
		err := serv.Run(cfg.GetString("API_ADDRESS"))
		if err != nil {
			log.Println("Server error: " + err.Error())
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	cleanup.CleanUp()
}
