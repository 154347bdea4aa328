package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hirewire/hirewire/internal/app"
	"github.com/hirewire/hirewire/internal/handlers"
	"github.com/hirewire/hirewire/internal/middleware"
	"github.com/hirewire/hirewire/internal/realtime"
	"github.com/hirewire/hirewire/internal/services"
	"github.com/hirewire/hirewire/internal/store"
)

// Dependencies carries everything the router needs to build its handlers.
type Dependencies struct {
	Config        *app.Config
	Store         *store.Store
	Hub           *realtime.Hub
	Auth          *services.AuthService
	Jobs          *services.JobService
	Applications  *services.ApplicationService
	Profiles      *services.ProfileService
	Interviews    *services.InterviewService
	Notifications *services.NotificationService
	Match         *services.MatchService
	Analytics     *services.AnalyticsService
}

// NewRouter builds the Gin engine, wires middleware and registers all routes.
func NewRouter(deps Dependencies) (*gin.Engine, error) {
	if deps.Config == nil {
		return nil, fmt.Errorf("config must be provided")
	}
	if deps.Store == nil {
		return nil, fmt.Errorf("store must be provided")
	}
	if deps.Hub == nil {
		return nil, fmt.Errorf("hub must be provided")
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(deps.Config.Server.AllowedOrigins))

	authHandler, err := handlers.NewAuthHandler(deps.Auth)
	if err != nil {
		return nil, err
	}
	jobHandler, err := handlers.NewJobHandler(deps.Jobs)
	if err != nil {
		return nil, err
	}
	applicationHandler, err := handlers.NewApplicationHandler(deps.Applications)
	if err != nil {
		return nil, err
	}
	profileHandler, err := handlers.NewProfileHandler(deps.Profiles)
	if err != nil {
		return nil, err
	}
	interviewHandler, err := handlers.NewInterviewHandler(deps.Interviews)
	if err != nil {
		return nil, err
	}
	notificationHandler, err := handlers.NewNotificationHandler(deps.Notifications)
	if err != nil {
		return nil, err
	}
	matchHandler, err := handlers.NewMatchHandler(deps.Match)
	if err != nil {
		return nil, err
	}
	analyticsHandler, err := handlers.NewAnalyticsHandler(deps.Analytics)
	if err != nil {
		return nil, err
	}
	systemHandler, err := handlers.NewSystemHandler(deps.Store, deps.Analytics)
	if err != nil {
		return nil, err
	}
	streamHandler, err := handlers.NewStreamHandler(deps.Hub)
	if err != nil {
		return nil, err
	}

	registerAuthRoutes(r, authHandler)
	registerJobRoutes(r, jobHandler)
	registerApplicationRoutes(r, applicationHandler)
	registerProfileRoutes(r, profileHandler)
	registerInterviewRoutes(r, interviewHandler)
	registerNotificationRoutes(r, notificationHandler)
	registerMatchRoutes(r, matchHandler)
	registerAnalyticsRoutes(r, analyticsHandler)
	registerSystemRoutes(r, systemHandler)
	registerRealtimeRoutes(r, streamHandler)

	if deps.Config.Monitoring.Prometheus.Enabled {
		r.GET(deps.Config.Monitoring.Prometheus.Endpoint, gin.WrapH(promhttp.Handler()))
	}

	return r, nil
}
