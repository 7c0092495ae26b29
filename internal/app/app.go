package app

import (
	"log/slog"
	"net/http"

	"property_hub/internal/config"
	"property_hub/internal/httpapi"
	"property_hub/internal/lib/feed"
	"property_hub/internal/lib/metrics"
	"property_hub/internal/lib/photos"
	"property_hub/internal/repository/developer_repository"
	"property_hub/internal/repository/lead_repository"
	"property_hub/internal/repository/listing_repository"
	"property_hub/internal/repository/property_repository"
	"property_hub/internal/repository/user_repository"
	"property_hub/internal/services/content"
	"property_hub/internal/services/developer"
	"property_hub/internal/services/lead"
	"property_hub/internal/services/listing"
	"property_hub/internal/services/matchmaker"
	"property_hub/internal/services/property"
	"property_hub/internal/services/user"

	"github.com/jackc/pgx/v5/pgxpool"
)

// App wires repositories, clients and services into the HTTP handler.
type App struct {
	Handler http.Handler
	// Optional clients, exported so main can report their status.
	FeedClient feed.Client
	PhotoStore photos.Store
	Metrics    *metrics.SiteMetrics
}

func New(log *slog.Logger, pool *pgxpool.Pool, cfg *config.Config) (*App, error) {
	propertyRepository := property_repository.NewPropertyRepository(pool, log)
	listingRepository := listing_repository.NewListingRepository(pool, log)
	leadRepository := lead_repository.NewLeadRepository(pool, log)
	developerRepository := developer_repository.NewDeveloperRepository(pool, log)
	userRepository := user_repository.NewUserRepository(pool, log)

	feedClient := feed.NewClient(cfg.Feed, log)
	photoStore, err := photos.NewStore(cfg.Minio, log)
	if err != nil {
		return nil, err
	}

	siteMetrics := metrics.GetSiteMetrics(log)

	log.Info("optional services initialized",
		slog.Bool("feed_enabled", feedClient.IsEnabled()),
		slog.Bool("photo_storage_enabled", photoStore.IsEnabled()),
	)

	directory := property.NewSeededDirectory()
	propertyService := property.New(log, propertyRepository, directory)

	scoreConfig := matchmaker.DefaultScoreConfig()
	if cfg.Matchmaker.TopN > 0 {
		scoreConfig.TopN = cfg.Matchmaker.TopN
	}
	engine := matchmaker.NewEngine(directory, scoreConfig)
	matchmakerService := matchmaker.New(log, propertyService, engine, siteMetrics)

	listingService := listing.New(log, listingRepository, propertyService, directory, siteMetrics)
	leadService := lead.New(log, leadRepository, propertyService, siteMetrics)
	developerService := developer.New(log, developerRepository)
	contentService := content.New(log, feedClient, siteMetrics)
	userService := user.New(log, userRepository, cfg.Secret, cfg.TokenTTL)

	server := httpapi.NewServer(httpapi.Deps{
		Log:         log,
		Properties:  propertyService,
		Matchmaker:  matchmakerService,
		Listings:    listingService,
		Leads:       leadService,
		Developers:  developerService,
		Content:     contentService,
		Users:       userService,
		Photos:      photoStore,
		Metrics:     siteMetrics,
		BaseURL:     baseURL(cfg),
		DisableAuth: cfg.DisableAuth,
	})

	return &App{
		Handler:    server.Routes(),
		FeedClient: feedClient,
		PhotoStore: photoStore,
		Metrics:    siteMetrics,
	}, nil
}

func baseURL(cfg *config.Config) string {
	if cfg.Env == "local" {
		return "http://localhost:8080"
	}
	return "https://propertyhub.ae"
}
