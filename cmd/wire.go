package cmd

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/instanimals/instanimals-cli/internal/adapters/gateway/httpapi"
	"github.com/instanimals/instanimals-cli/internal/adapters/geo/osm"
	tomlrepo "github.com/instanimals/instanimals-cli/internal/adapters/repo/toml"
	"github.com/instanimals/instanimals-cli/internal/application"
	"github.com/instanimals/instanimals-cli/internal/domain"
	"github.com/instanimals/instanimals-cli/internal/logging"
	"github.com/instanimals/instanimals-cli/internal/ports"
)

type app struct {
	session *domain.Session
	cache   *application.Cache

	auth     *application.AuthService
	feed     *application.FeedService
	chat     *application.ChatService
	shelters *application.ShelterService
	speech   func(ports.Player) *application.SpeechService

	store      ports.ProfileStore
	gateway    ports.Gateway
	geocoder   ports.Geocoder
	finder     ports.ShelterFinder
	logger     *zap.Logger
	httpClient *http.Client
	now        func() time.Time

	playerBinary string
}

func wireApp() (*app, error) {
	store, err := tomlrepo.NewStore(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire profile store: %w", err)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	logger, err := logging.New(
		filepath.Join(homeDir, ".instanimals", "ia.log"),
		os.Getenv("IA_DEBUG") != "",
	)
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}
	gateway := httpapi.NewClient(envOrDefault("IA_API_URL", "http://localhost:5000"), httpClient, logger)
	geocoder := osm.NewGeocoder(envOrDefault("IA_NOMINATIM_URL", osm.DefaultNominatimURL), httpClient)
	finder := osm.NewShelterFinder(envOrDefault("IA_OVERPASS_URL", osm.DefaultOverpassURL), httpClient)

	session := &domain.Session{Profile: domain.DefaultProfile(), ActiveTab: domain.TabExplore}
	cache := application.NewCache()
	clock := ports.SystemClock{}

	return &app{
		session:  session,
		cache:    cache,
		auth:     application.NewAuthService(session, store, gateway),
		feed:     application.NewFeedService(session, cache, store, gateway, clock),
		chat:     application.NewChatService(session, cache, clock),
		shelters: application.NewShelterService(cache, geocoder, finder),
		speech: func(player ports.Player) *application.SpeechService {
			return application.NewSpeechService(gateway, player)
		},
		store:        store,
		gateway:      gateway,
		geocoder:     geocoder,
		finder:       finder,
		logger:       logger,
		httpClient:   httpClient,
		now:          time.Now,
		playerBinary: os.Getenv("IA_AUDIO_PLAYER"),
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
