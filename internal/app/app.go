package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jbeshir/game-discovery/internal/command"
	"github.com/jbeshir/game-discovery/internal/datasources"
	"github.com/jbeshir/game-discovery/internal/datasources/mysql"
	"github.com/jbeshir/game-discovery/internal/datasources/neo4jgraph"
	"github.com/jbeshir/game-discovery/internal/datasources/pinecone"
	"github.com/jbeshir/game-discovery/internal/datasources/redis"
	"github.com/jbeshir/game-discovery/internal/datasources/resilient"
	"github.com/jbeshir/game-discovery/internal/transport/web/router"
	"github.com/jbeshir/game-discovery/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

// Stores holds every datasource wrapped with timeouts, retries and a breaker per backend.
type Stores struct {
	Directory     datasources.DirectoryRepository
	Activity      datasources.ActivityRepository
	Profiles      datasources.ProfileRepository
	Actions       datasources.ActionRepository
	Relationships datasources.RelationshipRepository
	Similarity    datasources.SimilarityRepository
	Events        datasources.EventPublisher
}

func Setup(ctx context.Context) ([]Component, error) {
	stores, err := SetupStores(ctx)
	if err != nil {
		return nil, err
	}

	authMiddleware, err := setupAuthMiddleware(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	feedbackConfig := DefaultFeedbackConfig()

	recorder := command.NewActionRecorder(stores.Actions, stores.Events, DefaultActionRecorderConfig())
	getOrBuildProfileCmd := command.NewGetOrBuildProfile(
		stores.Profiles,
		stores.Activity,
		stores.Directory,
		stores.Directory,
		DefaultProfileConfig(),
	)
	trendingCmd := command.NewTrending(stores.Directory, DefaultTrendingConfig())

	discoverCmd := command.NewDiscover(
		getOrBuildProfileCmd,
		stores.Profiles,
		stores.Profiles,
		stores.Directory,
		stores.Relationships,
		stores.Activity,
		stores.Actions,
		recorder,
		trendingCmd,
		DefaultDiscoverConfig(),
	)

	httpRouter, err := router.MakeRouter(
		router.Commands{
			Discover:            discoverCmd,
			Trending:            trendingCmd,
			SimilarTo:           command.NewSimilarTo(stores.Directory, stores.Relationships, stores.Similarity, DefaultSimilarToConfig()),
			RecordActions:       command.NewRecordActions(recorder, stores.Profiles, feedbackConfig),
			RecordFeedback:      command.NewRecordFeedback(stores.Actions, stores.Events, stores.Profiles, feedbackConfig),
			EngagementAnalytics: command.NewEngagementAnalytics(stores.Actions),
			GetProfile:          getOrBuildProfileCmd,
			UpdateProfile:       command.NewUpdateProfile(getOrBuildProfileCmd, stores.Profiles),
			GetPreferences:      command.NewGetPreferences(stores.Profiles),
			UpdatePreferences:   command.NewUpdatePreferences(stores.Profiles),
		},
		router.FeedConfig{
			BaseURL:          MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
			AuthorName:       MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
			AuthorEmail:      MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
			CommunityURLBase: MustGetEnvAsString(ctx, "COMMUNITY_URL_BASE"),
		},
		MustGetEnvAsDuration(ctx, "TRENDING_CACHE_MAX_AGE"),
		authMiddleware,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		recorder,
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES"),
			Router:            httpRouter,
		},
	}, nil
}

// SetupStores connects to every configured backend. MySQL is always required; the relationship
// graph, event sink and similarity index are chosen by their driver variables.
func SetupStores(ctx context.Context) (Stores, error) {
	resilience := DefaultResilienceConfig()

	db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
	if err != nil {
		return Stores{}, fmt.Errorf("connecting to MySQL: %w", err)
	}
	if err := mysql.Migrate(ctx, db); err != nil {
		return Stores{}, fmt.Errorf("migrating MySQL schema: %w", err)
	}
	repo := mysql.New(db)
	mysqlBackend := resilient.NewBackend(ctx, "mysql", resilience)

	relationships, err := setupRelationshipRepository(ctx, repo, resilience)
	if err != nil {
		return Stores{}, fmt.Errorf("setting up relationship repository: %w", err)
	}

	similarity, err := setupSimilarityRepository(ctx, resilience)
	if err != nil {
		return Stores{}, fmt.Errorf("setting up similarity repository: %w", err)
	}

	events, err := setupEventPublisher(ctx)
	if err != nil {
		return Stores{}, fmt.Errorf("setting up event publisher: %w", err)
	}

	return Stores{
		Directory:     resilient.NewDirectory(repo, mysqlBackend),
		Activity:      resilient.NewActivity(repo, mysqlBackend),
		Profiles:      resilient.NewProfiles(repo, mysqlBackend),
		Actions:       resilient.NewActions(repo, mysqlBackend),
		Relationships: relationships,
		Similarity:    similarity,
		Events:        events,
	}, nil
}

func setupRelationshipRepository(
	ctx context.Context, repo *mysql.Repository, resilience resilient.Config,
) (datasources.RelationshipRepository, error) {
	switch driver := MustGetEnvAsString(ctx, "RELATIONSHIP_DRIVER"); driver {
	case "mysql":
		return resilient.NewRelationships(repo, resilient.NewBackend(ctx, "mysql-relationships", resilience)), nil
	case "neo4j":
		graph, err := neo4jgraph.Connect(
			ctx,
			MustGetEnvAsString(ctx, "NEO4J_URI"),
			MustGetEnvAsString(ctx, "NEO4J_USER"),
			MustGetEnvAsString(ctx, "NEO4J_PASSWORD"),
			MustGetEnvAsString(ctx, "NEO4J_DATABASE"),
		)
		if err != nil {
			return nil, fmt.Errorf("connecting to neo4j: %w", err)
		}
		return resilient.NewRelationships(graph, resilient.NewBackend(ctx, "neo4j", resilience)), nil
	default:
		return nil, fmt.Errorf("unknown relationship driver [%s]", driver)
	}
}

func setupSimilarityRepository(
	ctx context.Context, resilience resilient.Config,
) (datasources.SimilarityRepository, error) {
	switch driver := MustGetEnvAsString(ctx, "SIMILARITY_DRIVER"); driver {
	case "null":
		return datasources.NullSimilarityRepository{}, nil
	case "pinecone":
		client, err := pinecone.NewClient(
			ctx,
			MustGetEnvAsString(ctx, "PINECONE_API_KEY"),
			MustGetEnvAsString(ctx, "PINECONE_INDEX_NAME"),
		)
		if err != nil {
			return nil, fmt.Errorf("connecting to pinecone: %w", err)
		}
		return resilient.NewSimilarity(client, resilient.NewBackend(ctx, "pinecone", resilience)), nil
	default:
		return nil, fmt.Errorf("unknown similarity driver [%s]", driver)
	}
}

func setupEventPublisher(ctx context.Context) (datasources.EventPublisher, error) {
	switch driver := MustGetEnvAsString(ctx, "EVENT_SINK_DRIVER"); driver {
	case "null":
		return datasources.NullEventPublisher{}, nil
	case "redis":
		stream, err := redis.Connect(
			ctx,
			MustGetEnvAsString(ctx, "REDIS_ADDR"),
			MustGetEnvAsString(ctx, "REDIS_STREAM"),
		)
		if err != nil {
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}
		return stream, nil
	default:
		return nil, fmt.Errorf("unknown event sink driver [%s]", driver)
	}
}

func setupAuthMiddleware(ctx context.Context) (func(http.Handler) http.Handler, error) {
	var validators []router.AuthValidator

	for _, driver := range MustGetEnvAsStrings(ctx, "AUTH_DRIVERS") {
		switch driver {
		case "":
			// Splitting an empty AUTH_DRIVERS yields one empty entry.
		case "auth0":
			v, err := router.NewAuth0Validator(
				MustGetEnvAsString(ctx, "AUTH0_DOMAIN"),
				MustGetEnvAsString(ctx, "AUTH0_AUDIENCE"),
			)
			if err != nil {
				return nil, fmt.Errorf("creating Auth0 validator: %w", err)
			}
			validators = append(validators, v)
		case "gateway":
			v, err := router.NewGatewayValidator(MustGetEnvAsString(ctx, "GATEWAY_SHARED_SECRET"))
			if err != nil {
				return nil, fmt.Errorf("creating gateway validator: %w", err)
			}
			validators = append(validators, v)
		default:
			return nil, fmt.Errorf("unknown auth driver [%s]", driver)
		}
	}

	return router.NewAuthMiddleware(validators), nil
}
