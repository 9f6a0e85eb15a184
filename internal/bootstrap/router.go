package bootstrap

import (
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	httpapi "github.com/coffeeist/go-coffeeist-backend/internal/api/http"
	"github.com/coffeeist/go-coffeeist-backend/internal/api/http/middleware"
	"github.com/coffeeist/go-coffeeist-backend/internal/auth"
	"github.com/coffeeist/go-coffeeist-backend/internal/cache"
	"github.com/coffeeist/go-coffeeist-backend/internal/catalog"
	cataloghttp "github.com/coffeeist/go-coffeeist-backend/internal/catalog/http"
	"github.com/coffeeist/go-coffeeist-backend/internal/inventory"
	inventoryhttp "github.com/coffeeist/go-coffeeist-backend/internal/inventory/http"
	"github.com/coffeeist/go-coffeeist-backend/internal/preparations"
	preparationshttp "github.com/coffeeist/go-coffeeist-backend/internal/preparations/http"
	"github.com/coffeeist/go-coffeeist-backend/internal/setups"
	setupshttp "github.com/coffeeist/go-coffeeist-backend/internal/setups/http"
	"github.com/coffeeist/go-coffeeist-backend/internal/social"
	socialhttp "github.com/coffeeist/go-coffeeist-backend/internal/social/http"
	"github.com/coffeeist/go-coffeeist-backend/internal/stash"
	stashhttp "github.com/coffeeist/go-coffeeist-backend/internal/stash/http"
	"github.com/coffeeist/go-coffeeist-backend/internal/store"
	"github.com/coffeeist/go-coffeeist-backend/internal/users"
	usershttp "github.com/coffeeist/go-coffeeist-backend/internal/users/http"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Store       store.Store
	Cache       *cache.Cache
	Redis       *redis.Client
	AuthClient  *fbauth.Client
	Log         *zap.Logger
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())
	r.Use(middleware.RequestID(dep.Log))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Redis)
	healthHandler.RegisterRoutes(r)

	userRepo := users.NewRepository(dep.Store)
	catalogRepo := catalog.NewRepository(dep.Store, dep.Log)
	setupRepo := setups.NewRepository(dep.Store, dep.Log)
	prepRepo := preparations.NewRepository(dep.Store, dep.Log)
	prepService := preparations.NewService(prepRepo, userRepo, dep.Cache, dep.Log)
	aggregator := inventory.NewAggregator(dep.Store, prepRepo, dep.Cache, dep.Log)
	followRepo := social.NewRepository(dep.Store, dep.Log)
	counters := social.NewCounters(followRepo, userRepo, dep.Log)
	stashRepo := stash.NewRepository(dep.Store, dep.Log)

	api := r.Group("/api/v1")
	if dep.AuthClient != nil {
		api.Use(auth.FirebaseAuthMiddleware(dep.AuthClient))
	} else {
		api.Use(auth.OptionalUser())
	}

	usershttp.New(userRepo).Register(api)
	cataloghttp.New(catalogRepo).Register(api)
	setupshttp.New(setupRepo).Register(api)
	preparationshttp.New(prepService).Register(api)
	inventoryhttp.New(aggregator).Register(api)
	socialhttp.New(counters).Register(api)
	stashhttp.New(stashRepo).Register(api)

	return r
}
