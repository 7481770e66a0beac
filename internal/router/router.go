package router

import (
	"context"
	"net/http"
	"time"

	_ "animal-shelter-api/docs"
	"animal-shelter-api/internal/adapters/storage/documents"
	mem "animal-shelter-api/internal/adapters/storage/memory"
	"animal-shelter-api/internal/domain/breeds"
	"animal-shelter-api/internal/domain/dogs"
	"animal-shelter-api/internal/domain/rescuetypes"
	"animal-shelter-api/internal/middleware"
	"animal-shelter-api/internal/platform/logger"
	"animal-shelter-api/internal/ports/docstore"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // nil => Nop

	// Opcional: si no viene, usa el store in-memory (modo dev / tests).
	Store docstore.Client

	// RateLimiter nil => sin límite.
	RateLimiter *middleware.RateLimiter
	CORSOrigin  string
}

// @title Animal Shelter API
// @version 1.0
// @description CRUD de perros, razas y tipos de rescate del refugio.
// @BasePath /
func NewRouter(opts Options) (http.Handler, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	store := opts.Store
	if store == nil {
		store = mem.NewClient()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := documents.EnsureIndexes(ctx, store); err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(opts.CORSOrigin))
	if opts.RateLimiter != nil {
		r.Use(opts.RateLimiter.Handler)
	}
	r.Use(chimw.StripSlashes)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		pingCtx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := store.Ping(pingCtx); err != nil {
			log.Warn("health: store ping failed", logger.Fields{"error": err})
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("store unavailable"))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// StripSlashes deja "/swagger/" como "/swagger"; se manda a la UI.
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/index.html", http.StatusMovedPermanently)
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Repos sobre las colecciones del store
	breedRepo := documents.NewBreedsRepo(store.Collection(documents.BreedsCollection))
	rescueRepo := documents.NewRescueTypesRepo(store.Collection(documents.RescueTypesCollection))
	dogRepo := documents.NewDogsRepo(store.Collection(documents.DogsCollection))

	// Services por módulo; los catálogos resuelven las referencias de dogs.
	breedsSvc := breeds.NewService(breedRepo)
	rescueSvc := rescuetypes.NewService(rescueRepo)
	dogsSvc := dogs.NewService(dogRepo, breedsSvc, rescueSvc)

	// Rutas por módulo
	breeds.RegisterRoutes(r, breedsSvc, log)
	rescuetypes.RegisterRoutes(r, rescueSvc, log)
	dogs.RegisterRoutes(r, dogsSvc, log)

	return r, nil
}
