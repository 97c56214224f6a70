package router

import (
	"context"
	"database/sql"
	"net/http"
	"os"

	_ "notaria-citas/docs"
	"notaria-citas/internal/adapters/auth/jwtauth"
	mem "notaria-citas/internal/adapters/storage/memory"
	pg "notaria-citas/internal/adapters/storage/postgres"
	"notaria-citas/internal/domain/appointments"
	"notaria-citas/internal/domain/offerings"
	"notaria-citas/internal/domain/slots"
	"notaria-citas/internal/domain/users"
	"notaria-citas/internal/middleware"
	"notaria-citas/internal/platform/logger"
	"notaria-citas/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)
	TokenIssuer  auth.TokenIssuer  // puede ser nil: se arma uno desde JWT_SECRET

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Log logger.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log))

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		usersRepo     users.Repository
		offeringsRepo offerings.Repository
		slotsRepo     slots.Repository
		citasRepo     appointments.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("no se pudo abrir postgres, usando memoria", map[string]any{"error": err.Error()})
			}
		}
	}

	if db != nil {
		usersRepo = pg.NewUsersRepo(db)
		offeringsRepo = pg.NewOfferingsRepo(db)
		slotsRepo = pg.NewSlotsRepo(db)
		citasRepo = pg.NewAppointmentsRepo(db)
	} else {
		memSlots := mem.NewSlotsRepo()
		memOfferings := mem.NewOfferingsRepo()
		usersRepo = mem.NewUsersRepo()
		offeringsRepo = memOfferings
		slotsRepo = memSlots
		citasRepo = mem.NewAppointmentsRepo(memSlots, memOfferings)
	}

	issuer := opts.TokenIssuer
	if issuer == nil {
		issuer = jwtauth.New(jwtauth.Config{Secret: jwtSecret()})
	}

	// Services por módulo
	usersSvc := users.NewService(usersRepo, issuer)
	offeringsSvc := offerings.NewService(offeringsRepo)
	slotsSvc := slots.NewService(slotsRepo)
	citasSvc := appointments.NewService(citasRepo)

	// El catálogo se siembra al arrancar; si falla el server igual levanta.
	if err := offeringsSvc.Seed(context.Background()); err != nil {
		log.Error("no se pudo sembrar el catalogo de tramites", map[string]any{"error": err.Error()})
	}

	// Rutas por módulo
	users.RegisterRoutes(r, usersSvc)
	offerings.RegisterRoutes(r, offeringsSvc)
	slots.RegisterRoutes(r, slotsSvc)
	appointments.RegisterRoutes(r, citasSvc)

	return r
}

func jwtSecret() string {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return s
	}
	return "secret_key_default"
}
