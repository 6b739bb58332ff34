package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"wanderly/cmd/fx/account_fx"
	"wanderly/cmd/fx/assistant_fx"
	"wanderly/cmd/fx/controllers_fx"
	"wanderly/cmd/fx/db_fx"
	"wanderly/cmd/fx/generation_fx"
	"wanderly/cmd/fx/itinerary_fx"
	"wanderly/cmd/fx/memcache_fx"
	"wanderly/cmd/fx/trip_fx"
	"wanderly/internal/api"
	"wanderly/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		itinerary_fx.Module,
		generation_fx.Module,
		assistant_fx.Module,
		trip_fx.Module,
		controllers_fx.Module,

		fx.Provide(api.NewRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	srv := &http.Server{
		Addr:              ":" + utils.GetEnvWithDefault("PORT", "8080"),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at %s", srv.Addr)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
