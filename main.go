package main

import (
	"io"
	"net"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vendorledger/backend/internal/fixture"
	"github.com/vendorledger/backend/internal/router"
	"github.com/vendorledger/backend/internal/upstream"
)

func main() {
	_ = godotenv.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	upstreamURL := os.Getenv("UPSTREAM_URL")

	// For local development the upstream fixture can be served
	// in-process from a sqlite database.
	if dsn, ok := os.LookupEnv("UPSTREAM_FIXTURE"); ok {
		server, err := fixture.Open(dsn)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}

		listener, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			log.Fatal().Msg(err.Error())
		}

		go func() {
			if err := http.Serve(listener, server.Router()); err != nil {
				log.Fatal().Msg(err.Error())
			}
		}()

		upstreamURL = "http://" + listener.Addr().String()
		log.Info().Str("url", upstreamURL).Msg("serving upstream fixture")
	}

	if upstreamURL == "" {
		log.Fatal().Msg("UPSTREAM_URL must be set")
	}

	client := upstream.New(upstream.Config{BaseURL: upstreamURL})

	r, err := router.Router(client)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
