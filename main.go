package main

import (
	"io"
	"os"

	"github.com/billfold/backend/internal/importer"
	"github.com/billfold/backend/internal/models"
	"github.com/billfold/backend/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// A .env file is optional, environment variables win either way
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

	err := models.Connect("data/billfold.db")
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// The supported statement formats are static reference data
	err = importer.SeedStatementTypes(models.DB)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, teardown, err := router.New()
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
