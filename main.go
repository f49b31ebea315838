package main

import (
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/vishubh/bizbilling/app/cmd"
	"github.com/vishubh/bizbilling/app/configs"
	"github.com/vishubh/bizbilling/app/routes"
)

func main() {
	env := configs.LoadENV
	configs.SetupLogger(env)

	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	keys, err := configs.LoadSessionKeysFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("session keys missing, run `generate-keys` first")
	}

	db, err := configs.OpenConnection()
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	log.Info().Msg("database connected")

	router := routes.NewRouter(db, env, keys)

	server := http.Server{
		Addr:         env.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Info().Str("addr", server.Addr).Msg("server starting")
	if err := server.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
