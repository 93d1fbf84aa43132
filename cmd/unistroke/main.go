package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/ThatOtherAndrew/unistroke/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("unistroke failed")
		os.Exit(1)
	}
}
