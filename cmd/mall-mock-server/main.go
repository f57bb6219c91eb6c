package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/xinfuli/points-mall/internal/mockserver"
)

func main() {
	if err := mockserver.Run(); err != nil {
		log.Error().Err(err).Msg("mall-mock-server exited with error")
		os.Exit(1)
	}
}
