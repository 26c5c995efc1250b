package main

import (
	"os"

	"github.com/MKhiriev/cafe-env/internal/cli"
	"github.com/MKhiriev/cafe-env/internal/logger"
	"github.com/MKhiriev/cafe-env/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("cafe-env", os.Stderr)
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	if err := cli.NewRootCommand(build, log).Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
