package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/skillpath/roadmapper/internal/api"
	"github.com/skillpath/roadmapper/internal/config"
	"github.com/skillpath/roadmapper/internal/db"
	"github.com/skillpath/roadmapper/internal/migrations"
	"github.com/skillpath/roadmapper/internal/services"
	"github.com/skillpath/roadmapper/internal/telemetry"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the roadmap API server",
	Run: func(cmd *cobra.Command, args []string) {
		conf := config.ReadConfig()

		shutdownTelemetry := telemetry.NewProvider(conf.OTEL_EXPORTER_OTLP_ENDPOINT)
		defer shutdownTelemetry()

		m, err := migrations.NewMigrator(db.NewConn(conf))
		if err != nil {
			log.Fatalln("unable to create migrator", err)
		}

		if err := m.Up(0); err != nil {
			log.Fatalln("unable to run migrations", err)
		}

		s := api.New(conf, services.NewServices(conf))
		s.Start()
	},
}

// Register the "server" command
func init() {
	rootCmd.AddCommand(serverCmd)
}
