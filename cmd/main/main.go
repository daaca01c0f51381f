package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	api "github.com/mwansa-dev/voteledger/internal/api"
	audit "github.com/mwansa-dev/voteledger/internal/audit"
	config "github.com/mwansa-dev/voteledger/internal/config"
	coordinator "github.com/mwansa-dev/voteledger/internal/coordinator"
	db "github.com/mwansa-dev/voteledger/internal/database/connection"
	repositories "github.com/mwansa-dev/voteledger/internal/database/repositories"
	ledger "github.com/mwansa-dev/voteledger/internal/ledger"
	notary "github.com/mwansa-dev/voteledger/internal/notary"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("|Main| No .env file loaded")
	}

	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "config/config.yml"
	}

	conf, err := config.LoadConfigFile(configFile)
	if err != nil {
		log.Fatalf("Failed to load config file: %v", err)
	}

	dbFile := conf.DatabaseConfig.File
	if override := os.Getenv("DATABASE_FILE"); override != "" {
		dbFile = override
	}

	database, err := db.NewDatabase(dbFile)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	repos := repositories.NewRepositories(database)

	store, err := ledger.NewStore(conf.LedgerConfig.DataDir)
	if err != nil {
		log.Fatalf("Failed to load ledger store: %v", err)
	}

	recorder := audit.NewRecorderImpl(database)

	var notaryClient notary.Client
	if conf.NotaryConfig.Enabled {
		notaryClient = notary.NewSimulatedClient(conf.NotaryConfig.Latency(), conf.NotaryConfig.FailureRate)
	} else {
		log.Println("|Main| Notary disabled, votes will not be notarized")
		notaryClient = notary.NewDisabledClient()
	}

	coord := coordinator.NewCoordinator(store, repos, notaryClient, recorder, conf.NotaryConfig.Timeout)

	var server *api.Server
	if conf.ApiConfig.Enabled {
		server = api.NewServer(conf.ApiConfig.Address, coord, recorder)
		go server.Start()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	log.Println("|Main| Shutting down...")

	if server != nil {
		if err := server.Stop(); err != nil {
			log.Printf("|Main| Failed to stop api server: %v", err)
		}
	}

	if err := db.CloseDatabaseConnection(database); err != nil {
		log.Fatalf("Failed to close database connection: %v", err)
	}
}
