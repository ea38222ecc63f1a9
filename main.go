package main

import (
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/janedoe-dev/portfolio-api/api"
	"github.com/janedoe-dev/portfolio-api/database"
)

func main() {
	log.Info().Msg("Initializing app...")

	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("No .env file loaded")
	}

	connStr := connectionString()

	gormLogger := logger.New(
		stdlog.New(os.Stdout, "\r\n", stdlog.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
		Logger:      gormLogger,
	})
	if err != nil {
		haltOnDatabaseFailure(err)
		db = nil
	}

	var currentDB database.Database
	if db != nil {
		var result int
		if pingErr := db.Raw("SELECT 1").Scan(&result).Error; pingErr != nil {
			haltOnDatabaseFailure(pingErr)
		} else {
			currentDB = database.New(db)
			if migrateErr := currentDB.Migrate(); migrateErr != nil {
				log.Error().Err(migrateErr).Msg("Error running migrations")
				os.Exit(1)
			}
			log.Info().Msg("Connected to database")
		}
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(currentDB)
	if err != nil {
		log.Error().Err(err).Msg("Error initializing server")
		os.Exit(1)
	}

	go server.Start(errChannel)

	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// connectionString prefers a full DATABASE_URL and otherwise assembles a DSN
// from the individual DB_* variables.
func connectionString() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_NAME", "portfolio"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_SSLMODE", "disable"),
	)
}

// haltOnDatabaseFailure logs a classified hint about why the connection failed
// and exits when running in production. Outside production the server still
// comes up so the docs endpoints stay reachable.
func haltOnDatabaseFailure(err error) {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "password authentication failed"):
		log.Error().Err(err).Msg("Database authentication failed, check DB_USER and DB_PASSWORD")
	case strings.Contains(msg, "connection refused"), strings.Contains(msg, "no such host"):
		log.Error().Err(err).Msg("Database unreachable, check DB_HOST and DB_PORT")
	case strings.Contains(msg, "timeout"):
		log.Error().Err(err).Msg("Database connection timed out")
	default:
		log.Error().Err(err).Msg("Error connecting to database")
	}

	if getEnv("APP_ENV", "development") == "production" {
		os.Exit(1)
	}
	log.Warn().Msg("Continuing without a database connection")
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}

// getEnv returns the value of the environment variable key or a fallback value.
func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
