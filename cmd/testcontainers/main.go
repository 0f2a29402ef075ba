package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/internal/config"
	"github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/internal/testhelpers"
)

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")
	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	var dbType string
	flag.StringVar(&dbType, "db", "postgres", "database server to run: postgres or mariadb")
	flag.Parse()

	usage := `
Run a database server in a testcontainer and print the DATABASE_URL that reaches it.

Usage:

testcontainers [-h] [-db postgres|mariadb] [-f ENV_FILE_PATH]

ENV_FILE_PATH: path to the .env file (DB_IMAGE overrides the default image)

example
  testcontainers -db mariadb
`
	// if -h flag print usage and return
	if showHelp {
		fmt.Println(usage)
		return
	}

	if envFilename != "" {
		log.Printf("Loading environment variables from %s\n", envFilename)
	}
	if err := config.LoadEnvFile(envFilename); err != nil {
		log.Fatalf("Failed to load environment variables: %v\n", err)
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	container, err := testhelpers.StartDatabase(nil, dbType)
	if err != nil {
		log.Fatalf("Failed to start database container: %v\n", err)
	}
	log.Printf("Database container running, press Ctrl-C to stop")

	sig := <-sigs
	log.Printf("\nReceived signal: %v, terminating database container...\n", sig)
	container.Terminate(nil)
}
