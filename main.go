package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/truethari/SocialMedia-API/cli"
)

// CliVersion is the version reported by the version command
const CliVersion = "1.0.0"

var exit = os.Exit

func main() {
	RealMain()
}

// RealMain is the actual entry point, separated so tests can drive it
func RealMain() {
	if len(os.Args) < 2 {
		printHelp()
		exit(1)
		return
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("socialmedia-api version %s\n", CliVersion)
	case "serve", "init", "clean", "backup", "restore":
		cli.HandleCommand(os.Args[1:])
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		exit(1)
	}
}

func printHelp() {
	helpText := `Usage: socialmedia-api <command> [options]

Commands:
  serve                          Run the API server.
  init                           Initialize a new empty database.
  clean                          Remove the database.
  backup                         Create a backup of the database.
  restore [file]                 Restore the database from a backup.
  version                        Show version information.
  help                           Display this help message.

Configuration is read from the environment (or a .env file):
  SERVER_ADDR, DB_PATH, JWT_SECRET, TOKEN_TTL, LOG_LEVEL
`
	fmt.Println(helpText)
}
