// Command hashpw prints a bcrypt hash for seeding the admin table.
//
//	go run ./cmd/hashpw 'my password'
//	echo -n 'my password' | go run ./cmd/hashpw
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ethan-tjh/portfolio-backend/internal/pkg/password"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	plain, err := readPassword(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read password")
	}
	if plain == "" {
		log.Fatal().Msg("usage: hashpw <password>")
	}
	if len(plain) > 72 {
		log.Fatal().Msg("bcrypt passwords are limited to 72 bytes")
	}

	hash, err := password.Hash(plain)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash password")
	}
	fmt.Println(hash)
}

func readPassword(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", nil
	}
	return strings.TrimRight(line, "\r\n"), nil
}
