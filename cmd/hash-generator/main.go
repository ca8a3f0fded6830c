// Command hash-generator prints bcrypt hashes for the passwords given on the
// command line, using the same cost the server uses. Handy for seeding users
// directly in SQL during development.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/phrazzld/taskboard-api/internal/service/auth"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <password> [password...]\n", os.Args[0])
		os.Exit(2)
	}

	hasher := auth.NewBcryptHasher()
	for _, password := range os.Args[1:] {
		hash, err := hasher.Hash(password)
		if err != nil {
			log.Fatalf("hashing %q: %v", password, err)
		}
		fmt.Printf("%s\n", hash)
	}
}
