package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"attendly.com/attendly/security"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	id := flag.Int("id", 0, "user id")
	name := flag.String("name", "", "unique user name")
	email := flag.String("email", "", "user email")
	role := flag.String("role", "user", "user or admin")
	expires := flag.Int64("expires", 3600, "token lifetime in seconds")
	flag.Parse()

	secret := os.Getenv("ATTENDLY_SIGNING_SECRET")
	if secret == "" {
		log.Fatal("ATTENDLY_SIGNING_SECRET is not set")
	}

	token, err := security.CreateIdentityToken(&security.Identity{
		ID:         int32(*id),
		UniqueName: *name,
		Email:      *email,
		Role:       *role,
	}, secret, *expires)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(token)
}
