// Command tokengen mints a development identity token: an HS256 JWT
// carrying the email claim the client expects. The client never verifies
// the signature, so any secret works for local runs.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func main() {

	email := flag.String("email", "", "email claim to embed (required)")
	name := flag.String("name", "", "optional display name claim")
	secret := flag.String("secret", "dev-secret", "HMAC signing secret")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *email == "" {
		log.Fatal("-email is required")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"email": *email,
		"iat":   now.Unix(),
		"exp":   now.Add(*ttl).Unix(),
	}
	if *name != "" {
		claims["name"] = *name
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(*secret))
	if err != nil {
		log.Fatalf("signing token: %v", err)
	}

	fmt.Println(token)

}
