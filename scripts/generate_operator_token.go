package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"os"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
)

type Claims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Fatal("Error loading .env file")
	}

	// Define command line flags
	subject := flag.String("sub", "", "Subject (operator name) for the token")
	expirationHours := flag.Int("exp", 24, "Token expiration in hours")
	flag.Parse()

	if *subject == "" {
		log.Fatal("Subject is required")
	}

	secretKey := os.Getenv("OPERATOR_SECRET_KEY")
	if secretKey == "" {
		log.Fatal("OPERATOR_SECRET_KEY is not set")
	}

	claims := &Claims{
		Scope: "operator",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   *subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(*expirationHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secretKey))
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}

	fmt.Println(signed)
}
