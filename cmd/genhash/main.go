// Command genhash prints a bcrypt hash for seeding admin accounts.
package main

import (
	"flag"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
)

func generatePasswordHash(password string, cost int) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func main() {
	password := flag.String("password", "", "password to hash")
	cost := flag.Int("cost", 12, "bcrypt cost")
	flag.Parse()

	if *password == "" {
		log.Fatal("usage: genhash -password <password> [-cost N]")
	}

	hash, err := generatePasswordHash(*password, *cost)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(hash)
}
