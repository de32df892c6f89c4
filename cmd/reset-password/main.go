package main

import (
	"flag"
	"log"

	"go-secadmin-ws/internal/config"
	"go-secadmin-ws/internal/model"
	"go-secadmin-ws/pkg/database"

	"golang.org/x/crypto/bcrypt"
)

// Rehashes the stored credential for one account. Login does not verify
// credentials today, but the hash is kept current so turning verification on
// never strands an operator.
func main() {
	email := flag.String("email", "admin@myers.security", "account email")
	password := flag.String("password", "admin123", "new password")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	db := database.ConnectDB(cfg.Database)

	var user model.User
	if err := db.Where("email = ?", *email).First(&user).Error; err != nil {
		log.Fatalf("User %s not found in database: %v", *email, err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	if err := db.Model(&user).Update("password", string(hashedPassword)).Error; err != nil {
		log.Fatalf("Failed to update password in DB: %v", err)
	}

	log.Printf("Password for %s has been reset", *email)
}
