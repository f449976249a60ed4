package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/putrafajarh/protospace/config"
	"github.com/putrafajarh/protospace/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@protospace.dev"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var userID string
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, name, profile, occupation, position)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (lower(email)) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, email, hash, "Demo Maker", "I build rough things fast.", "Hardware tinkering", "Maker in residence").Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", userID, email, password)

	prototypes := []struct {
		title, catchCopy, concept, imageRef string
	}{
		{"Pocket Greenhouse", "A garden that fits in your bag", "Fold-out seedling tray with a humidity dome for commuters.", "https://storage.googleapis.com/protospace-demo/greenhouse.png"},
		{"Loop Pedal Lamp", "Light that follows the music", "Desk lamp that pulses with whatever you play through it.", "https://storage.googleapis.com/protospace-demo/lamp.png"},
	}
	for _, p := range prototypes {
		var id string
		err = db.QueryRow(`
			INSERT INTO prototypes (title, catch_copy, concept, image_ref, user_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, p.title, p.catchCopy, p.concept, p.imageRef, userID).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed prototype: %v", err)
		}
		fmt.Printf("seeded prototype: id=%s title=%q\n", id, p.title)
	}
}
