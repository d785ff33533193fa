package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// Inserts an enabled API key row and prints its id. Integrations (factory
// floor terminals, MES bridges) authenticate with the X-API-Key header.
func main() {
	_ = godotenv.Load()

	host := os.Getenv("PG_HOST")
	port := os.Getenv("PG_PORT")
	user := os.Getenv("PG_USER")
	dbname := os.Getenv("PG_DB")
	password := os.Getenv("PG_PASSWORD")
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbname)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	var id int64
	if err := db.QueryRow(`INSERT INTO api_keys (status) VALUES (true) RETURNING id`).Scan(&id); err != nil {
		log.Fatalf("insert api key: %v", err)
	}

	fmt.Println("New API Key:", id)
}
