package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	DB            *sql.DB
	Port          string
	JWTSecret     []byte
	AdminUsername string
	// AdminPasswordHash is the bcrypt hash of the single operator
	// credential. There is exactly one account.
	AdminPasswordHash []byte
}

var AppConfig *Config

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Init loads .env, opens the database pool and prepares the operator
// credential gate.
func Init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	psqlInfo := getenv("DATABASE_URL", "")
	if psqlInfo == "" {
		psqlInfo = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			getenv("DB_HOST", "localhost"),
			getenv("DB_PORT", "5432"),
			getenv("DB_USER", "postgres"),
			getenv("DB_PASSWORD", "postgres"),
			getenv("DB_NAME", "mecda"),
		)
	}

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err = db.Ping(); err != nil {
		log.Fatal("Cannot establish database connection: ", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(getenv("ADMIN_PASSWORD", "admin")), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash admin password:", err)
	}

	AppConfig = &Config{
		DB:                db,
		Port:              getenv("PORT", "8080"),
		JWTSecret:         []byte(getenv("JWT_SECRET", "mecda-local-secret")),
		AdminUsername:     getenv("ADMIN_USERNAME", "admin"),
		AdminPasswordHash: hash,
	}
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}
