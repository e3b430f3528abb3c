package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	log.SetPrefix("rp/calorie-plan-go-api: ")
	log.SetFlags(0)

	// .env is optional — in deployment everything comes from real env vars.
	godotenv.Load()

	router := gin.Default()
	router.SetTrustedProxies(nil)

	h := newHandler()
	h.registerRoutes(router)

	// The calculator form is served from a separate origin, so wrap the
	// engine in a permissive CORS handler.
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST"},
		AllowedHeaders: []string{"*"},
	})
	handler := c.Handler(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("listening on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
