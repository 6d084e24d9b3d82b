package main

import (
	"context"
	"log"
	"os"

	"marginalia/internal/stub"
	"marginalia/internal/tracer"
)

// Runs the fixture backend locally so the CLI can be exercised without
// the real service. Fixture data resets on restart.
func main() {
	shutdownTracer := tracer.InitTracer("marginalia-stubserver")
	defer shutdownTracer(context.Background())

	port := os.Getenv("STUB_PORT")
	if port == "" {
		port = "8000"
	}

	app := stub.NewApp(stub.NewStore())
	log.Printf("stub backend listening on http://localhost:%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
