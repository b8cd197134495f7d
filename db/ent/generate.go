//go:build ignore

// Regenerate the ent client with: go run db/ent/generate.go
package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/Ajauregui69/livo-backend/gen/ent",
			Schema:  "github.com/Ajauregui69/livo-backend/db/ent/schema",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
