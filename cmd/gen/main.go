// Command gen writes type-safe gorm/gen query helpers for the persistence models.
//
//	go run ./cmd/gen -out ./internal/infra/persistence/postgres/query
package main

import (
	"flag"

	"abacus/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	outPath := flag.String("out", "./internal/infra/persistence/postgres/query", "output directory for generated code")
	flag.Parse()

	g := gen.NewGenerator(gen.Config{
		OutPath:       *outPath,
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	g.ApplyBasic(
		model.UserModel{},
		model.CalculationModel{},
	)

	g.Execute()
}
