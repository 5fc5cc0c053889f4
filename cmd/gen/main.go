package main

import (
	"sms/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates typed query helpers for every persistence model.
func main() {
	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	gen.ApplyBasic(model.All()...)

	gen.Execute()
}
