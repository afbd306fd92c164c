package catalog

import (
	_ "embed"
)

//go:embed catalog.yaml
var seedYAML []byte

// Seed returns the built-in catalog document.
// Panics on parse failure; the embedded file is validated by tests.
func Seed() Document {
	doc, err := ParseDocument(seedYAML)
	if err != nil {
		panic("catalog: embedded seed is invalid: " + err.Error())
	}
	return doc
}
