package catalog

import (
	_ "embed"
	"sync"
)

//go:embed levels.json
var seedData []byte

var (
	seedOnce sync.Once
	seed     *Catalog
)

// Default returns the built-in catalog. It panics if the embedded document is
// invalid, which TestDefault_Valid guards against.
func Default() *Catalog {
	seedOnce.Do(func() {
		c, err := Parse(seedData)
		if err != nil {
			panic("catalog: embedded levels.json: " + err.Error())
		}
		seed = c
	})
	return seed
}
