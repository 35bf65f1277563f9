package directory

import (
	_ "embed"
	"encoding/json"
	"sync"

	"github.com/qiblatech/minaret/internal/model"
)

//go:embed data/mosques.json
var bundledJSON []byte

var (
	bundledOnce sync.Once
	bundled     []model.Mosque
)

// Bundled returns the dataset shipped with the binary. Decoded once; the
// payload is validated at build time by the package tests, so a decode
// failure here is a programming error.
func Bundled() []model.Mosque {
	bundledOnce.Do(func() {
		if err := json.Unmarshal(bundledJSON, &bundled); err != nil {
			panic("directory: corrupt bundled dataset: " + err.Error())
		}
	})
	return bundled
}
