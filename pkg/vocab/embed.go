package vocab

import (
	"embed"
	"fmt"

	"github.com/goccy/go-yaml"
)

// FS embeds the vocabulary tables at build time. Editing a table is a data
// change, not a code change, but still ships with the binary so the engine
// has no runtime file dependencies.
//
//go:embed tables/*.yaml
var FS embed.FS

// The four controlled vocabularies. Loaded once at package init; a
// malformed embedded table is a build defect, so loading panics.
var (
	Brands    = mustLoad("tables/brands.yaml")
	Vitolas   = mustLoad("tables/vitolas.yaml")
	Wrappers  = mustLoad("tables/wrappers.yaml")
	Countries = mustLoad("tables/countries.yaml")
)

func mustLoad(path string) Table {
	data, err := FS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("vocab: reading embedded table %s: %v", path, err))
	}
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		panic(fmt.Sprintf("vocab: parsing embedded table %s: %v", path, err))
	}
	return t
}
