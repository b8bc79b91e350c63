package view

import (
	"bytes"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/air-examples/placeholder/models"
	"github.com/russross/blackfriday/v2"
)

// ParsePages reads the markdown files under root. Each file carries a
// TOML front matter block delimited by +++ lines; files without one
// are skipped. Pages come back keyed by ID and ordered newest first.
func ParsePages(root string) (map[string]models.Page, []models.Page) {
	fns, _ := filepath.Glob(filepath.Join(root, "*.md"))
	nps := make(map[string]models.Page, len(fns))
	nops := make([]models.Page, 0, len(fns))
	for _, fn := range fns {
		b, _ := os.ReadFile(fn)
		if bytes.Count(b, []byte{'+', '+', '+'}) < 2 {
			continue
		}

		i := bytes.Index(b, []byte{'+', '+', '+'})
		j := bytes.Index(b[i+3:], []byte{'+', '+', '+'}) + 3

		p := models.Page{
			ID:      strings.TrimSuffix(filepath.Base(fn), ".md"),
			Content: template.HTML(blackfriday.Run(b[j+3:])),
		}
		if err := toml.Unmarshal(b[i+3:j], &p); err != nil {
			continue
		}

		p.Datetime = p.Datetime.UTC()

		nps[p.ID] = p
		nops = append(nops, p)
	}

	sort.Slice(nops, func(i, j int) bool {
		return nops[i].Datetime.After(nops[j].Datetime)
	})

	return nps, nops
}
