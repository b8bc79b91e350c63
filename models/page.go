package models

import (
	"html/template"
	"time"
)

// Page is a local markdown page with TOML front matter.
type Page struct {
	ID       string
	Title    string
	Datetime time.Time
	Content  template.HTML
}
