package handler

import (
	"sync"

	"github.com/air-examples/placeholder/cfg"
	"github.com/air-examples/placeholder/models"
	"github.com/air-examples/placeholder/view"
	"github.com/aofei/air"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

var (
	parsePagesOnce sync.Once
	pages          map[string]models.Page
)

func init() {
	pagesWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Fatal().Err(err).
			Str("app_name", a.AppName).
			Msg("failed to build page watcher")
	} else if err := pagesWatcher.Add(cfg.Page.Root); err != nil {
		log.Fatal().Err(err).
			Str("app_name", a.AppName).
			Msg("failed to watch page directory")
	}

	go func() {
		for {
			select {
			case <-pagesWatcher.Events:
				parsePagesOnce = sync.Once{}
			case err := <-pagesWatcher.Errors:
				log.Error().Err(err).
					Str("app_name", a.AppName).
					Msg("page watcher error")
			}
		}
	}()

	a.BATCH(getHeadMethods, "/about", aboutPage)
}

func aboutPage(req *air.Request, res *air.Response) error {
	parsePagesOnce.Do(parsePages)

	p, ok := pages["about"]
	if !ok {
		return a.NotFoundHandler(req, res)
	}

	return res.Render(map[string]interface{}{
		"PageTitle":     p.Title,
		"CanonicalPath": "/about",
		"IsAboutPage":   true,
		"Page":          p,
	}, "about.html", "layouts/default.html")
}

func parsePages() {
	pages, _ = view.ParsePages(cfg.Page.Root)
}
