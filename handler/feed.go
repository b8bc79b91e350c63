package handler

import (
	"bytes"
	"context"
	"path/filepath"

	"github.com/air-examples/placeholder/view"
	"github.com/aofei/air"
	"github.com/rs/zerolog/log"
)

var feed *view.Feed

func init() {
	f, err := view.NewFeed(filepath.Join(
		a.RendererTemplateRoot,
		"feed.xml",
	))
	if err != nil {
		log.Fatal().Err(err).
			Str("app_name", a.AppName).
			Msg("failed to parse feed template")
	}
	feed = f

	a.BATCH(getHeadMethods, "/feed", feedHandler, hourlyCachemanGas)
}

func feedHandler(req *air.Request, res *air.Response) error {
	posts, err := postClient.Posts(context.Background())
	if err != nil {
		return err
	}

	b, etag, lastModified, err := feed.Build(posts)
	if err != nil {
		return err
	}

	res.Header.Set("Content-Type", "application/atom+xml; charset=utf-8")
	res.Header.Set("ETag", etag)
	res.Header.Set("Last-Modified", lastModified)

	return res.Write(bytes.NewReader(b))
}
