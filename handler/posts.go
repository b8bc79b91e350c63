package handler

import (
	"context"

	"github.com/air-examples/placeholder/view"
	"github.com/aofei/air"
	"github.com/rs/zerolog/log"
)

func init() {
	a.BATCH(getHeadMethods, "/", postsPage("/"))
	a.BATCH(getHeadMethods, "/posts", postsPage("/posts"))
}

func postsPage(canonicalPath string) air.Handler {
	return func(req *air.Request, res *air.Response) error {
		page := view.BuildPostsPage(context.Background(), postClient)
		if page.LastError != "" {
			log.Error().
				Str("app_name", a.AppName).
				Str("error", page.LastError).
				Msg("failed to fetch posts")
		}

		return res.Render(map[string]interface{}{
			"PageTitle":     req.LocalizedString("Posts"),
			"CanonicalPath": canonicalPath,
			"IsPostsPage":   true,
			"Posts":         page.Posts,
			"LastError":     page.LastError,
		}, "posts.html", "layouts/default.html")
	}
}
