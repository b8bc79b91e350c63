package handler

import (
	"context"
	"errors"
	"strconv"

	"github.com/air-examples/placeholder/api"
	"github.com/aofei/air"
)

func init() {
	a.BATCH(getHeadMethods, "/posts/:ID", postPage)
}

func postPage(req *air.Request, res *air.Response) error {
	pID := req.Param("ID")
	if pID == nil {
		return a.NotFoundHandler(req, res)
	}

	id, err := strconv.Atoi(pID.Value().String())
	if err != nil {
		return a.NotFoundHandler(req, res)
	}

	p, err := postClient.Post(context.Background(), id)
	if errors.Is(err, api.ErrPostNotFound) {
		return a.NotFoundHandler(req, res)
	} else if err != nil {
		return err
	}

	return res.Render(map[string]interface{}{
		"PageTitle":     p.Title,
		"CanonicalPath": "/posts/" + strconv.Itoa(p.ID),
		"IsPostsPage":   true,
		"Post":          p,
	}, "post.html", "layouts/default.html")
}
