// Package view builds the renderable state behind the site's pages.
package view

import (
	"context"

	"github.com/air-examples/placeholder/api"
	"github.com/air-examples/placeholder/models"
)

// PostsPage is the state behind the posts page: the fetched collection
// and the last fetch error. At most one of the two is meaningful.
type PostsPage struct {
	Posts     []models.Post
	LastError string
}

// BuildPostsPage performs the one fetch a page load needs and folds the
// outcome into renderable state. A failure becomes LastError plus an
// empty post list; it is never propagated further and never retried.
func BuildPostsPage(ctx context.Context, c *api.Client) PostsPage {
	posts, err := c.Posts(ctx)
	if err != nil {
		return PostsPage{
			Posts:     []models.Post{},
			LastError: err.Error(),
		}
	}
	return PostsPage{Posts: posts}
}
