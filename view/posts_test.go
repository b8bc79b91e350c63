package view

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/air-examples/placeholder/api"
	"github.com/air-examples/placeholder/models"
)

func TestBuildPostsPage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[
			{"userId": 1, "id": 1, "title": "first", "body": "body one"},
			{"userId": 1, "id": 2, "title": "second", "body": "body two"}
		]`)
	}))
	defer ts.Close()

	c := api.NewClient(ts.URL, 5*time.Second)
	page := BuildPostsPage(context.Background(), c)

	if page.LastError != "" {
		t.Fatalf("LastError = %q, want empty", page.LastError)
	}
	if len(page.Posts) != 2 {
		t.Fatalf("got %d posts, want 2", len(page.Posts))
	}
	if page.Posts[0].Title != "first" || page.Posts[1].Title != "second" {
		t.Errorf("posts out of order: %+v", page.Posts)
	}
}

func TestBuildPostsPage_Failure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	c := api.NewClient(ts.URL, 5*time.Second)
	page := BuildPostsPage(context.Background(), c)

	if page.LastError == "" {
		t.Fatal("LastError is empty, want failure message")
	}
	if !strings.Contains(page.LastError, "502") {
		t.Errorf("LastError = %q, want HTTP status in message", page.LastError)
	}
	if len(page.Posts) != 0 {
		t.Errorf("got %d posts, want 0", len(page.Posts))
	}
	if page.Posts == nil {
		t.Error("Posts is nil, want empty sequence")
	}
}

func TestBuildPostsPage_EmptyCollection(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, "[]")
	}))
	defer ts.Close()

	c := api.NewClient(ts.URL, 5*time.Second)
	page := BuildPostsPage(context.Background(), c)

	if page.LastError != "" {
		t.Fatalf("LastError = %q, want empty", page.LastError)
	}
	if len(page.Posts) != 0 {
		t.Errorf("got %d posts, want 0", len(page.Posts))
	}
}

func renderPostsTemplate(t *testing.T, page PostsPage) string {
	t.Helper()

	tmpl, err := template.ParseFiles("../templates/posts.html")
	if err != nil {
		t.Fatalf("parse posts template: %v", err)
	}

	buf := bytes.Buffer{}
	if err := tmpl.Execute(&buf, map[string]interface{}{
		"Posts":     page.Posts,
		"LastError": page.LastError,
	}); err != nil {
		t.Fatalf("execute posts template: %v", err)
	}

	return buf.String()
}

func TestPostsTemplate(t *testing.T) {
	page := PostsPage{Posts: []models.Post{
		{UserID: 1, ID: 1, Title: "first", Body: "body one"},
		{UserID: 1, ID: 2, Title: "second", Body: "body two"},
		{UserID: 2, ID: 3, Title: "third", Body: "body three"},
	}}

	html := renderPostsTemplate(t, page)

	if got := strings.Count(html, "<li>"); got != 3 {
		t.Errorf("rendered %d items, want 3", got)
	}
	for _, p := range page.Posts {
		if !strings.Contains(html, p.Title) {
			t.Errorf("missing title %q", p.Title)
		}
		if !strings.Contains(html, p.Body) {
			t.Errorf("missing body %q", p.Body)
		}
	}
	if i, j := strings.Index(html, "first"), strings.Index(html, "third"); i > j {
		t.Error("items rendered out of response order")
	}
	if strings.Contains(html, `class="error"`) {
		t.Error("error block rendered without an error")
	}
}

func TestPostsTemplate_Error(t *testing.T) {
	page := PostsPage{
		Posts:     []models.Post{},
		LastError: "posts: HTTP 502",
	}

	html := renderPostsTemplate(t, page)

	if !strings.Contains(html, "posts: HTTP 502") {
		t.Error("missing failure message")
	}
	if strings.Contains(html, "<li>") {
		t.Error("list items rendered alongside an error")
	}
}

func TestPostsPageRendered(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `[
				{"userId": 1, "id": 1, "title": "alpha", "body": "alpha body"},
				{"userId": 1, "id": 2, "title": "beta", "body": "beta body"},
				{"userId": 2, "id": 3, "title": "gamma", "body": "gamma body"}
			]`)
		}))
		defer ts.Close()

		c := api.NewClient(ts.URL, 5*time.Second)
		html := renderPostsTemplate(t, BuildPostsPage(context.Background(), c))

		if got := strings.Count(html, "<li>"); got != 3 {
			t.Errorf("rendered %d items, want 3", got)
		}
		for _, s := range []string{"alpha", "alpha body", "beta", "beta body", "gamma", "gamma body"} {
			if !strings.Contains(html, s) {
				t.Errorf("missing %q", s)
			}
		}
		if i, j := strings.Index(html, "alpha"), strings.Index(html, "gamma"); i > j {
			t.Error("items rendered out of response order")
		}
		if strings.Contains(html, `class="error"`) {
			t.Error("error block rendered without an error")
		}
	})

	t.Run("failure", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer ts.Close()

		c := api.NewClient(ts.URL, 5*time.Second)
		html := renderPostsTemplate(t, BuildPostsPage(context.Background(), c))

		if !strings.Contains(html, "503") {
			t.Error("missing failure message")
		}
		if strings.Contains(html, "<li>") {
			t.Error("list items rendered alongside an error")
		}
	})

	t.Run("empty", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, "[]")
		}))
		defer ts.Close()

		c := api.NewClient(ts.URL, 5*time.Second)
		html := renderPostsTemplate(t, BuildPostsPage(context.Background(), c))

		if strings.Contains(html, "<li>") {
			t.Error("list items rendered for an empty collection")
		}
		if strings.Contains(html, `class="error"`) {
			t.Error("error block rendered for an empty collection")
		}
	})
}

func TestPostsTemplate_Empty(t *testing.T) {
	html := renderPostsTemplate(t, PostsPage{})

	if strings.Contains(html, "<li>") {
		t.Error("list items rendered for an empty collection")
	}
	if strings.Contains(html, `class="error"`) {
		t.Error("error block rendered for an empty collection")
	}
}
