package pagination

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/VitaminP8/yatube/models"
)

func makePosts(n int) []models.Post {
	posts := make([]models.Post, 0, n)
	for i := n; i > 0; i-- {
		post := models.Post{Text: fmt.Sprintf("пост %d", i)}
		post.ID = uint(i)
		posts = append(posts, post)
	}
	return posts
}

func TestPaginator_NumPages(t *testing.T) {
	t.Run("Empty list still has one page", func(t *testing.T) {
		p := New(nil, PostsPerPage)
		assert.Equal(t, 1, p.NumPages())
		assert.Equal(t, 0, p.Count())
	})

	t.Run("Exact multiple of page size", func(t *testing.T) {
		p := New(makePosts(20), PostsPerPage)
		assert.Equal(t, 2, p.NumPages())
	})

	t.Run("Partial last page", func(t *testing.T) {
		p := New(makePosts(13), PostsPerPage)
		assert.Equal(t, 2, p.NumPages())
	})
}

func TestPaginator_GetPage(t *testing.T) {
	p := New(makePosts(13), PostsPerPage)

	t.Run("First page is full and keeps order", func(t *testing.T) {
		page := p.GetPage(1)
		assert.Len(t, page.Posts, 10)
		assert.Equal(t, uint(13), page.Posts[0].ID)
		assert.True(t, page.HasNext())
		assert.False(t, page.HasPrevious())
	})

	t.Run("Last page holds the remainder", func(t *testing.T) {
		page := p.GetPage(2)
		assert.Len(t, page.Posts, 3)
		assert.False(t, page.HasNext())
		assert.True(t, page.HasPrevious())
	})

	t.Run("Page below one clamps to the first page", func(t *testing.T) {
		page := p.GetPage(0)
		assert.Equal(t, 1, page.Number)
		assert.Len(t, page.Posts, 10)
	})

	t.Run("Page past the end clamps to the last page", func(t *testing.T) {
		page := p.GetPage(99)
		assert.Equal(t, 2, page.Number)
		assert.Len(t, page.Posts, 3)
	})

	t.Run("Empty paginator returns an empty first page", func(t *testing.T) {
		empty := New(nil, PostsPerPage)
		page := empty.GetPage(5)
		assert.Equal(t, 1, page.Number)
		assert.Empty(t, page.Posts)
		assert.False(t, page.HasNext())
	})
}
