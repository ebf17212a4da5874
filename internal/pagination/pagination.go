package pagination

import "github.com/VitaminP8/yatube/models"

// PostsPerPage - фиксированный размер страницы для всех списков постов.
const PostsPerPage = 10

// Paginator режет упорядоченный список постов на страницы фиксированного
// размера. Сам список не переупорядочивается - порядок задает хранилище.
type Paginator struct {
	posts   []models.Post
	perPage int
}

func New(posts []models.Post, perPage int) *Paginator {
	if perPage < 1 {
		perPage = 1
	}
	return &Paginator{posts: posts, perPage: perPage}
}

// Count - общее количество постов.
func (p *Paginator) Count() int {
	return len(p.posts)
}

// NumPages - количество страниц (минимум одна, даже для пустого списка).
func (p *Paginator) NumPages() int {
	if len(p.posts) == 0 {
		return 1
	}
	return (len(p.posts) + p.perPage - 1) / p.perPage
}

// GetPage возвращает страницу с указанным номером. Номер меньше единицы
// приводится к первой странице, больше последней - к последней.
func (p *Paginator) GetPage(number int) Page {
	if number < 1 {
		number = 1
	}
	if number > p.NumPages() {
		number = p.NumPages()
	}

	start := (number - 1) * p.perPage
	end := start + p.perPage
	if start > len(p.posts) {
		start = len(p.posts)
	}
	if end > len(p.posts) {
		end = len(p.posts)
	}

	return Page{
		Posts:    p.posts[start:end],
		Number:   number,
		numPages: p.NumPages(),
	}
}

type Page struct {
	Posts    []models.Post
	Number   int
	numPages int
}

func (pg Page) HasNext() bool {
	return pg.Number < pg.numPages
}

func (pg Page) HasPrevious() bool {
	return pg.Number > 1
}

// NextNumber и PreviousNumber используются шаблонами для ссылок навигации.
func (pg Page) NextNumber() int {
	return pg.Number + 1
}

func (pg Page) PreviousNumber() int {
	return pg.Number - 1
}
