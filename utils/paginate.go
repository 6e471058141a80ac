package utils

import (
	"math"
	"strconv"
)

const PostsPerPage = 10

type Page struct {
	Number   int
	NumPages int
	Offset   int
	Limit    int
}

func (p Page) HasNext() bool     { return p.Number < p.NumPages }
func (p Page) HasPrevious() bool { return p.Number > 1 }

// Paginate clamps the requested page the way the clients expect: a page
// that is not an integer falls back to 1, an out-of-range page (including
// values below 1) clamps to the last page, and an empty result set still
// counts as one page.
func Paginate(total int64, perPage int, rawPage string) Page {
	numPages := int(math.Ceil(float64(total) / float64(perPage)))
	if numPages < 1 {
		numPages = 1
	}

	number, err := strconv.Atoi(rawPage)
	if err != nil {
		number = 1
	} else if number < 1 || number > numPages {
		number = numPages
	}

	return Page{
		Number:   number,
		NumPages: numPages,
		Offset:   (number - 1) * perPage,
		Limit:    perPage,
	}
}
