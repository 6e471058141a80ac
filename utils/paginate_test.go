package utils

import "testing"

func TestPaginate(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		rawPage  string
		number   int
		numPages int
		offset   int
		hasNext  bool
		hasPrev  bool
	}{
		{"empty set still has one page", 0, "1", 1, 1, 0, false, false},
		{"exact multiple", 20, "2", 2, 2, 10, false, true},
		{"partial last page", 25, "3", 3, 3, 20, false, true},
		{"middle page", 25, "2", 2, 3, 10, true, true},
		{"non-integer falls back to 1", 25, "abc", 1, 3, 0, true, false},
		{"overflow clamps to last page", 25, "99", 3, 3, 20, false, true},
		{"zero clamps to last page", 25, "0", 3, 3, 20, false, true},
		{"negative clamps to last page", 25, "-4", 3, 3, 20, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paginate(tt.total, PostsPerPage, tt.rawPage)
			if p.Number != tt.number || p.NumPages != tt.numPages || p.Offset != tt.offset {
				t.Fatalf("Paginate(%d, %q) = %+v", tt.total, tt.rawPage, p)
			}
			if p.HasNext() != tt.hasNext || p.HasPrevious() != tt.hasPrev {
				t.Fatalf("Paginate(%d, %q) flags = next %v prev %v", tt.total, tt.rawPage, p.HasNext(), p.HasPrevious())
			}
			if p.Limit != PostsPerPage {
				t.Fatalf("unexpected limit %d", p.Limit)
			}
		})
	}
}
