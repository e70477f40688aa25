package pagination

import "testing"

func TestPageRequest_Defaults(t *testing.T) {
	p := PageRequest{}
	p.Defaults()
	if p.Page != 1 || p.PageSize != 20 {
		t.Errorf("expected page 1 size 20, got %+v", p)
	}

	p = PageRequest{Page: 3, PageSize: 5}
	p.Defaults()
	if p.Page != 3 || p.PageSize != 5 {
		t.Errorf("explicit values should be kept, got %+v", p)
	}

	p = PageRequest{Page: 1, PageSize: 500}
	p.Defaults()
	if p.PageSize != MaxPageSize {
		t.Errorf("expected page size capped at %d, got %d", MaxPageSize, p.PageSize)
	}
}

func TestPageRequest_Offset(t *testing.T) {
	tests := []struct {
		page, size, want int
	}{
		{1, 20, 0},
		{2, 20, 20},
		{4, 5, 15},
	}
	for _, tt := range tests {
		p := PageRequest{Page: tt.page, PageSize: tt.size}
		if got := p.Offset(); got != tt.want {
			t.Errorf("Offset() for page %d size %d = %d, want %d", tt.page, tt.size, got, tt.want)
		}
	}
}

func TestNewPageResponse(t *testing.T) {
	t.Run("rounds total pages up", func(t *testing.T) {
		resp := NewPageResponse([]string{"a", "b"}, 1, 2, 5)
		if resp.TotalPages != 3 {
			t.Errorf("expected 3 pages, got %d", resp.TotalPages)
		}
	})

	t.Run("nil data becomes empty slice", func(t *testing.T) {
		resp := NewPageResponse[string](nil, 1, 20, 0)
		if resp.Data == nil || len(resp.Data) != 0 {
			t.Errorf("expected empty non-nil data, got %#v", resp.Data)
		}
		if resp.TotalPages != 0 {
			t.Errorf("expected 0 pages, got %d", resp.TotalPages)
		}
	})
}
