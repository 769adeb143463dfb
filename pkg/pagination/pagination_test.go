package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func paramsFor(t *testing.T, target string) Params {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	c := e.NewContext(req, httptest.NewRecorder())
	return FromContext(c)
}

func TestFromContext(t *testing.T) {
	tests := []struct {
		target     string
		wantLimit  int
		wantOffset int
	}{
		{"/?limit=10&offset=30", 10, 30},
		{"/", DefaultLimit, 0},
		{"/?limit=0", DefaultLimit, 0},
		{"/?limit=-5", DefaultLimit, 0},
		{"/?limit=500", MaxLimit, 0},
		{"/?offset=-1", DefaultLimit, 0},
	}
	for _, tt := range tests {
		p := paramsFor(t, tt.target)
		if p.Limit != tt.wantLimit || p.Offset != tt.wantOffset {
			t.Errorf("%s: got limit=%d offset=%d, want limit=%d offset=%d",
				tt.target, p.Limit, p.Offset, tt.wantLimit, tt.wantOffset)
		}
	}
}

func TestParams_SQL(t *testing.T) {
	p := Params{Limit: 25, Offset: 50}
	if got := p.SQL(); got != "LIMIT 25 OFFSET 50" {
		t.Errorf("SQL() = %q", got)
	}
}

func TestParams_Navigation(t *testing.T) {
	p := Params{Limit: 20, Offset: 20}

	if !p.HasNext(100) {
		t.Error("expected next page at offset 20 of 100")
	}
	if p.HasNext(40) {
		t.Error("expected no next page at offset 20 of 40")
	}
	if !p.HasPrevious() {
		t.Error("expected previous page")
	}
	if p.NextOffset() != 40 {
		t.Errorf("NextOffset() = %d", p.NextOffset())
	}
	if p.PreviousOffset() != 0 {
		t.Errorf("PreviousOffset() = %d", p.PreviousOffset())
	}

	first := Params{Limit: 20, Offset: 0}
	if first.HasPrevious() {
		t.Error("first page has no previous")
	}
	if first.PreviousOffset() != 0 {
		t.Errorf("PreviousOffset() clamped = %d", first.PreviousOffset())
	}
}

func TestNewResponse(t *testing.T) {
	resp := NewResponse([]string{"a", "b"}, 10, 2, 0)
	if !resp.HasMore {
		t.Error("expected has_more with 10 total at offset 0")
	}

	resp = NewResponse([]string{"a"}, 1, 20, 0)
	if resp.HasMore {
		t.Error("expected no more with 1 total")
	}
}
