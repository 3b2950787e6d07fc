// file: internals/helpers/json_response_test.go
package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationFromPage(t *testing.T) {
	tests := []struct {
		name           string
		total          int64
		page           int
		perPage        int
		wantTotalPages int
		wantHasNext    bool
		wantHasPrev    bool
	}{
		{name: "kosong", total: 0, page: 1, perPage: 20, wantTotalPages: 1, wantHasNext: false, wantHasPrev: false},
		{name: "pas satu halaman", total: 20, page: 1, perPage: 20, wantTotalPages: 1, wantHasNext: false, wantHasPrev: false},
		{name: "lebih satu item", total: 21, page: 1, perPage: 20, wantTotalPages: 2, wantHasNext: true, wantHasPrev: false},
		{name: "halaman tengah", total: 100, page: 3, perPage: 20, wantTotalPages: 5, wantHasNext: true, wantHasPrev: true},
		{name: "halaman terakhir", total: 100, page: 5, perPage: 20, wantTotalPages: 5, wantHasNext: false, wantHasPrev: true},
		{name: "page di luar range", total: 10, page: 99, perPage: 20, wantTotalPages: 1, wantHasNext: false, wantHasPrev: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := BuildPaginationFromPage(tt.total, tt.page, tt.perPage)

			assert.Equal(t, tt.wantTotalPages, p.TotalPages)
			assert.Equal(t, tt.wantHasNext, p.HasNext)
			assert.Equal(t, tt.wantHasPrev, p.HasPrev)
			assert.Equal(t, tt.total, p.Total)
		})
	}
}

func TestBuildPaginationFromPageNormalizesInput(t *testing.T) {
	p := BuildPaginationFromPage(50, 0, 0)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, 3, p.TotalPages)
}

func TestLenOf(t *testing.T) {
	assert.Equal(t, 0, lenOf(nil))
	assert.Equal(t, 3, lenOf([]int{1, 2, 3}))
	assert.Equal(t, 0, lenOf([]string{}))
	assert.Equal(t, 0, lenOf(42)) // bukan koleksi
}
