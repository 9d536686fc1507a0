package orders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/superma0035/zapdine/pkg/types"
)

func TestSearch(t *testing.T) {
	items := []types.MenuItem{
		{ID: "1", Name: "Paneer Tikka", Description: "grilled cottage cheese"},
		{ID: "2", Name: "Masala Dosa", Description: "crisp rice crepe"},
		{ID: "3", Name: "Cold Coffee"},
	}

	tests := []struct {
		term string
		want []string
	}{
		{"", []string{"1", "2", "3"}},
		{"  ", []string{"1", "2", "3"}},
		{"dosa", []string{"2"}},
		{"CHEESE", []string{"1"}},
		{"co", []string{"1", "3"}},
		{"biryani", []string{}},
	}
	for _, tt := range tests {
		got := Search(items, tt.term)
		ids := make([]string, 0, len(got))
		for _, item := range got {
			ids = append(ids, item.ID)
		}
		assert.Equal(t, tt.want, ids, "term %q", tt.term)
	}
}

func TestStartOfDay(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	at := time.Date(2026, 10, 17, 0, 30, 0, 0, ist)
	assert.Equal(t, time.Date(2026, 10, 17, 0, 0, 0, 0, ist), startOfDay(at))
}
