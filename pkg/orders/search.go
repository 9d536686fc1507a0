package orders

import (
	"strings"

	"github.com/superma0035/zapdine/pkg/types"
)

// Search keeps the items whose name or description contains term, ignoring
// case. An empty term returns items unchanged.
func Search(items []types.MenuItem, term string) []types.MenuItem {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return items
	}
	out := make([]types.MenuItem, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), term) ||
			strings.Contains(strings.ToLower(item.Description), term) {
			out = append(out, item)
		}
	}
	return out
}
