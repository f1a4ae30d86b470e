package table

import (
	"context"
	"strings"

	"github.com/beltran/gohive"
)

// FromHive drains a gohive cursor into a columnar table. Column names are
// taken from the cursor description with any "table." prefix stripped.
func FromHive(ctx context.Context, cursor *gohive.Cursor) (Table, error) {
	var names []string
	for _, d := range cursor.Description() {
		if len(d) == 0 {
			continue
		}
		name := d[0]
		if _, colName, ok := strings.Cut(name, "."); ok {
			name = colName
		}
		names = append(names, name)
	}

	var data [][]any
	for cursor.HasMore(ctx) {
		row := make([]any, len(names))
		rowPtrs := make([]any, len(names))
		for i := range row {
			rowPtrs[i] = &row[i]
		}
		cursor.FetchOne(ctx, rowPtrs...)
		if cursor.Err != nil {
			return nil, cursor.Err
		}
		data = append(data, row)
	}
	if err := cursor.Error(); err != nil {
		return nil, err
	}
	return FromRows(names, data)
}
