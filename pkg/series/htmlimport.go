package series

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/richard-senior/standings/internal/logger"
)

// ImportHTML builds a table from the first <table> element of an HTML
// document, for pulling in a standings page saved to disk. Expected cell
// order per row: name, wins, draws, losses, goals as "scored-conceded".
// Rows containing <th> cells are treated as headers and skipped. The
// input is a reader over a local document; nothing is fetched.
func ImportHTML(r io.Reader) (*Table, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html document: %w", err)
	}

	root := doc.Find("table").First()
	if root.Length() == 0 {
		return nil, fmt.Errorf("%w: document contains no table element", ErrParse)
	}

	t := NewTable()
	var rowErr error
	root.Find("tr").EachWithBreak(func(i int, row *goquery.Selection) bool {
		if row.Find("th").Length() > 0 {
			return true
		}
		cells := row.Find("td")
		if cells.Length() == 0 {
			return true
		}
		if cells.Length() != 5 {
			rowErr = fmt.Errorf("%w: table row %d has %d cells, want 5", ErrParse, i, cells.Length())
			return false
		}
		name := strings.TrimSpace(cells.Eq(0).Text())
		scored, conceded, err := parseGoals(cells.Eq(4).Text())
		if err != nil {
			rowErr = fmt.Errorf("%w: table row %d: %v", ErrParse, i, err)
			return false
		}
		err = t.Add(name,
			strings.TrimSpace(cells.Eq(1).Text()),
			strings.TrimSpace(cells.Eq(2).Text()),
			strings.TrimSpace(cells.Eq(3).Text()),
			scored, conceded)
		if err != nil {
			rowErr = fmt.Errorf("%w: table row %d: %v", ErrParse, i, err)
			return false
		}
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}

	logger.Debug("Imported table from html", t.Len())
	return t, nil
}
