package repository

import (
	"math"
	"strings"
)

const (
	// ItemsPerPage is the row count of every paginated list.
	ItemsPerPage = 6
	// LatestInvoicesLimit is the size of the dashboard's latest invoices card.
	LatestInvoicesLimit = 5

	// maxPage keeps Offset from overflowing.
	maxPage = math.MaxInt/ItemsPerPage + 1
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching query as a literal substring.
// An empty query matches everything.
func containsPattern(query string) string {
	return "%" + likeEscaper.Replace(query) + "%"
}

// Offset returns the row offset of a 1-based page. Pages below 1 read as 1;
// absurdly large pages are capped so the offset stays past every row.
func Offset(page int) int {
	if page < 1 {
		page = 1
	}
	if page > maxPage {
		page = maxPage
	}
	return (page - 1) * ItemsPerPage
}

// TotalPages is ceil(count / ItemsPerPage).
func TotalPages(count int64) int {
	return int((count + ItemsPerPage - 1) / ItemsPerPage)
}
