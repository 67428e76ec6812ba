// Package search queries the GitHub repository search API.
//
// [Client] performs a single page request through go-github, authenticated
// with the classic "Authorization: token <TOKEN>" header. [FetchPages] fans
// a query out over several pages concurrently and merges whatever succeeds:
//
//	client, _ := search.NewClient(ctx, token)
//	repos, err := search.FetchPages(ctx, client, search.KeywordQuery("log4j"), 5, 10, nil)
//
// A failed page never aborts the others. err aggregates the failures, repos
// always holds the records of the pages that succeeded, in no particular
// order.
package search
