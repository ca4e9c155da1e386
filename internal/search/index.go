// Package search provides full-text search over the loaded post
// collection. The index lives entirely in memory: it is built once
// after the load completes and discarded with the session.
package search

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
	"github.com/blevesearch/bleve/v2/mapping"
	bleveQuery "github.com/blevesearch/bleve/v2/search/query"

	"postcard/internal/post"
)

// Result is a single search hit. Position is the post's index in the
// loaded collection, so the pager can jump straight to it.
type Result struct {
	Position int
	Post     post.Post
	Score    float64
}

// Index is a memory-only bleve index over the post collection.
type Index struct {
	posts []post.Post
	idx   bleve.Index
}

type postDoc struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// NewIndex builds the in-memory index for a loaded collection.
func NewIndex(posts []post.Post) (*Index, error) {
	idx, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, err
	}

	batch := idx.NewBatch()
	for i, p := range posts {
		doc := postDoc{Title: p.Title, Body: p.Body}
		if err := batch.Index(strconv.Itoa(i), doc); err != nil {
			idx.Close()
			return nil, err
		}
	}
	if err := idx.Batch(batch); err != nil {
		idx.Close()
		return nil, err
	}

	return &Index{posts: posts, idx: idx}, nil
}

func buildIndexMapping() mapping.IndexMapping {
	im := bleve.NewIndexMapping()
	im.DefaultAnalyzer = standard.Name

	dm := bleve.NewDocumentMapping()

	title := bleve.NewTextFieldMapping()
	title.Analyzer = standard.Name
	title.Store = false
	dm.AddFieldMappingsAt("title", title)

	body := bleve.NewTextFieldMapping()
	body.Analyzer = standard.Name
	body.Store = false
	dm.AddFieldMappingsAt("body", body)

	im.DefaultMapping = dm
	return im
}

// Search returns up to limit hits ordered by relevance. Queries shorter
// than two characters return no hits rather than an error.
func (x *Index) Search(query string, limit int) ([]Result, error) {
	if len(strings.TrimSpace(query)) < 2 {
		return []Result{}, nil
	}

	tokens := tokenize(query)
	var qs []bleveQuery.Query
	for _, tok := range tokens {
		// title^4
		qt := bleve.NewMatchQuery(tok)
		qt.SetField("title")
		qt.SetBoost(4.0)
		qs = append(qs, qt)
		qtp := bleve.NewPrefixQuery(strings.ToLower(tok))
		qtp.SetField("title")
		qtp.SetBoost(3.5)
		qs = append(qs, qtp)
		// body^1
		qb := bleve.NewMatchQuery(tok)
		qb.SetField("body")
		qb.SetBoost(1.0)
		qs = append(qs, qb)
		qbp := bleve.NewPrefixQuery(strings.ToLower(tok))
		qbp.SetField("body")
		qbp.SetBoost(0.8)
		qs = append(qs, qbp)
	}
	if len(qs) == 0 {
		return []Result{}, nil
	}

	q := bleve.NewDisjunctionQuery(qs...)
	req := bleve.NewSearchRequestOptions(q, limit, 0, false)
	res, err := x.idx.Search(req)
	if err != nil {
		return nil, err
	}

	out := make([]Result, 0, len(res.Hits))
	for _, h := range res.Hits {
		pos, err := strconv.Atoi(h.ID)
		if err != nil || pos < 0 || pos >= len(x.posts) {
			continue
		}
		out = append(out, Result{
			Position: pos,
			Post:     x.posts[pos],
			Score:    h.Score,
		})
	}
	return out, nil
}

// DocCount reports the number of indexed posts.
func (x *Index) DocCount() (uint64, error) {
	return x.idx.DocCount()
}

// Close releases the index.
func (x *Index) Close() error {
	return x.idx.Close()
}

// tokenize splits a query into lowercase word terms.
func tokenize(query string) []string {
	fields := strings.FieldsFunc(query, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) > 1 {
			out = append(out, strings.ToLower(f))
		}
	}
	return out
}
