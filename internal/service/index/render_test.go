package index

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderListingFileRows(t *testing.T) {
	now := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	files := []FileEntry{
		{Key: "data/a.csv", Size: 100, LastModified: now},
		{Key: "data/b.tif", Size: 1536, LastModified: now},
	}

	page, err := RenderListing(Options{Bucket: "test-bucket", Title: "Test Data"}, "data/", nil, files, nil)
	require.NoError(t, err)

	// ファイル行はちょうど2行、それぞれのバッジが付く
	assert.Equal(t, 2, strings.Count(page, `class="badge`))
	assert.Contains(t, page, `<span class="badge bg-success ms-2">CSV</span>`)
	assert.Contains(t, page, `<span class="badge bg-info ms-2">TIF</span>`)
	assert.Contains(t, page, `href="/data/a.csv"`)
	assert.Contains(t, page, `href="/data/b.tif"`)
	assert.Contains(t, page, "100.0 B")
	assert.Contains(t, page, "1.5 KB")
	assert.Contains(t, page, "2025-04-01T12:00:00Z")
	assert.Contains(t, page, "(no subfolders)")
}

func TestRenderListingBreadcrumbs(t *testing.T) {
	page, err := RenderListing(Options{Bucket: "test-bucket", Title: "t"}, "a/b/c/", nil, nil, nil)
	require.NoError(t, err)

	assert.Contains(t, page, `<a href="/">Home</a>`)
	assert.Contains(t, page, `<a href="/a/">a</a>`)
	assert.Contains(t, page, `<a href="/a/b/">b</a>`)
	// 末尾のパンくずはリンクにしない
	assert.NotContains(t, page, `<a href="/a/b/c/">c</a>`)
	assert.Contains(t, page, `<li class="breadcrumb-item active" aria-current="page">c</li>`)
}

func TestRenderListingBaseURL(t *testing.T) {
	subs := []string{"data/docs/"}
	page, err := RenderListing(Options{Bucket: "b", Title: "t", BaseURL: "https://data.example.com/"}, "data/", subs, nil, nil)
	require.NoError(t, err)

	assert.Contains(t, page, `href="https://data.example.com/data/docs/"`)
	// HomeのパンくずにもベースURLが付く
	assert.Contains(t, page, `<a href="https://data.example.com/">Home</a>`)
	assert.Contains(t, page, `src="https://data.example.com/assets/listing.js"`)
	assert.Contains(t, page, `https://data.example.com/search-index.json`)
}

func TestRenderListingExcludesFolders(t *testing.T) {
	excludes, err := NewExcludeSet([]string{"logo"})
	require.NoError(t, err)

	subs := []string{"docs/", "logo/"}
	page, err := RenderListing(Options{Bucket: "b", Title: "t"}, "", subs, nil, excludes)
	require.NoError(t, err)

	assert.Contains(t, page, `>docs/</a>`)
	assert.NotContains(t, page, `>logo/</a>`)
}

func TestRenderListingConfigBlob(t *testing.T) {
	page, err := RenderListing(Options{Bucket: "b", Title: "t"}, "a/b/", nil, nil, nil)
	require.NoError(t, err)

	// クライアントスクリプトは設定ブロブ経由でパラメータを受け取る
	assert.Contains(t, page, `window.S3IDX = {"prefix":"a/b","index":"/search-index.json"};`)
	assert.Contains(t, page, `src="/assets/listing.js"`)
}

func TestRenderListingEmptyFolder(t *testing.T) {
	page, err := RenderListing(Options{Bucket: "b", Title: "t"}, "", nil, nil, nil)
	require.NoError(t, err)

	assert.Contains(t, page, "(no subfolders)")
	assert.Contains(t, page, "(no files)")
}

func TestRenderSearchPage(t *testing.T) {
	page, err := RenderSearchPage(Options{Bucket: "b", Title: "My Data"})
	require.NoError(t, err)

	assert.Contains(t, page, "My Data")
	assert.Contains(t, page, `window.S3IDX = {"prefix":"","index":"/search-index.json"};`)
	assert.Contains(t, page, `src="/assets/search.js"`)
}

func TestAsset(t *testing.T) {
	for _, name := range []string{"listing.js", "search.js"} {
		body, err := Asset(name)
		require.NoError(t, err)
		assert.NotEmpty(t, body)
	}

	_, err := Asset("missing.js")
	assert.Error(t, err)
}
