package index

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHumanSize(t *testing.T) {
	tests := []struct {
		name     string
		size     int64
		expected string
	}{
		{"0バイト", 0, "0.0 B"},
		{"1KB未満", 500, "500.0 B"},
		{"1.5KB", 1536, "1.5 KB"},
		{"1MB", 1024 * 1024, "1.0 MB"},
		{"1GB", 1024 * 1024 * 1024, "1.0 GB"},
		{"1.5GB", 1536 * 1024 * 1024, "1.5 GB"},
		{"1TB", 1024 * 1024 * 1024 * 1024, "1.0 TB"},
		{"1PB", 1024 * 1024 * 1024 * 1024 * 1024, "1.0 PB"},
		{"2048PB", 2048 * 1024 * 1024 * 1024 * 1024 * 1024, "2048.0 PB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HumanSize(tt.size))
		})
	}
}

func TestIsoUTC(t *testing.T) {
	// UTC以外のタイムゾーンでもUTC表記に揃える
	jst := time.FixedZone("JST", 9*60*60)
	ts := time.Date(2025, 3, 15, 9, 30, 0, 0, jst)
	assert.Equal(t, "2025-03-15T00:30:00Z", IsoUTC(ts))

	assert.Equal(t, "", IsoUTC(time.Time{}))
}

func TestBaseFolder(t *testing.T) {
	assert.Equal(t, "Home", BaseFolder(""))
	assert.Equal(t, "Home", BaseFolder("/"))
	assert.Equal(t, "data", BaseFolder("data/"))
	assert.Equal(t, "c", BaseFolder("a/b/c/"))
	assert.Equal(t, "file.csv", BaseFolder("a/b/file.csv"))
}

func TestCrumbs(t *testing.T) {
	crumbs := Crumbs("a/b/c/")

	expected := []Breadcrumb{
		{Name: "Home", Href: "/"},
		{Name: "a", Href: "/a/"},
		{Name: "b", Href: "/a/b/"},
		{Name: "c", Href: "/a/b/c/"},
	}
	assert.Equal(t, expected, crumbs)
}

func TestCrumbsRoot(t *testing.T) {
	crumbs := Crumbs("")

	assert.Equal(t, []Breadcrumb{{Name: "Home", Href: "/"}}, crumbs)
}

func TestFileURL(t *testing.T) {
	assert.Equal(t, "/a/b.csv", FileURL("", "a/b.csv"))
	assert.Equal(t, "https://example.com/a/b.csv", FileURL("https://example.com/", "a/b.csv"))
	// キー内の空白はパーセントエンコードされる
	assert.Equal(t, "/a/my%20file.csv", FileURL("", "a/my file.csv"))
}

func TestExtOf(t *testing.T) {
	assert.Equal(t, "csv", ExtOf("data.csv"))
	assert.Equal(t, "tif", ExtOf("IMAGE.TIF"))
	assert.Equal(t, "gz", ExtOf("archive.tar.gz"))
	assert.Equal(t, "", ExtOf("README"))
	assert.Equal(t, "", ExtOf("trailing."))
}
