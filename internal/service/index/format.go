package index

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// HumanSize はバイト数を人間が読みやすい形式に変換する関数
// 1024区切りでB〜TBまで繰り上げ、それ以上はPBで表示する
func HumanSize(n int64) string {
	f := float64(n)
	for _, unit := range []string{"B", "KB", "MB", "GB", "TB"} {
		if f < 1024 {
			return fmt.Sprintf("%3.1f %s", f, unit)
		}
		f /= 1024
	}
	return fmt.Sprintf("%.1f PB", f)
}

// IsoUTC はタイムスタンプをISO-8601のUTC表記にフォーマットする関数
func IsoUTC(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02T15:04:05Z")
}

// BaseFolder はプレフィックスの末尾セグメント（表示名）を返す
// ルートの場合は "Home" を返す
func BaseFolder(prefix string) string {
	s := strings.Trim(prefix, "/")
	if s == "" {
		return "Home"
	}
	parts := strings.Split(s, "/")
	return parts[len(parts)-1]
}

// Crumbs はプレフィックスをパンくずリストに分解する
// "a/b/c/" → Home(/), a(/a/), b(/a/b/), c(/a/b/c/)
func Crumbs(prefix string) []Breadcrumb {
	out := []Breadcrumb{{Name: "Home", Href: "/"}}
	acc := ""
	for _, part := range strings.Split(strings.Trim(prefix, "/"), "/") {
		if part == "" {
			continue
		}
		acc += part + "/"
		out = append(out, Breadcrumb{Name: part, Href: "/" + acc})
	}
	return out
}

// FileURL はキーからリンクURLを組み立てる
// ベースURL指定時は絶対URL、未指定時はルート相対パスになる
func FileURL(baseURL, key string) string {
	b := strings.TrimRight(baseURL, "/")
	escaped := (&url.URL{Path: "/" + key}).EscapedPath()
	return b + escaped
}

// ExtOf はファイル名から小文字の拡張子を返す（拡張子なしは空文字）
func ExtOf(name string) string {
	n := strings.ToLower(name)
	i := strings.LastIndex(n, ".")
	if i < 0 || i == len(n)-1 {
		return ""
	}
	return n[i+1:]
}
