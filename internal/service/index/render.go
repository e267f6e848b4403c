package index

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed assets/*.js
var assetFS embed.FS

var pageTemplates = template.Must(template.New("pages").ParseFS(templateFS, "templates/*.tmpl"))

// FolderRow は一覧ページのサブフォルダ1行分
type FolderRow struct {
	Name string
	URL  string
}

// FileRow は一覧ページのファイル1行分
type FileRow struct {
	Name         string
	URL          string
	Badge        Badge
	Size         string
	LastModified string
}

// crumbRow はパンくず1要素（最終要素だけリンクにしない）
type crumbRow struct {
	Name   string
	Href   string
	Active bool
}

// listingData は一覧ページテンプレートへの入力
type listingData struct {
	Title     string
	Crumbs    []crumbRow
	Folders   []FolderRow
	Files     []FileRow
	HomeURL   string
	SearchURL string
	ScriptURL string
	Config    template.JS
}

// searchPageData は検索ページテンプレートへの入力
type searchPageData struct {
	Title     string
	HomeURL   string
	ScriptURL string
	Config    template.JS
}

// pageConfig はクライアントスクリプトへ渡す設定ブロブ
// ページ内にJSONとして埋め込み、スクリプト本体は静的アセットとして配信する
type pageConfig struct {
	Prefix string `json:"prefix"`
	Index  string `json:"index"`
}

// RenderListing はプレフィックスの一覧情報からHTMLページを生成する
func RenderListing(opts Options, prefix string, subs []string, files []FileEntry, excludes *ExcludeSet) (string, error) {
	base := strings.TrimRight(opts.BaseURL, "/")

	crumbs := Crumbs(prefix)
	rows := make([]crumbRow, len(crumbs))
	for i, c := range crumbs {
		rows[i] = crumbRow{
			Name:   c.Name,
			Href:   base + c.Href,
			Active: i == len(crumbs)-1,
		}
	}

	var folders []FolderRow
	for _, sub := range subs {
		if excludes.MatchPrefix(sub) {
			continue
		}
		folders = append(folders, FolderRow{
			Name: BaseFolder(sub),
			URL:  FileURL(base, sub),
		})
	}

	fileRows := make([]FileRow, 0, len(files))
	for _, f := range files {
		name := BaseFolder(f.Key)
		fileRows = append(fileRows, FileRow{
			Name:         name,
			URL:          FileURL(base, f.Key),
			Badge:        BadgeFor(name),
			Size:         HumanSize(f.Size),
			LastModified: IsoUTC(f.LastModified),
		})
	}

	config, err := marshalConfig(pageConfig{
		Prefix: strings.Trim(prefix, "/"),
		Index:  base + "/" + searchIndexKey,
	})
	if err != nil {
		return "", err
	}

	data := listingData{
		Title:     opts.Title,
		Crumbs:    rows,
		Folders:   folders,
		Files:     fileRows,
		HomeURL:   homeURL(base),
		SearchURL: base + "/search/",
		ScriptURL: base + "/" + assetsPrefix + "listing.js",
		Config:    config,
	}

	var sb strings.Builder
	if err := pageTemplates.ExecuteTemplate(&sb, "listing.html.tmpl", data); err != nil {
		return "", fmt.Errorf("一覧ページのレンダリングエラー: %w", err)
	}
	return sb.String(), nil
}

// RenderSearchPage は全体検索ページのHTMLを生成する
func RenderSearchPage(opts Options) (string, error) {
	base := strings.TrimRight(opts.BaseURL, "/")

	config, err := marshalConfig(pageConfig{
		Index: base + "/" + searchIndexKey,
	})
	if err != nil {
		return "", err
	}

	data := searchPageData{
		Title:     opts.Title,
		HomeURL:   homeURL(base),
		ScriptURL: base + "/" + assetsPrefix + "search.js",
		Config:    config,
	}

	var sb strings.Builder
	if err := pageTemplates.ExecuteTemplate(&sb, "search.html.tmpl", data); err != nil {
		return "", fmt.Errorf("検索ページのレンダリングエラー: %w", err)
	}
	return sb.String(), nil
}

// Asset は埋め込み済みクライアントスクリプトの中身を返す
func Asset(name string) (string, error) {
	body, err := assetFS.ReadFile("assets/" + name)
	if err != nil {
		return "", fmt.Errorf("アセット %s の読み込みエラー: %w", name, err)
	}
	return string(body), nil
}

func marshalConfig(cfg pageConfig) (template.JS, error) {
	blob, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("設定ブロブのシリアライズエラー: %w", err)
	}
	return template.JS(blob), nil
}

func homeURL(base string) string {
	if base == "" {
		return "/"
	}
	return base
}
