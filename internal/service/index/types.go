package index

import "time"

// FileEntry はプレフィックス直下のファイル情報を格納する構造体
type FileEntry struct {
	Key          string
	Size         int64
	LastModified time.Time
}

// Breadcrumb はパンくずリストの1要素
type Breadcrumb struct {
	Name string
	Href string
}

// Badge はファイル種別バッジのラベルと色
type Badge struct {
	Label string
	Color string // Bootstrapの色クラス名 (primary, info, ...)
}

// SearchRecord は検索インデックスの1レコード
// フォルダとファイルの両方をこの型で表現する
type SearchRecord struct {
	Type         string `json:"type"` // "folder" または "file"
	Name         string `json:"name"`
	Path         string `json:"path"`
	URL          string `json:"url"`
	Size         string `json:"size,omitempty"`
	LastModified string `json:"last_modified,omitempty"`
	Ext          string `json:"ext,omitempty"`
}

// Options はインデックス生成のオプション
type Options struct {
	Bucket     string   // 必須: 対象バケット名
	BaseURL    string   // オプション: 絶対リンク用のベースURL
	Prefix     string   // オプション: 開始プレフィックス（デフォルトはルート）
	Full       bool     // オプション: 到達可能な全プレフィックスを再帰処理
	WithSearch bool     // オプション: 検索インデックスと検索ページも生成
	Title      string   // オプション: ページタイトル
	Excludes   []string // オプション: 除外するフォルダ名のglobパターン
}

// Result はインデックス生成の結果
type Result struct {
	UpdatedKeys []string // アップロードしたオブジェクトキー
	RecordCount int      // 検索インデックスのレコード数（未生成時は0）
}
