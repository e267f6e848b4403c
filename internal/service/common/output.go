package common

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ListOutput はリスト表示の共通構造体
type ListOutput struct {
	Title        string   // 例: "更新したインデックス一覧"
	Items        []string // 表示するアイテムのリスト
	ResourceName string   // 例: "インデックス", "ファイル"
	ShowCount    bool     // 合計数を表示するか
}

// TableColumn はテーブルの列定義
type TableColumn struct {
	Header string
}

// PrintSimpleList はシンプルな箇条書きリストを表示
func PrintSimpleList(output ListOutput) {
	// タイトル表示
	fmt.Printf("%s:\n", output.Title)

	// アイテムがない場合
	if len(output.Items) == 0 {
		fmt.Printf("該当する%sはありませんでした\n", output.ResourceName)
		return
	}

	// 各アイテムを表示
	for _, item := range output.Items {
		fmt.Printf("  - %s\n", item)
	}

	// 合計数表示
	if output.ShowCount {
		fmt.Printf("\n合計: %d個の%s\n", len(output.Items), output.ResourceName)
	}
}

// FormatListError はリスト取得エラーを統一フォーマットで返す
func FormatListError(service string, err error) error {
	return fmt.Errorf("%s %s一覧取得でエラー: %w", ErrorIcon, service, err)
}

// PrintTable はテーブル形式でデータを表示する
// 列幅は日本語タイトルも考慮して表示幅ベースで計算する
func PrintTable(title string, columns []TableColumn, data [][]string) {
	if title != "" {
		fmt.Printf("\n%s:\n", title)
	}

	// 各列の最大表示幅を計算（ヘッダーとデータの中で最大値を取得）
	colWidths := make([]int, len(columns))
	for i, col := range columns {
		colWidths[i] = runewidth.StringWidth(col.Header)
	}
	for _, row := range data {
		for i, cell := range row {
			if i < len(colWidths) {
				if w := runewidth.StringWidth(cell); w > colWidths[i] {
					colWidths[i] = w
				}
			}
		}
	}

	// ヘッダー表示
	for i, col := range columns {
		fmt.Printf("%s ", runewidth.FillRight(col.Header, colWidths[i]))
	}
	fmt.Println()

	// 区切り線
	for i := range columns {
		fmt.Printf("%s ", strings.Repeat("-", colWidths[i]))
	}
	fmt.Println()

	// データ行
	for _, row := range data {
		for i, cell := range row {
			if i < len(columns) {
				fmt.Printf("%s ", runewidth.FillRight(cell, colWidths[i]))
			}
		}
		fmt.Println()
	}
}
