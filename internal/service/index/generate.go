package index

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/schollz/progressbar/v3"
)

// S3API はインデックス生成が必要とするS3操作の集合
type S3API interface {
	s3.ListObjectsV2APIClient
	ObjectPutAPI
}

// Generate は一覧ページ（および検索インデックス）を生成してアップロードする
// 処理は完全に逐次実行で、途中のエラーはそのまま呼び出し元に返す
func Generate(client S3API, opts Options) (*Result, error) {
	excludes, err := NewExcludeSet(opts.Excludes)
	if err != nil {
		return nil, err
	}

	if opts.Title == "" {
		opts.Title = "Index of " + opts.Bucket
	}

	start := normalizePrefix(opts.Prefix)

	prefixes := []string{start}
	if opts.Full {
		prefixes, err = WalkPrefixes(client, opts.Bucket, start)
		if err != nil {
			return nil, err
		}
	}

	result := &Result{}

	var bar *progressbar.ProgressBar
	if opts.Full && len(prefixes) > 1 {
		bar = newGenerateBar(len(prefixes))
	}

	for _, pref := range prefixes {
		if excludes.MatchPrefix(pref) {
			if bar != nil {
				bar.Add(1)
			}
			continue
		}

		subs, files, err := ListFolder(client, opts.Bucket, pref)
		if err != nil {
			return nil, err
		}

		page, err := RenderListing(opts, pref, subs, files, excludes)
		if err != nil {
			return nil, err
		}

		key := pref + indexPageSuffix
		if err := PutObjectString(client, opts.Bucket, key, page, htmlContentType, htmlCacheControl); err != nil {
			return nil, err
		}
		result.UpdatedKeys = append(result.UpdatedKeys, key)
		fmt.Printf("✅ %s を更新しました (フォルダ%d件, ファイル%d件)\n", key, len(subs), len(files))

		if bar != nil {
			bar.Add(1)
		}
	}
	if bar != nil {
		bar.Finish()
		fmt.Println()
	}

	// ページが参照するクライアントスクリプトを毎回上書きアップロードする
	for _, name := range []string{"listing.js", "search.js"} {
		body, err := Asset(name)
		if err != nil {
			return nil, err
		}
		key := assetsPrefix + name
		if err := PutObjectString(client, opts.Bucket, key, body, jsContentType, jsonCacheControl); err != nil {
			return nil, err
		}
		result.UpdatedKeys = append(result.UpdatedKeys, key)
	}

	if opts.WithSearch || opts.Full {
		fmt.Println("🔄 検索インデックスを構築しています...")

		records, err := BuildSearchIndex(client, opts.Bucket, start, opts.BaseURL, excludes)
		if err != nil {
			return nil, err
		}

		blob, err := json.Marshal(records)
		if err != nil {
			return nil, fmt.Errorf("検索インデックスのシリアライズエラー: %w", err)
		}
		if err := PutObjectString(client, opts.Bucket, searchIndexKey, string(blob), jsonContentType, jsonCacheControl); err != nil {
			return nil, err
		}
		result.UpdatedKeys = append(result.UpdatedKeys, searchIndexKey)

		page, err := RenderSearchPage(opts)
		if err != nil {
			return nil, err
		}
		if err := PutObjectString(client, opts.Bucket, searchPageKey, page, htmlContentType, htmlCacheControl); err != nil {
			return nil, err
		}
		result.UpdatedKeys = append(result.UpdatedKeys, searchPageKey)

		result.RecordCount = len(records)
		fmt.Printf("✅ 検索インデックスを更新しました (%d件)\n", len(records))
	}

	return result, nil
}

// normalizePrefix は開始プレフィックスを「末尾スラッシュ付き・先頭スラッシュなし」に正規化する
func normalizePrefix(prefix string) string {
	p := strings.Trim(prefix, "/")
	if p == "" {
		return ""
	}
	return p + "/"
}

// newGenerateBar は--full実行時の進捗バーを生成する
func newGenerateBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(false),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("生成中..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
	)
}
