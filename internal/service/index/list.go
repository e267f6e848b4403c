package index

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// 自動生成する成果物のキー定義
// 一覧に含めると自己参照になるため、リスティングから除外する
const (
	indexPageSuffix = "index.html"
	searchIndexKey  = "search-index.json"
	searchPageKey   = "search/index.html"
	assetsPrefix    = "assets/"
	searchPrefix    = "search/"
)

// ListFolder は指定プレフィックス直下のサブフォルダとファイルの一覧を取得する
// サブフォルダはプレフィックス文字列の昇順、ファイルはキーの昇順で返す
func ListFolder(client s3.ListObjectsV2APIClient, bucket, prefix string) ([]string, []FileEntry, error) {
	var subs []string
	var files []FileEntry

	paginator := s3.NewListObjectsV2Paginator(client, &s3.ListObjectsV2Input{
		Bucket:    aws.String(bucket),
		Prefix:    aws.String(prefix),
		Delimiter: aws.String("/"),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(context.Background())
		if err != nil {
			return nil, nil, fmt.Errorf("S3オブジェクト一覧取得エラー: %w", err)
		}

		for _, cp := range page.CommonPrefixes {
			sub := aws.ToString(cp.Prefix)
			// 自動生成フォルダは一覧に出さない
			if sub == assetsPrefix || sub == searchPrefix {
				continue
			}
			subs = append(subs, sub)
		}

		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			if isGeneratedKey(key) {
				continue
			}
			files = append(files, FileEntry{
				Key:          key,
				Size:         aws.ToInt64(obj.Size),
				LastModified: aws.ToTime(obj.LastModified),
			})
		}
	}

	sort.Strings(subs)
	sort.Slice(files, func(i, j int) bool { return files[i].Key < files[j].Key })

	return subs, files, nil
}

// isGeneratedKey はディレクトリマーカーおよび本ツールの生成物キーか判定する
func isGeneratedKey(key string) bool {
	return strings.HasSuffix(key, "/") ||
		strings.HasSuffix(key, indexPageSuffix) ||
		key == searchIndexKey ||
		strings.HasPrefix(key, assetsPrefix)
}
