package index

import (
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// BuildSearchIndex は到達可能な全プレフィックスを走査して検索レコードを構築する
// フォルダ1件につき1レコード、ファイル1件につき1レコードを生成する。
// 一覧ページと同じリスティング呼び出しから導出するため、同一実行内では
// 両者が同じスナップショットを反映する
func BuildSearchIndex(client s3.ListObjectsV2APIClient, bucket, start, baseURL string, excludes *ExcludeSet) ([]SearchRecord, error) {
	base := strings.TrimRight(baseURL, "/")

	prefixes, err := WalkPrefixes(client, bucket, start)
	if err != nil {
		return nil, err
	}

	var records []SearchRecord
	for _, pref := range prefixes {
		if excludes.MatchPrefix(pref) {
			continue
		}

		path := "/" + pref
		records = append(records, SearchRecord{
			Type: "folder",
			Name: BaseFolder(pref),
			Path: path,
			URL:  base + path,
		})

		_, files, err := ListFolder(client, bucket, pref)
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			if excludes.MatchKey(f.Key) {
				continue
			}
			name := BaseFolder(f.Key)
			path := "/" + f.Key
			records = append(records, SearchRecord{
				Type:         "file",
				Name:         name,
				Path:         path,
				URL:          base + path,
				Size:         HumanSize(f.Size),
				LastModified: IsoUTC(f.LastModified),
				Ext:          strings.ToUpper(ExtOf(name)),
			})
		}
	}

	return records, nil
}
