package cmd

import (
	"fmt"

	awsauth "s3idx/internal/aws"
	cfsvc "s3idx/internal/service/cloudfront"
	"s3idx/internal/service/common"
	"s3idx/internal/service/index"

	"github.com/spf13/cobra"
)

// genCmd represents the gen command
var genCmd = &cobra.Command{
	Use:   "gen <bucket>",
	Short: "一覧ページを生成してバケットにアップロードするコマンド",
	Long: `S3バケットのプレフィックス階層を走査して、フォルダごとの一覧HTMLページを生成し、
バケットにアップロードします。--fullで到達可能な全プレフィックスを再帰処理し、
あわせて検索インデックス (search-index.json) と検索ページも再構築します。

【使い方】
  ` + AppName + ` gen my-bucket                                  # ルート直下の一覧のみ生成
  ` + AppName + ` gen my-bucket -p data/ --full                  # data/ 配下を再帰的に生成
  ` + AppName + ` gen my-bucket --full -b https://data.example.com
  ` + AppName + ` gen my-bucket --full -e "logo*" -d E2ABC123DEF456 -w

【例】
  ` + AppName + ` gen my-bucket --full --with-search -b https://data.example.com
  → 全プレフィックスの一覧ページと検索インデックスを再生成します`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmdCobra *cobra.Command, args []string) error {
		bucket := args[0]
		baseURL, _ := cmdCobra.Flags().GetString("base-url")
		prefix, _ := cmdCobra.Flags().GetString("prefix")
		full, _ := cmdCobra.Flags().GetBool("full")
		withSearch, _ := cmdCobra.Flags().GetBool("with-search")
		title, _ := cmdCobra.Flags().GetString("title")
		excludes, _ := cmdCobra.Flags().GetStringSlice("exclude")
		distributionId, _ := cmdCobra.Flags().GetString("invalidate")
		wait, _ := cmdCobra.Flags().GetBool("wait")

		clients, err := awsauth.NewClients(awsCtx)
		if err != nil {
			return fmt.Errorf("❌ AWS設定の読み込みに失敗: %w", err)
		}

		// バケットのリージョンを判定してからアクセスする
		bucketRegion := index.DiscoverBucketRegion(clients.S3(), bucket)
		fmt.Printf("🔍 バケット %s のリージョン: %s\n", bucket, bucketRegion)
		s3Client := clients.S3ForRegion(bucketRegion)

		result, err := index.Generate(s3Client, index.Options{
			Bucket:     bucket,
			BaseURL:    baseURL,
			Prefix:     prefix,
			Full:       full,
			WithSearch: withSearch,
			Title:      title,
			Excludes:   excludes,
		})
		if err != nil {
			return fmt.Errorf("❌ インデックス生成でエラー: %w", err)
		}

		common.PrintSimpleList(common.ListOutput{
			Title:        "更新したオブジェクト",
			Items:        result.UpdatedKeys,
			ResourceName: "オブジェクト",
			ShowCount:    true,
		})

		// CDNキャッシュの無効化（オプション）
		if distributionId != "" {
			paths := invalidationPaths(full, result.UpdatedKeys)
			if err := cfsvc.InvalidatePaths(clients.CloudFront(), distributionId, paths, wait); err != nil {
				return fmt.Errorf("❌ %w", err)
			}
		}

		return nil
	},
}

// invalidationPaths は無効化対象パスを決定する
// 全体再生成時は個別パスを列挙せず /* で一括無効化する
func invalidationPaths(full bool, updatedKeys []string) []string {
	if full {
		return []string{"/*"}
	}
	paths := make([]string, 0, len(updatedKeys))
	for _, key := range updatedKeys {
		paths = append(paths, "/"+key)
	}
	return paths
}

func init() {
	RootCmd.AddCommand(genCmd)

	genCmd.Flags().StringP("base-url", "b", "", "絶対リンク用のベースURL (例: https://data.example.com)")
	genCmd.Flags().StringP("prefix", "p", "", "開始プレフィックス（デフォルトはルート)")
	genCmd.Flags().BoolP("full", "f", false, "到達可能な全プレフィックスを再帰処理")
	genCmd.Flags().BoolP("with-search", "s", false, "検索インデックスと検索ページも生成")
	genCmd.Flags().StringP("title", "t", "", "ページタイトル（デフォルト: Index of <bucket>)")
	genCmd.Flags().StringSliceP("exclude", "e", nil, "除外するフォルダ名のglobパターン")
	genCmd.Flags().StringP("invalidate", "d", "", "アップロード後にキャッシュを無効化するCloudFrontディストリビューションID")
	genCmd.Flags().BoolP("wait", "w", false, "キャッシュ無効化の完了まで待機")
}
