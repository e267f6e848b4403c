package cmd

import (
	"fmt"

	awsauth "s3idx/internal/aws"
	"s3idx/internal/service/common"
	"s3idx/internal/service/index"

	"github.com/spf13/cobra"
)

// lsCmd represents the ls command
var lsCmd = &cobra.Command{
	Use:   "ls <bucket>",
	Short: "プレフィックス直下の一覧を表示するコマンド",
	Long: `生成対象と同じリスティングロジックで、プレフィックス直下のサブフォルダと
ファイルの一覧を表示します。アップロードは行いません。

【使い方】
  ` + AppName + ` ls my-bucket               # ルート直下を表示
  ` + AppName + ` ls my-bucket -p data/      # data/ 直下を表示`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmdCobra *cobra.Command, args []string) error {
		bucket := args[0]
		prefix, _ := cmdCobra.Flags().GetString("prefix")

		clients, err := awsauth.NewClients(awsCtx)
		if err != nil {
			return fmt.Errorf("❌ AWS設定の読み込みに失敗: %w", err)
		}

		bucketRegion := index.DiscoverBucketRegion(clients.S3(), bucket)
		s3Client := clients.S3ForRegion(bucketRegion)

		subs, files, err := index.ListFolder(s3Client, bucket, prefix)
		if err != nil {
			return common.FormatListError("オブジェクト", err)
		}

		if len(subs) == 0 && len(files) == 0 {
			fmt.Printf("🔍 s3://%s/%s には何も見つかりませんでした\n", bucket, prefix)
			return nil
		}

		columns := []common.TableColumn{
			{Header: "名前"},
			{Header: "種別"},
			{Header: "サイズ"},
			{Header: "更新日時"},
		}
		data := make([][]string, 0, len(subs)+len(files))
		for _, sub := range subs {
			data = append(data, []string{index.BaseFolder(sub) + "/", "フォルダ", "", ""})
		}
		for _, f := range files {
			data = append(data, []string{
				index.BaseFolder(f.Key),
				index.BadgeFor(index.BaseFolder(f.Key)).Label,
				index.HumanSize(f.Size),
				index.IsoUTC(f.LastModified),
			})
		}

		title := fmt.Sprintf("s3://%s/%s", bucket, prefix)
		common.PrintTable(title, columns, data)

		return nil
	},
}

func init() {
	RootCmd.AddCommand(lsCmd)

	lsCmd.Flags().StringP("prefix", "p", "", "表示するプレフィックス（デフォルトはルート)")
}
