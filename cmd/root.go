package cmd

import (
	"errors"
	"os"

	awsauth "s3idx/internal/aws"

	"github.com/spf13/cobra"
)

// AppName はCLIの実行ファイル名
const AppName = "s3idx"

var (
	region  string
	profile string

	// awsCtx はコマンド実行時の認証コンテキスト
	awsCtx awsauth.Context
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   AppName,
	Short: "S3バケットの静的インデックスページを生成するツール",
	Long: `S3バケットのキー階層を走査して、フォルダごとの一覧HTMLページと
検索用のJSONインデックスを生成し、バケットにアップロードするツールです。
生成物はCloudFront経由で配信されることを想定しています。`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&region, "region", "R", "", "AWSリージョン")
	RootCmd.PersistentFlags().StringVarP(&profile, "profile", "P", "", "AWSプロファイル")

	// コマンド実行前に共通でプロファイルチェックを行う
	RootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// ヘルプコマンドの場合はスキップ
		if cmd.Name() == "help" {
			return nil
		}
		if err := checkAndSetProfile(cmd); err != nil {
			return err
		}
		awsCtx = awsauth.Context{Profile: profile, Region: region}
		return nil
	}
}

// checkAndSetProfile はプロファイルの確認と設定を行うプライベート関数
func checkAndSetProfile(cmd *cobra.Command) error {
	// プロファイルがすでに指定されている場合は何もしない
	if profile != "" {
		return nil
	}
	// 環境変数からプロファイル取得を試みる
	envProfile := os.Getenv("AWS_PROFILE")
	if envProfile == "" {
		// プロファイルが見つからない場合はエラー
		cmd.SilenceUsage = true // エラー時のUsage表示を抑制
		return errors.New("❌ エラー: プロファイルが指定されていません。-Pオプションまたは AWS_PROFILE 環境変数を指定してください")
	}
	// 環境変数からプロファイルを設定
	profile = envProfile
	// versionコマンド以外の場合のみメッセージを表示
	if cmd.Name() != "version" {
		cmd.Println("🔍 環境変数 AWS_PROFILE の値 '" + profile + "' を使用します")
	}
	return nil
}
