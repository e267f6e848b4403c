package cloudfront

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront/types"
)

// CreateInvalidation はCloudFrontディストリビューションのキャッシュを無効化します
func CreateInvalidation(client *cloudfront.Client, distributionId string, paths []string) (string, error) {
	// CallerReferenceとして現在時刻を使用
	callerReference := fmt.Sprintf("s3idx-%d", time.Now().Unix())

	input := &cloudfront.CreateInvalidationInput{
		DistributionId: aws.String(distributionId),
		InvalidationBatch: &types.InvalidationBatch{
			CallerReference: aws.String(callerReference),
			Paths: &types.Paths{
				Quantity: aws.Int32(int32(len(paths))),
				Items:    paths,
			},
		},
	}

	result, err := client.CreateInvalidation(context.Background(), input)
	if err != nil {
		return "", err
	}

	return *result.Invalidation.Id, nil
}

// WaitForInvalidation は無効化が完了するまで待機します
func WaitForInvalidation(client *cloudfront.Client, distributionId, invalidationId string) error {
	for {
		input := &cloudfront.GetInvalidationInput{
			DistributionId: aws.String(distributionId),
			Id:             aws.String(invalidationId),
		}

		result, err := client.GetInvalidation(context.Background(), input)
		if err != nil {
			return err
		}

		status := *result.Invalidation.Status
		fmt.Printf("   現在のステータス: %s\n", status)

		if status == "Completed" {
			return nil
		}

		// 10秒待機してから再確認
		time.Sleep(10 * time.Second)
	}
}

// InvalidatePaths は指定パスのキャッシュ無効化を実行し、必要なら完了まで待機します
func InvalidatePaths(client *cloudfront.Client, distributionId string, paths []string, wait bool) error {
	fmt.Printf("🚀 CloudFrontディストリビューション (%s) のキャッシュを無効化します...\n", distributionId)
	fmt.Printf("   対象パス: %v\n", paths)

	invalidationId, err := CreateInvalidation(client, distributionId, paths)
	if err != nil {
		return fmt.Errorf("キャッシュ無効化エラー: %w", err)
	}

	fmt.Printf("✅ キャッシュ無効化を開始しました (ID: %s)\n", invalidationId)

	if wait {
		fmt.Println("⏳ 無効化の完了を待機しています...")
		if err := WaitForInvalidation(client, distributionId, invalidationId); err != nil {
			return fmt.Errorf("無効化待機エラー: %w", err)
		}
		fmt.Println("✅ キャッシュ無効化が完了しました")
	}

	return nil
}
