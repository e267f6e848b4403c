package index

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// DefaultRegion はリージョン判定に失敗した場合のフォールバック先
const DefaultRegion = "us-east-1"

// BucketRegionAPI はリージョン判定に必要なS3操作のインタフェース
type BucketRegionAPI interface {
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
	GetBucketLocation(ctx context.Context, params *s3.GetBucketLocationInput, optFns ...func(*s3.Options)) (*s3.GetBucketLocationOutput, error)
}

// DiscoverBucketRegion はバケットの所属リージョンを判定する
// HeadBucketの応答（エラー時はレスポンスヘッダー）から取得し、
// 失敗した場合はGetBucketLocationにフォールバックする。
// どちらも失敗した場合のみDefaultRegionを返す（唯一エラーを握り潰す箇所）
func DiscoverBucketRegion(client BucketRegionAPI, bucket string) string {
	ctx := context.Background()

	out, err := client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(bucket),
	})
	if err == nil {
		if region := aws.ToString(out.BucketRegion); region != "" {
			return region
		}
	} else {
		// アクセス拒否やリージョン不一致でもヘッダーにはリージョンが入る
		var respErr *awshttp.ResponseError
		if errors.As(err, &respErr) {
			if region := respErr.HTTPResponse().Header.Get("x-amz-bucket-region"); region != "" {
				return region
			}
		}
	}

	loc, err := client.GetBucketLocation(ctx, &s3.GetBucketLocationInput{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		return DefaultRegion
	}

	// us-east-1のLocationConstraintは空文字で返る
	if region := string(loc.LocationConstraint); region != "" {
		return region
	}
	return DefaultRegion
}
