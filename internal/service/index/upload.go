package index

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// 生成物のContent-TypeとCache-Control
// HTMLは短め、検索インデックスとアセットはCDNに長めに持たせる
const (
	htmlContentType = "text/html; charset=utf-8"
	jsonContentType = "application/json; charset=utf-8"
	jsContentType   = "application/javascript; charset=utf-8"

	htmlCacheControl = "public, max-age=60"
	jsonCacheControl = "public, max-age=300"
)

// ObjectPutAPI は生成物アップロードに必要なS3操作のインタフェース
type ObjectPutAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// PutObjectString は文字列ボディをContent-TypeとCache-Control付きでアップロードする
func PutObjectString(client ObjectPutAPI, bucket, key, body, contentType, cacheControl string) error {
	_, err := client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:       aws.String(bucket),
		Key:          aws.String(key),
		Body:         strings.NewReader(body),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String(cacheControl),
	})
	if err != nil {
		return fmt.Errorf("%s のアップロードエラー: %w", key, err)
	}
	return nil
}
