package index

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// fakeObject はテスト用バケット内の1オブジェクト
type fakeObject struct {
	key          string
	size         int64
	lastModified time.Time
}

// fakeBucket はデリミタ付きListObjectsV2のセマンティクスを再現するテスト用クライアント
type fakeBucket struct {
	objects   []fakeObject
	listCalls int
}

func (f *fakeBucket) ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	f.listCalls++

	prefix := aws.ToString(params.Prefix)
	seen := make(map[string]bool)
	var contents []types.Object
	var commons []types.CommonPrefix

	for _, obj := range f.objects {
		if !strings.HasPrefix(obj.key, prefix) {
			continue
		}
		rest := strings.TrimPrefix(obj.key, prefix)
		if i := strings.Index(rest, "/"); i >= 0 {
			// デリミタまでが共通プレフィックス
			cp := prefix + rest[:i+1]
			if !seen[cp] {
				seen[cp] = true
				commons = append(commons, types.CommonPrefix{Prefix: aws.String(cp)})
			}
			continue
		}
		contents = append(contents, types.Object{
			Key:          aws.String(obj.key),
			Size:         aws.Int64(obj.size),
			LastModified: aws.Time(obj.lastModified),
		})
	}

	return &s3.ListObjectsV2Output{
		Contents:       contents,
		CommonPrefixes: commons,
		IsTruncated:    aws.Bool(false),
	}, nil
}

// recordedPut はアップロードされた1オブジェクトの記録
type recordedPut struct {
	key          string
	body         string
	contentType  string
	cacheControl string
}

// fakeS3 はリスティングとアップロードの両方を受けるテスト用クライアント
type fakeS3 struct {
	fakeBucket
	puts []recordedPut
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.puts = append(f.puts, recordedPut{
		key:          aws.ToString(params.Key),
		body:         string(body),
		contentType:  aws.ToString(params.ContentType),
		cacheControl: aws.ToString(params.CacheControl),
	})
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) putFor(key string) (recordedPut, bool) {
	for _, p := range f.puts {
		if p.key == key {
			return p, true
		}
	}
	return recordedPut{}, false
}
