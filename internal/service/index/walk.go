package index

import "github.com/aws/aws-sdk-go-v2/service/s3"

// WalkPrefixes は開始プレフィックスから到達可能な全プレフィックスを列挙する
// スタックと訪問済みセットによる反復探索で、各プレフィックスはちょうど1回だけ
// 訪問する。訪問順は未定義であり、呼び出し側は順序に依存してはならない
func WalkPrefixes(client s3.ListObjectsV2APIClient, bucket, start string) ([]string, error) {
	seen := make(map[string]bool)
	var prefixes []string

	stack := []string{start}
	for len(stack) > 0 {
		pref := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if seen[pref] {
			continue
		}
		seen[pref] = true
		prefixes = append(prefixes, pref)

		subs, _, err := ListFolder(client, bucket, pref)
		if err != nil {
			return nil, err
		}
		stack = append(stack, subs...)
	}

	return prefixes, nil
}
