package index

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// ExcludeSet は除外対象フォルダ名のglobパターン集合
type ExcludeSet struct {
	globs []glob.Glob
}

// NewExcludeSet はパターン一覧をコンパイルして除外集合を作成する
func NewExcludeSet(patterns []string) (*ExcludeSet, error) {
	set := &ExcludeSet{}
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("除外パターン '%s' のコンパイルエラー: %w", p, err)
		}
		set.globs = append(set.globs, g)
	}
	return set, nil
}

// MatchPrefix はプレフィックスのいずれかのセグメントが除外パターンに一致するか判定する
// 一致したフォルダの配下はすべて除外対象になる
func (e *ExcludeSet) MatchPrefix(prefix string) bool {
	if e == nil || len(e.globs) == 0 {
		return false
	}
	for _, segment := range strings.Split(strings.Trim(prefix, "/"), "/") {
		if segment == "" {
			continue
		}
		for _, g := range e.globs {
			if g.Match(segment) {
				return true
			}
		}
	}
	return false
}

// MatchKey はオブジェクトキーが除外フォルダ配下にあるか判定する
func (e *ExcludeSet) MatchKey(key string) bool {
	if e == nil || len(e.globs) == 0 {
		return false
	}
	i := strings.LastIndex(key, "/")
	if i < 0 {
		return false
	}
	return e.MatchPrefix(key[:i+1])
}
