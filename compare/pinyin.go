package compare

import (
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// pinyinCollator serializes access to the underlying collator, which keeps
// an internal buffer and is not safe for concurrent use on its own.
type pinyinCollator struct {
	mu  sync.Mutex
	col *collate.Collator
}

func (p *pinyinCollator) compare(a, b string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.col.CompareString(a, b)
}

// ComparingPinyin returns a comparator ordering elements by the Chinese
// (pinyin) collation of the string key extracted by key. Pass true as the
// optional flag to invert the order.
//
//	byName := compare.ComparingPinyin(func(c City) string { return c.Name })
//	slices.SortStableFunc(cities, byName) // 北京, 广州, 上海
//
// The collation is delegated entirely to the x/text collator for the
// Chinese locale. Panics if key is nil. The returned comparator is safe for
// concurrent use.
func ComparingPinyin[T any](key func(T) string, reverse ...bool) Comparator[T] {
	if key == nil {
		panic("compare: ComparingPinyin called with a nil key extractor")
	}
	p := &pinyinCollator{col: collate.New(language.Chinese)}
	c := Comparator[T](func(a, b T) int {
		return p.compare(key(a), key(b))
	})
	if len(reverse) > 0 && reverse[0] {
		return c.Reversed()
	}
	return c
}
