package trie

import "unicode/utf8"

func validUTF8Query(s string) bool {
	return utf8.ValidString(s)
}
