package model

import "strings"

// codeList is the single bidirectional mapping between an enumeration tag
// and its code string. Codes not in the table parse to unknown, and unknown
// renders as unknownCode.
type codeList[T comparable] struct {
	unknown     T
	unknownCode string
	codes       map[T]string
	tags        map[string]T
}

func newCodeList[T comparable](unknown T, unknownCode string, codes map[T]string) codeList[T] {
	tags := make(map[string]T, len(codes))
	for tag, code := range codes {
		tags[code] = tag
	}
	return codeList[T]{
		unknown:     unknown,
		unknownCode: unknownCode,
		codes:       codes,
		tags:        tags,
	}
}

func (c codeList[T]) code(tag T) string {
	if code, ok := c.codes[tag]; ok {
		return code
	}
	return c.unknownCode
}

func (c codeList[T]) parse(code string) T {
	if tag, ok := c.tags[strings.TrimSpace(code)]; ok {
		return tag
	}
	return c.unknown
}

func (c codeList[T]) known(tag T) bool {
	_, ok := c.codes[tag]
	return ok
}
