// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import "strings"

// ParseTerms decodes a serialized tag list such as "['cs.LG', 'stat.ML']"
// into its ordered tags. The syntax is a bracketed list of single- or
// double-quoted strings. Any malformation yields an empty result; corpus
// data quality is untrusted and a bad cell must never stop retrieval, so
// this function has no error return and never panics.
func ParseTerms(raw string) []string {
	s := strings.TrimSpace(raw)
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil
	}
	body := s[1 : len(s)-1]

	var tags []string
	i := 0
	for {
		i = skipSpace(body, i)
		if i >= len(body) {
			break
		}

		quote := body[i]
		if quote != '\'' && quote != '"' {
			return nil
		}
		i++

		var b strings.Builder
		closed := false
		for i < len(body) {
			c := body[i]
			if c == '\\' && i+1 < len(body) {
				b.WriteByte(body[i+1])
				i += 2
				continue
			}
			if c == quote {
				closed = true
				i++
				break
			}
			b.WriteByte(c)
			i++
		}
		if !closed {
			return nil
		}
		tags = append(tags, b.String())

		i = skipSpace(body, i)
		if i >= len(body) {
			break
		}
		if body[i] != ',' {
			return nil
		}
		i++ // trailing comma before ']' is accepted
	}
	return tags
}

func skipSpace(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	return i
}
