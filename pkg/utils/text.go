package utils

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeAnswer cevap metnini karşılaştırma için kanonik forma getirir:
// Unicode NFC + küçük harf + boşluk kırpma. Saklanan cevap metinleri de
// aynı formda tutulur, eşleşme bu form üzerinden yapılır.
func NormalizeAnswer(s string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(s)))
}

// NormalizeAnswerSet normalize edilmiş, tekilleştirilmiş cevap kümesi döner
func NormalizeAnswerSet(texts []string) []string {
	seen := make(map[string]struct{}, len(texts))
	out := make([]string, 0, len(texts))
	for _, t := range texts {
		n := NormalizeAnswer(t)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
