// file: internals/features/ai/analysis/service/dedup.go
package service

import "strings"

// TitleDedupPrefix mengambil awalan judul untuk pencocokan duplikat
// (20 karakter pertama; judul pendek dipakai utuh).
func TitleDedupPrefix(title string) string {
	runes := []rune(title)
	if len(runes) <= 20 {
		return title
	}
	return string(runes[:20])
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLikePattern meng-escape wildcard LIKE pada judul buatan model
// agar awalan yang mengandung % atau _ tidak mencocokkan baris lain.
func EscapeLikePattern(s string) string {
	return likeEscaper.Replace(s)
}
