package utils

import "strings"

func StrEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}
