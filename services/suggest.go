package services

import (
	"strings"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Ngưỡng tương đồng tối thiểu để nhận gợi ý mã gói ăn
const suggestSimilarityThreshold = 0.4

// Hàm chuẩn hóa chuỗi
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0 // Nếu cả hai chuỗi đều rỗng, tương đồng là 100%
	}

	similarity := 1.0 - float64(distance)/maxLen
	return similarity
}

// SuggestPlanCode tìm mã gói ăn gần nhất với mã khách nhập sai.
// Trả về chuỗi rỗng nếu không có mã nào đủ tương đồng.
func SuggestPlanCode(input string, known []string) string {
	if len(known) == 0 {
		return ""
	}

	normalized := make([]string, len(known))
	byNormalized := make(map[string]string, len(known))
	for i, code := range known {
		n := normalizeInput(code)
		normalized[i] = n
		byNormalized[n] = code
	}

	query := normalizeInput(input)
	candidate := createMatcher(normalized).Closest(query)
	if candidate == "" {
		return ""
	}

	if calculateSimilarity(query, candidate) < suggestSimilarityThreshold {
		return ""
	}
	return byNormalized[candidate]
}
