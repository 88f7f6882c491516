package services

import (
	"sort"
	"strings"
	"sync"

	"bff/dto"
	"bff/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Hàm chuẩn hóa chuỗi tìm kiếm
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
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// Nhóm từ khóa cho từng hạng phòng
var (
	suiteKeywords    = []string{"suite", "penthouse", "executive", "cao cap", "hang sang"}
	deluxeKeywords   = []string{"deluxe", "premium", "superior"}
	standardKeywords = []string{"standard", "tieu chuan", "pho thong", "basic"}
	familyKeywords   = []string{"family", "gia dinh", "twin", "double"}
)

// parseRoomClass ánh xạ query về một nhóm hạng phòng gần đúng
func parseRoomClass(query string) string {
	normalizedQuery := normalizeInput(query)

	groups := map[string][]string{
		"suite":    suiteKeywords,
		"deluxe":   deluxeKeywords,
		"standard": standardKeywords,
		"family":   familyKeywords,
	}

	for class, keywords := range groups {
		matcher := createMatcher(keywords)
		match := matcher.Closest(normalizedQuery)
		if match != "" && strings.Contains(normalizedQuery, match) {
			return class
		}
	}

	return ""
}

// calculateRoomTypeScore tính điểm phù hợp của một loại phòng với query
func calculateRoomTypeScore(query string, roomType models.RoomType) int {
	normalizedQuery := normalizeInput(query)
	score := 0

	normalizedName := normalizeInput(roomType.Name)
	if strings.Contains(normalizedName, normalizedQuery) || strings.Contains(normalizedQuery, normalizedName) {
		score += 20
	} else if calculateSimilarity(normalizedQuery, normalizedName) > 0.6 {
		score += 12
	}

	if class := parseRoomClass(normalizedQuery); class != "" && strings.Contains(normalizedName, class) {
		score += 15
	}

	score += calculateFacilityScore(normalizedQuery, roomType.Facilities)

	return score
}

func calculateFacilityScore(query string, facilities []string) int {
	maxFacilityScore := 12
	facilityScore := 0

	for _, facility := range facilities {
		normalizedFacility := normalizeInput(facility)
		similarity := calculateSimilarity(query, normalizedFacility)
		if similarity > 0.7 || strings.Contains(query, normalizedFacility) {
			facilityScore += 4
			if facilityScore >= maxFacilityScore {
				break
			}
		}
	}
	return facilityScore
}

// SearchRoomTypes chấm điểm song song rồi xếp loại phòng theo độ phù hợp;
// loại phòng điểm 0 bị loại khỏi kết quả
func SearchRoomTypes(query string, roomTypes []models.RoomType) []dto.ScoredRoomType {
	scoreCh := make(chan dto.ScoredRoomType, len(roomTypes))
	var wg sync.WaitGroup

	for _, roomType := range roomTypes {
		wg.Add(1)
		go func(roomType models.RoomType) {
			defer wg.Done()
			score := calculateRoomTypeScore(query, roomType)
			scoreCh <- dto.ScoredRoomType{RoomType: roomType, Score: score}
		}(roomType)
	}

	wg.Wait()
	close(scoreCh)

	scored := make([]dto.ScoredRoomType, 0, len(roomTypes))
	for item := range scoreCh {
		if item.Score > 0 {
			scored = append(scored, item)
		}
	}

	sort.Slice(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}
