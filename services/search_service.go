package services

import (
	"sort"
	"strings"
	"sync"

	"lesnoy/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// NormalizeQuery lowercases a query and strips diacritics so that
// transliterated input still matches house names.
func NormalizeQuery(input string) string {
	input = strings.TrimSpace(input)
	return strings.ToLower(unidecode.Unidecode(input))
}

// NewNameMatcher builds a closest-match index over normalized house names.
func NewNameMatcher(houses []models.House) *closestmatch.ClosestMatch {
	names := make([]string, 0, len(houses))
	for _, h := range houses {
		names = append(names, NormalizeQuery(h.Name))
	}
	return closestmatch.New(names, []int{2, 3})
}

// Similarity scores two strings in [0,1] via levenshtein distance.
func Similarity(a, b string) float64 {
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

type scoredHouse struct {
	house models.House
	score int
}

func scoreHouse(query string, house models.House, cm *closestmatch.ClosestMatch) int {
	score := 0
	name := NormalizeQuery(house.Name)

	if cm.Closest(query) == name {
		score += 20
	}
	if sim := Similarity(query, name); sim > 0.5 {
		score += int(sim * 20)
	}
	if strings.Contains(name, query) || strings.Contains(query, name) {
		score += 15
	}
	if strings.Contains(NormalizeQuery(house.Description), query) {
		score += 5
	}
	return score
}

// SearchHouses ranks houses against a free-text query. Houses with a
// zero score are dropped; ties keep the cheaper house first.
func SearchHouses(query string, houses []models.House) []models.House {
	normalized := NormalizeQuery(query)
	if normalized == "" {
		return nil
	}

	cm := NewNameMatcher(houses)

	scoreCh := make(chan scoredHouse, len(houses))
	var wg sync.WaitGroup
	for _, house := range houses {
		wg.Add(1)
		go func(house models.House) {
			defer wg.Done()
			scoreCh <- scoredHouse{house: house, score: scoreHouse(normalized, house, cm)}
		}(house)
	}
	wg.Wait()
	close(scoreCh)

	var scored []scoredHouse
	for sh := range scoreCh {
		if sh.score > 0 {
			scored = append(scored, sh)
		}
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].house.PricePerNight.LessThan(scored[j].house.PricePerNight)
	})

	result := make([]models.House, 0, len(scored))
	for _, sh := range scored {
		result = append(result, sh.house)
	}
	return result
}
