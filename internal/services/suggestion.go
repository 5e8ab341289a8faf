package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/elowenrae/steady/internal/models"
	"github.com/jonreiter/govader"
)

const suggestionLookbackEntries = 7

// SentimentAnalyzer scores free text in [-1, 1]. It is an explicit
// constructor-injected dependency so callers own its lifecycle and
// tests can swap it out.
type SentimentAnalyzer interface {
	Compound(text string) float64
}

type VaderAnalyzer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderAnalyzer() *VaderAnalyzer {
	return &VaderAnalyzer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (vader *VaderAnalyzer) Compound(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0.0
	}
	return vader.analyzer.PolarityScores(text).Compound
}

type SuggestionMoodReader interface {
	ListRecent(userID uint, until time.Time, limit int) ([]models.MoodEntry, error)
}

// SuggestionService turns recent mood history plus today's reflection
// sentiment into one or two actionable suggestions.
type SuggestionService struct {
	moods    SuggestionMoodReader
	analyzer SentimentAnalyzer
}

func NewSuggestionService(moods SuggestionMoodReader, analyzer SentimentAnalyzer) *SuggestionService {
	return &SuggestionService{
		moods:    moods,
		analyzer: analyzer,
	}
}

func (service *SuggestionService) Suggest(userID uint, today time.Time) (string, error) {
	today = DateOnlyUTC(today)
	recent, err := service.moods.ListRecent(userID, today, suggestionLookbackEntries)
	if err != nil {
		return "", err
	}
	if len(recent) == 0 {
		return "Log a mood today to unlock personalized tips.", nil
	}

	todayReflection := ""
	for _, entry := range recent {
		if DateOnlyUTC(entry.Date).Equal(today) && entry.Reflection != "" {
			todayReflection = entry.Reflection
			break
		}
	}
	sentiment := service.analyzer.Compound(todayReflection)

	total := 0
	for _, entry := range recent {
		total += entry.Score
	}
	averageMood := float64(total) / float64(len(recent))

	suggestions := make([]string, 0, 2)
	if lowDay, ok := weakestWeekday(recent); ok {
		suggestions = append(suggestions, fmt.Sprintf(
			"Your motivation dips on %ss. Consider a low-effort habit that day (e.g., 5-minute walk).", lowDay,
		))
	}

	switch {
	case sentiment < -0.2:
		suggestions = append(suggestions, "Your reflection sounds stressed. Try box breathing for 2 minutes.")
	case averageMood <= 2:
		suggestions = append(suggestions, "Mood's been low. Queue a tiny win: drink water and 10 deep breaths.")
	case averageMood >= 4:
		suggestions = append(suggestions, "Riding high! Level up a habit today (add one more rep/minute).")
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, "Keep the streak alive. Aim for one simple habit before noon.")
	}
	return strings.Join(suggestions, " "), nil
}

// weakestWeekday finds the weekday with the lowest mean score among the
// recent entries. Ties resolve to the earliest weekday (Monday first)
// to keep the output deterministic.
func weakestWeekday(entries []models.MoodEntry) (time.Weekday, bool) {
	totals := make(map[time.Weekday]int)
	counts := make(map[time.Weekday]int)
	for _, entry := range entries {
		weekday := DateOnlyUTC(entry.Date).Weekday()
		totals[weekday] += entry.Score
		counts[weekday]++
	}
	if len(counts) == 0 {
		return time.Sunday, false
	}

	order := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}
	best := time.Sunday
	bestMean := 0.0
	found := false
	for _, weekday := range order {
		if counts[weekday] == 0 {
			continue
		}
		weekdayMean := float64(totals[weekday]) / float64(counts[weekday])
		if !found || weekdayMean < bestMean {
			best = weekday
			bestMean = weekdayMean
			found = true
		}
	}
	return best, found
}
