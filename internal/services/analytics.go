package services

import (
	"math"
	"time"

	"github.com/elowenrae/steady/internal/models"
)

const (
	ViewDaily   = "daily"
	ViewWeekly  = "weekly"
	ViewMonthly = "monthly"
)

type AnalyticsCompletionReader interface {
	ListCompletedDates(userID uint, habitID uint) ([]time.Time, error)
	HasCompletedOn(userID uint, habitID uint, day time.Time) (bool, error)
	CountCompletedInRange(userID uint, from time.Time, to time.Time) (int64, error)
}

type AnalyticsMoodReader interface {
	ListInRange(userID uint, from time.Time, to time.Time) ([]models.MoodEntry, error)
}

type AnalyticsHabitReader interface {
	CountByUser(userID uint) (int64, error)
}

// Summary is a chart-ready series: one label, one mood average and one
// completion-rate percentage per bucket.
type Summary struct {
	Labels          []string  `json:"labels"`
	MoodAverages    []float64 `json:"mood_averages"`
	CompletionRates []float64 `json:"completion_rates"`
}

type AnalyticsService struct {
	completions AnalyticsCompletionReader
	moods       AnalyticsMoodReader
	habits      AnalyticsHabitReader
}

func NewAnalyticsService(completions AnalyticsCompletionReader, moods AnalyticsMoodReader, habits AnalyticsHabitReader) *AnalyticsService {
	return &AnalyticsService{
		completions: completions,
		moods:       moods,
		habits:      habits,
	}
}

// LongestStreak counts the longest run of completions spaced exactly
// one period apart, where the expected gap depends on the habit's
// periodicity: 1 day for daily, 7 for weekly, and for monthly the exact
// distance to the same day of the following month (day-of-month clamped
// to shorter months). Any other gap resets the run to 1.
func (service *AnalyticsService) LongestStreak(habit models.Habit) (int, error) {
	dates, err := service.completions.ListCompletedDates(habit.UserID, habit.ID)
	if err != nil {
		return 0, err
	}

	streak := 0
	longest := 0
	var last *time.Time

	for index := range dates {
		current := DateOnlyUTC(dates[index])
		if last == nil {
			streak = 1
		} else {
			gap := daysBetweenDates(*last, current)
			if gap == expectedGapDays(habit.Periodicity, *last) {
				streak++
			} else {
				streak = 1
			}
		}
		last = &current
		if streak > longest {
			longest = streak
		}
	}
	return longest, nil
}

// CurrentStreak walks backward from today one calendar day at a time
// while a completed record exists for that exact date. It ignores
// periodicity; the result is the active daily run ending today.
func (service *AnalyticsService) CurrentStreak(userID uint, habitID uint, today time.Time) (int, error) {
	day := DateOnlyUTC(today)
	streak := 0
	for {
		completed, err := service.completions.HasCompletedOn(userID, habitID, day)
		if err != nil {
			return 0, err
		}
		if !completed {
			return streak, nil
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
}

func expectedGapDays(periodicity string, last time.Time) int {
	switch periodicity {
	case models.PeriodicityWeekly:
		return 7
	case models.PeriodicityMonthly:
		nextMonth := last.Month() + 1
		nextYear := last.Year()
		if nextMonth > time.December {
			nextMonth = time.January
			nextYear++
		}
		day := last.Day()
		if max := daysInMonth(nextYear, nextMonth); day > max {
			day = max
		}
		expected := time.Date(nextYear, nextMonth, day, 0, 0, 0, 0, time.UTC)
		return daysBetweenDates(last, expected)
	default:
		return 1
	}
}

// Summaries aggregates mood and completion history into chart buckets.
// Unrecognized views fall back to weekly.
func (service *AnalyticsService) Summaries(userID uint, view string, today time.Time) (Summary, error) {
	today = DateOnlyUTC(today)

	switch view {
	case ViewDaily:
		return service.dailySummary(userID, today)
	case ViewMonthly:
		return service.monthlySummary(userID, today)
	default:
		return service.weeklySummary(userID, today)
	}
}

// dailySummary covers the 7 calendar days ending today, one bucket per
// day.
func (service *AnalyticsService) dailySummary(userID uint, today time.Time) (Summary, error) {
	start := today.AddDate(0, 0, -6)
	scores, err := service.moodScoresByDate(userID, start, today)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{
		Labels:          make([]string, 0, 7),
		MoodAverages:    make([]float64, 0, 7),
		CompletionRates: make([]float64, 0, 7),
	}
	for offset := 0; offset < 7; offset++ {
		day := start.AddDate(0, 0, offset)
		rate, err := service.completionRate(userID, day, day)
		if err != nil {
			return Summary{}, err
		}
		summary.Labels = append(summary.Labels, day.Format("Jan 02"))
		summary.MoodAverages = append(summary.MoodAverages, mean(scores[dateKey(day)]))
		summary.CompletionRates = append(summary.CompletionRates, rate)
	}
	return summary, nil
}

// monthlySummary covers the 1st of the current month through today.
func (service *AnalyticsService) monthlySummary(userID uint, today time.Time) (Summary, error) {
	start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	scores, err := service.moodScoresByDate(userID, start, today)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{}
	for day := start; !day.After(today); day = day.AddDate(0, 0, 1) {
		rate, err := service.completionRate(userID, day, day)
		if err != nil {
			return Summary{}, err
		}
		summary.Labels = append(summary.Labels, day.Format("02 Jan"))
		summary.MoodAverages = append(summary.MoodAverages, mean(scores[dateKey(day)]))
		summary.CompletionRates = append(summary.CompletionRates, rate)
	}
	return summary, nil
}

// weeklySummary re-buckets the last 7 days by weekday name
// Monday..Sunday. With an exactly 7-day window each weekday normally
// collects one observation; the mean guards the general case anyway.
func (service *AnalyticsService) weeklySummary(userID uint, today time.Time) (Summary, error) {
	start := today.AddDate(0, 0, -6)
	entries, err := service.moods.ListInRange(userID, start, today)
	if err != nil {
		return Summary{}, err
	}

	moodsByWeekday := make(map[time.Weekday][]int)
	for _, entry := range entries {
		weekday := DateOnlyUTC(entry.Date).Weekday()
		moodsByWeekday[weekday] = append(moodsByWeekday[weekday], entry.Score)
	}

	ratesByWeekday := make(map[time.Weekday][]float64)
	for offset := 0; offset < 7; offset++ {
		day := start.AddDate(0, 0, offset)
		rate, err := service.completionRate(userID, day, day)
		if err != nil {
			return Summary{}, err
		}
		ratesByWeekday[day.Weekday()] = append(ratesByWeekday[day.Weekday()], rate)
	}

	weekdays := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}
	summary := Summary{
		Labels:          make([]string, 0, 7),
		MoodAverages:    make([]float64, 0, 7),
		CompletionRates: make([]float64, 0, 7),
	}
	for _, weekday := range weekdays {
		summary.Labels = append(summary.Labels, weekday.String())
		summary.MoodAverages = append(summary.MoodAverages, round2(mean(moodsByWeekday[weekday])))
		summary.CompletionRates = append(summary.CompletionRates, round1(meanFloat(ratesByWeekday[weekday])))
	}
	return summary, nil
}

// completionRate is the completed count over (habit count x days in
// range) as a percentage, one decimal place. Zero habits yields 0.0.
func (service *AnalyticsService) completionRate(userID uint, from time.Time, to time.Time) (float64, error) {
	habitCount, err := service.habits.CountByUser(userID)
	if err != nil {
		return 0, err
	}
	if habitCount == 0 {
		return 0.0, nil
	}

	completed, err := service.completions.CountCompletedInRange(userID, from, to)
	if err != nil {
		return 0, err
	}

	days := daysBetweenDates(from, to) + 1
	return round1(float64(completed) / (float64(habitCount) * float64(days)) * 100.0), nil
}

func (service *AnalyticsService) moodScoresByDate(userID uint, from time.Time, to time.Time) (map[string][]int, error) {
	entries, err := service.moods.ListInRange(userID, from, to)
	if err != nil {
		return nil, err
	}
	scores := make(map[string][]int, len(entries))
	for _, entry := range entries {
		key := dateKey(DateOnlyUTC(entry.Date))
		scores[key] = append(scores[key], entry.Score)
	}
	return scores, nil
}

func dateKey(day time.Time) string {
	return day.Format("2006-01-02")
}

func mean(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, value := range values {
		sum += value
	}
	return float64(sum) / float64(len(values))
}

func meanFloat(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, value := range values {
		sum += value
	}
	return sum / float64(len(values))
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
