// Package rewards turns stored activity into coins, levels and ranks.
package rewards

import (
	"sort"
	"time"

	"mindfullearner/internal/models"
)

// Coins awarded per stored row.
const (
	GratitudeCoins   = 50
	MoodCoins        = 30
	MeditationCoins  = 20
	SleepCoins       = 10
	HygieneCoins     = 10
	WaterCoins       = 5
	TaskCoins        = 10
	QuizCorrectCoins = 20

	CoinsPerLevel   = 500
	LeaderboardSize = 10
)

func Coins(a models.ActivityCounts) int {
	return a.Gratitude*GratitudeCoins +
		a.Mood*MoodCoins +
		a.Meditation*MeditationCoins +
		a.Sleep*SleepCoins +
		a.Hygiene*HygieneCoins +
		a.Water*WaterCoins +
		a.Tasks*TaskCoins +
		a.QuizCorrect*QuizCorrectCoins
}

func Level(coins int) int {
	return coins/CoinsPerLevel + 1
}

// NextLevelCoins is the coin total at which the next level starts.
func NextLevelCoins(coins int) int {
	return Level(coins) * CoinsPerLevel
}

// Progress is the fraction of the current level already earned.
func Progress(coins int) float64 {
	return float64(coins%CoinsPerLevel) / CoinsPerLevel
}

type Standing struct {
	Rank     int    `json:"rank"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Coins    int    `json:"coins"`
	Level    int    `json:"level"`
}

// Leaderboard ranks users by coins, highest first, ties by user id, and
// keeps the top LeaderboardSize.
func Leaderboard(users []models.UserActivity) []Standing {
	out := make([]Standing, 0, len(users))
	for _, u := range users {
		c := Coins(u.ActivityCounts)
		out = append(out, Standing{UserID: u.UserID, Username: u.Username, Coins: c, Level: Level(c)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Coins != out[j].Coins {
			return out[i].Coins > out[j].Coins
		}
		return out[i].UserID < out[j].UserID
	})
	if len(out) > LeaderboardSize {
		out = out[:LeaderboardSize]
	}
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

// Streak counts consecutive days with an entry ending today, or yesterday
// when today has no entry yet. dates must be distinct YYYY-MM-DD values
// sorted newest first.
func Streak(dates []string, today time.Time) int {
	if len(dates) == 0 {
		return 0
	}
	cursor := models.FormatDate(today)
	if dates[0] != cursor {
		cursor = models.FormatDate(today.AddDate(0, 0, -1))
	}

	streak := 0
	for _, d := range dates {
		if d != cursor {
			break
		}
		streak++
		day, err := models.ParseDate(cursor)
		if err != nil {
			break
		}
		cursor = models.FormatDate(day.AddDate(0, 0, -1))
	}
	return streak
}
