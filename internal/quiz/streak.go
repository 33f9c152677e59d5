package quiz

// StreakWindow bounds the trailing streak to the most recent answers of
// the current run. Streaks never span sessions.
const StreakWindow = 5

// TrailingStreak counts consecutive correct answers ending at the most
// recent record, looking back at most StreakWindow records.
func TrailingStreak(answers []Answer) int {
	streak := 0
	for i := len(answers) - 1; i >= 0 && streak < StreakWindow; i-- {
		if !answers[i].Correct {
			break
		}
		streak++
	}
	return streak
}
