package stats

import "slices"

type AchievementID string

const (
	FirstWin         AchievementID = "first_win"
	WinStreak3       AchievementID = "win_streak_3"
	WinStreak5       AchievementID = "win_streak_5"
	PerfectGame      AchievementID = "perfect_game"
	Veteran          AchievementID = "veteran"
	Master           AchievementID = "master"
	MultiplayerDebut AchievementID = "multiplayer_debut"
)

type Achievement struct {
	ID          AchievementID `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
}

var Achievements = []Achievement{
	{ID: FirstWin, Title: "First Victory", Description: "Win your first game"},
	{ID: WinStreak3, Title: "On Fire", Description: "Win 3 games in a row"},
	{ID: WinStreak5, Title: "Unstoppable", Description: "Win 5 games in a row"},
	{ID: PerfectGame, Title: "Perfectionist", Description: "Place all your pieces on the board"},
	{ID: Veteran, Title: "Veteran", Description: "Play 10 games"},
	{ID: Master, Title: "Master", Description: "Play 50 games"},
	{ID: MultiplayerDebut, Title: "Social Butterfly", Description: "Play a multiplayer game"},
}

func FindAchievement(id AchievementID) (Achievement, bool) {
	for _, a := range Achievements {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}

type PlayerStats struct {
	GamesPlayed          int             `json:"gamesPlayed"`
	Wins                 int             `json:"wins"`
	CurrentWinStreak     int             `json:"currentWinStreak"`
	MaxWinStreak         int             `json:"maxWinStreak"`
	PerfectGames         int             `json:"perfectGames"`
	MultiplayerGames     int             `json:"multiplayerGames"`
	UnlockedAchievements []AchievementID `json:"unlockedAchievements"`
}

func (s PlayerStats) Has(id AchievementID) bool {
	return slices.Contains(s.UnlockedAchievements, id)
}

type GameResult struct {
	IsWin         bool `json:"isWin"`
	IsPerfect     bool `json:"isPerfect"`
	IsMultiplayer bool `json:"isMultiplayer"`
}

// Apply folds one finished game into s and reports the achievements it
// unlocked for the first time. s is not modified.
func Apply(s PlayerStats, result GameResult) (PlayerStats, []Achievement) {
	next := s
	next.UnlockedAchievements = slices.Clone(s.UnlockedAchievements)

	next.GamesPlayed++
	if result.IsMultiplayer {
		next.MultiplayerGames++
	}

	if result.IsWin {
		next.Wins++
		next.CurrentWinStreak++
		next.MaxWinStreak = max(next.MaxWinStreak, next.CurrentWinStreak)
	} else {
		next.CurrentWinStreak = 0
	}

	if result.IsPerfect {
		next.PerfectGames++
	}

	var unlocked []Achievement
	check := func(id AchievementID, condition bool) {
		if !condition || next.Has(id) {
			return
		}
		next.UnlockedAchievements = append(next.UnlockedAchievements, id)
		if a, c := FindAchievement(id); c {
			unlocked = append(unlocked, a)
		}
	}

	check(FirstWin, next.Wins >= 1)
	check(WinStreak3, next.CurrentWinStreak >= 3)
	check(WinStreak5, next.CurrentWinStreak >= 5)
	check(PerfectGame, next.PerfectGames >= 1)
	check(Veteran, next.GamesPlayed >= 10)
	check(Master, next.GamesPlayed >= 50)
	check(MultiplayerDebut, next.MultiplayerGames >= 1)

	return next, unlocked
}
