package cli

import (
	"fmt"
	"strings"

	"cabriolet/internal/application"
)

// Sample values shown by preview.
const (
	sampleScore  = 1250
	sampleBest   = 4200
	sampleKills  = 21
	samplePoints = 15
)

// preview prints each game screen the way the UI lays it out, so a change
// in wording can be reviewed without starting the game.
func (a *App) preview(res *application.Resolver) error {
	instructions, err := res.Resolve("howToPlay.instructions")
	if err != nil {
		return err
	}
	links, err := res.Resolve("donation.links")
	if err != nil {
		return err
	}

	a.screen("menu",
		res.MustResolve("menu.title"),
		res.MustResolve("menu.subtitle"),
		"",
		"[ "+res.MustResolve("menu.startGame")+" ]",
		"[ "+res.MustResolve("menu.howToPlay")+" ]",
		"[ "+res.MustResolve("menu.leaderboard")+" ]",
		"[ "+res.MustResolve("menu.donate")+" ]",
		res.MustResolve("menu.soundOn")+" / "+res.MustResolve("menu.soundOff"),
	)

	lines := []string{res.MustResolve("howToPlay.title")}
	for i, item := range instructions.Lines() {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, item))
	}
	lines = append(lines, "[ "+res.MustResolve("howToPlay.back")+" ]")
	a.screen("howToPlay", lines...)

	a.screen("mission",
		res.MustResolve("mission.briefing"),
		res.MustResolve("mission.phaseTakeoff"),
		res.MustResolve("mission.phasePatrol"),
		res.MustResolve("mission.phaseAttack"),
		res.MustResolve("mission.phaseBoss"),
		res.MustResolve("mission.target", 1),
		res.MustResolve("mission.target", 10),
		res.MustResolve("mission.complete", 500),
		res.MustResolve("mission.failed"),
	)

	a.screen("hud",
		fmt.Sprintf("%s: %d   %s: %d   %s: 3", res.MustResolve("hud.score"), sampleScore,
			res.MustResolve("hud.best"), sampleBest, res.MustResolve("hud.lives")),
		res.MustResolve("hud.ammo")+": 12 / "+res.MustResolve("hud.reloading"),
		res.MustResolve("hud.dronesLeft", 1),
		res.MustResolve("hud.dronesLeft", 7),
		res.MustResolve("messages.droneDestroyed", 1, 5),
		res.MustResolve("messages.droneDestroyed", 3, samplePoints),
		res.MustResolve("messages.waveIncoming", 1),
		res.MustResolve("messages.waveIncoming", 6),
		res.MustResolve("messages.missionBonus", 500),
		res.MustResolve("messages.lifeLost"),
		res.MustResolve("messages.extraLife"),
		res.MustResolve("messages.outOfAmmo"),
		res.MustResolve("messages.reloaded"),
		res.MustResolve("hud.paused")+"  [ "+res.MustResolve("hud.resume")+" ]  [ "+res.MustResolve("hud.quit")+" ]",
	)

	a.screen("gameOver",
		res.MustResolve("gameOver.title"),
		res.MustResolve("gameOver.finalScore", sampleScore),
		res.MustResolve("gameOver.bestScore", sampleBest),
		res.MustResolve("gameOver.newRecord"),
		res.MustResolve("gameOver.dronesDestroyed", sampleKills),
		"[ "+res.MustResolve("gameOver.playAgain")+" ]  [ "+res.MustResolve("gameOver.mainMenu")+" ]",
		"[ "+res.MustResolve("gameOver.share")+" ] "+res.MustResolve("gameOver.copied"),
		res.MustResolve("gameOver.shareText", sampleScore),
	)

	a.screen("leaderboard",
		res.MustResolve("leaderboard.title"),
		fmt.Sprintf("%-6s %-16s %s", res.MustResolve("leaderboard.rank"),
			res.MustResolve("leaderboard.player"), res.MustResolve("leaderboard.score")),
		res.MustResolve("leaderboard.loading"),
		res.MustResolve("leaderboard.empty"),
		res.MustResolve("leaderboard.failed"),
		res.MustResolve("leaderboard.enterName")+": ____  [ "+res.MustResolve("leaderboard.submit")+" ]",
		"[ "+res.MustResolve("leaderboard.back")+" ]",
	)

	lines = []string{res.MustResolve("donation.title"), res.MustResolve("donation.text")}
	for _, link := range links.Lines() {
		lines = append(lines, "- "+link)
	}
	lines = append(lines,
		"[ "+res.MustResolve("donation.button")+" ]  [ "+res.MustResolve("donation.close")+" ]",
		res.MustResolve("donation.thanks"),
		"",
		res.MustResolve("menu.version")+" "+res.Variant(),
	)
	a.screen("donation", lines...)

	return nil
}

func (a *App) screen(name string, lines ...string) {
	fmt.Fprintf(a.out, "== %s %s\n", name, strings.Repeat("=", max(0, 40-len(name))))
	for _, l := range lines {
		fmt.Fprintln(a.out, l)
	}
	fmt.Fprintln(a.out)
}
