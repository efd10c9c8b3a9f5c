package i18n

import "cabriolet/internal/domain/entities"

// Shapes declares which messages are not plain literals. Templates list
// their parameters in call order; lists are stored one item per line.
type Shapes struct {
	Templates map[entities.Key][]entities.Param
	Lists     []entities.Key
}

var (
	score  = entities.Param{Name: "score", Kind: entities.ParamScore}
	count  = entities.Param{Name: "count", Kind: entities.ParamCount}
	points = entities.Param{Name: "points", Kind: entities.ParamPoints}
)

// GameShapes is the shape set of the Cabriolet text files.
var GameShapes = Shapes{
	Templates: map[entities.Key][]entities.Param{
		"hud.dronesLeft":           {count},
		"mission.complete":         {points},
		"mission.target":           {count},
		"messages.droneDestroyed":  {count, points},
		"messages.waveIncoming":    {count},
		"messages.missionBonus":    {points},
		"gameOver.finalScore":      {score},
		"gameOver.bestScore":       {score},
		"gameOver.shareText":       {score},
		"gameOver.dronesDestroyed": {count},
	},
	Lists: []entities.Key{
		"howToPlay.instructions",
		"donation.links",
	},
}
