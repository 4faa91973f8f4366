package filter

import "fmt"

var attemptOptions = []Option{
	{Value: "", Label: "All"},
	{Value: "50", Label: "50"},
	{Value: "100", Label: "100"},
	{Value: "200", Label: "200"},
	{Value: "500", Label: "500"},
	{Value: "1000", Label: "1000"},
}

var clearcheckOptions = []Option{
	{Value: "", Label: "All"},
	{Value: "30000", Label: "30 seconds"},
	{Value: "60000", Label: "60 seconds"},
	{Value: "120000", Label: "2 minutes"},
	{Value: "240000", Label: "4 minutes"},
}

var smm2Styles = []Option{
	{Value: "", Label: "Any"},
	{Value: "smb1", Label: "SMB1"},
	{Value: "smb3", Label: "SMB3"},
	{Value: "smw", Label: "SMW"},
	{Value: "nsmbu", Label: "NSMBU"},
	{Value: "sm3dw", Label: "SM3DW"},
}

var smm2Themes = []Option{
	{Value: "", Label: "Any"},
	{Value: "overworld", Label: "Overworld"},
	{Value: "underground", Label: "Underground"},
	{Value: "castle", Label: "Castle"},
	{Value: "airship", Label: "Airship"},
	{Value: "ghost_house", Label: "Ghost House"},
	{Value: "desert", Label: "Desert"},
	{Value: "snow", Label: "Snow"},
	{Value: "sky", Label: "Sky"},
	{Value: "forest", Label: "Forest"},
}

var smm2ClearConditionGroups = []Option{
	{Value: "", Label: "Any"},
	{Value: "none", Label: "No clear condition"},
	{Value: "no_jumping", Label: "No jumping"},
	{Value: "no_damage", Label: "No damage"},
	{Value: "defeating_enemies", Label: "Defeating enemies"},
	{Value: "powerup_finish", Label: "Power-up finish"},
	{Value: "holding_activating", Label: "Holding / activating"},
	{Value: "collecting", Label: "Collecting"},
}

var smm2Tags = []Option{
	{Value: "", Label: "Any"},
	{Value: "art", Label: "Art"},
	{Value: "auto_mario", Label: "Auto Mario"},
	{Value: "autoscroll", Label: "Autoscroll"},
	{Value: "boss_battle", Label: "Boss Battle"},
	{Value: "link", Label: "Link"},
	{Value: "multiplayer_versus", Label: "Multiplayer Versus"},
	{Value: "music", Label: "Music"},
	{Value: "puzzle_solving", Label: "Puzzle Solving"},
	{Value: "shooter", Label: "Shooter"},
	{Value: "short_and_sweet", Label: "Short And Sweet"},
	{Value: "single_player", Label: "Single Player"},
	{Value: "speedrun", Label: "Speedrun"},
	{Value: "standard", Label: "Standard"},
	{Value: "technical", Label: "Technical"},
	{Value: "themed", Label: "Themed"},
}

// SMM1 is the Super Mario Maker catalogue.
var SMM1 = MustRegistry(GameSMM1, "/smm1/random_level", []Definition{
	{Key: KeyYear, Caption: "Year", Options: []Option{{Value: "2017", Label: "2017"}}},
	{Key: KeyMinAttempts, Caption: "Min. attempts", Options: attemptOptions},
	{Key: KeyMaxAttempts, Caption: "Max. attempts", Options: attemptOptions},
}, State{KeyYear: "2017"})

// SMM2 is the Super Mario Maker 2 catalogue.
var SMM2 = MustRegistry(GameSMM2, "/smm2/random_level", []Definition{
	{Key: KeyYear, Caption: "Year", Options: []Option{
		{Value: "2020", Label: "2020"},
		{Value: "2021", Label: "2021"},
		{Value: "2022", Label: "2022"},
		{Value: "2023", Label: "2023"},
	}},
	{Key: KeyStyle, Caption: "Game style", Options: smm2Styles},
	{Key: KeyTheme, Caption: "Theme", Options: smm2Themes},
	{Key: KeyClearConditionGroup, Caption: "Clear condition", Options: smm2ClearConditionGroups},
	{Key: KeyTag, Caption: "Tag", Options: smm2Tags},
	{Key: KeyMinAttempts, Caption: "Min. attempts", Options: attemptOptions},
	{Key: KeyMaxAttempts, Caption: "Max. attempts", Options: attemptOptions},
	{Key: KeyMinClearcheckMs, Caption: "Min. clear check time", Options: clearcheckOptions},
	{Key: KeyMaxClearcheckMs, Caption: "Max. clear check time", Options: clearcheckOptions},
}, State{KeyYear: "2023"})

// Games lists the supported games in display order.
func Games() []Game {
	return []Game{GameSMM1, GameSMM2}
}

// Lookup returns the registry for a game.
func Lookup(game Game) (*Registry, error) {
	switch game {
	case GameSMM1:
		return SMM1, nil
	case GameSMM2:
		return SMM2, nil
	default:
		return nil, fmt.Errorf("unknown game %q", game)
	}
}
