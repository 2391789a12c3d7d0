package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"market-mood/models"
)

const (
	arrowDown    = "▼"
	arrowUp      = "▲"
	arrowFlat    = "▬"
	arrowUnknown = "?"
)

var (
	crashAt     = decimal.NewFromInt(-10)
	bleedingAt  = decimal.NewFromInt(-5)
	wobblyBelow = decimal.NewFromInt(-2)
	rallyAbove  = decimal.NewFromInt(2)
	climbAbove  = decimal.RequireFromString("0.2")
)

// Mood is the display classification of a day's percent change.
type Mood struct {
	Class    models.StatusClass
	Text     string
	Arrow    string
	Subtitle string
}

// Classify maps a daily percent change onto a mood. Rules are checked top to
// bottom and the first match wins:
//
//	change <= -10        yes
//	change <= -5         bleeding
//	change <  -2         wobbly
//	change >   2         no
//	change >   0.2       climbing
//	otherwise            sideways
func Classify(change decimal.Decimal, indexName string) Mood {
	pct := change.StringFixedBank(2)

	switch {
	case change.LessThanOrEqual(crashAt):
		return Mood{models.StatusCrash, "YES!", arrowDown,
			fmt.Sprintf("%s down %s%%. Deep breaths.", indexName, pct)}
	case change.LessThanOrEqual(bleedingAt):
		return Mood{models.StatusBleeding, "BLEEDING", arrowDown,
			fmt.Sprintf("%s down %s%%. Minor dip.", indexName, pct)}
	case change.LessThan(wobblyBelow):
		return Mood{models.StatusWobbly, "WOBBLY", arrowDown,
			fmt.Sprintf("%s down %s%%. Looking shaky.", indexName, pct)}
	case change.GreaterThan(rallyAbove):
		return Mood{models.StatusRally, "NOT YET!", arrowUp,
			fmt.Sprintf("%s up %s%%. Still climbing!", indexName, pct)}
	case change.GreaterThan(climbAbove):
		return Mood{models.StatusClimbing, "CLIMBING", arrowUp,
			fmt.Sprintf("%s up %s%%. Gentle rise.", indexName, pct)}
	default:
		return Mood{models.StatusSideways, "FLAT", arrowFlat,
			fmt.Sprintf("%s change: %s%%. Holding steady...", indexName, pct)}
	}
}

// ErrorMood is the single classification used for every fetch failure.
func ErrorMood(subtitle string) Mood {
	return Mood{
		Class:    models.StatusError,
		Text:     "ERROR",
		Arrow:    arrowUnknown,
		Subtitle: subtitle,
	}
}
