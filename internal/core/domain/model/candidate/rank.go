package candidate

import "fmt"

// rankLabels are the labels for the top three positions. Positions beyond the
// third get an ordinal label derived from their position.
var rankLabels = [...]string{"BEST", "2ND BEST", "3RD BEST"}

// rankColors is the fixed display palette. Positions beyond the palette fall
// back to DefaultRankColor.
var rankColors = [...]string{
	"#28a745", // green
	"#007bff", // blue
	"#fd7e14", // orange
	"#6f42c1", // purple
	"#e83e8c", // pink
	"#20c997", // teal
}

// rankBackgrounds are the row tints for the top three positions.
var rankBackgrounds = [...]string{"#f8fff8", "#f0f8ff", "#fff8f0"}

// DefaultRankColor is the neutral gray used for positions beyond the palette.
const DefaultRankColor = "#6c757d"

// DefaultRankBackground is the background used for positions without a tint.
const DefaultRankBackground = "transparent"

// Rank is the display annotation assigned to a candidate based on its
// position in an ordered candidate list. The zero value means "not ranked".
type Rank struct {
	Label      string
	Color      string
	Background string
}

// RankForPosition builds the rank annotation for a zero-based position in an
// ordered candidate list.
//
// Position 0 is labeled "BEST", 1 "2ND BEST", 2 "3RD BEST"; every later
// position n is labeled "{n+1}TH BEST". Colors cycle through a fixed palette
// of six; positions beyond the palette use DefaultRankColor.
func RankForPosition(position int) Rank {
	rank := Rank{
		Color:      DefaultRankColor,
		Background: DefaultRankBackground,
	}

	if position < len(rankLabels) {
		rank.Label = rankLabels[position]
		rank.Background = rankBackgrounds[position]
	} else {
		rank.Label = fmt.Sprintf("%dTH BEST", position+1)
	}

	if position < len(rankColors) {
		rank.Color = rankColors[position]
	}

	return rank
}

// IsZero reports whether the candidate has not been ranked yet.
func (r Rank) IsZero() bool {
	return r.Label == ""
}
