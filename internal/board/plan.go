package board

import "tablero/internal/models"

// Placement is one authoritative {card, column, position} assignment.
type Placement struct {
	CardID   string
	ColumnID string
	Position int
}

// PlacementPlan is the final, reindexed set of placements computed after a
// drag gesture ends. Plans are internally consistent: positions within each
// column form a dense 0..n-1 sequence.
type PlacementPlan []Placement

// PlanForColumn builds the plan entries for one column's card list. The list
// is expected to be reindexed already; positions are taken from the cards.
func PlanForColumn(columnID string, cards []*models.Card) PlacementPlan {
	plan := make(PlacementPlan, 0, len(cards))
	for _, card := range cards {
		plan = append(plan, Placement{
			CardID:   card.ID,
			ColumnID: columnID,
			Position: card.Position,
		})
	}
	return plan
}
