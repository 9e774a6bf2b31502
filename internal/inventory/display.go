package inventory

import (
	"github.com/Two-Ocean/armory/internal/entities"
	"github.com/Two-Ocean/armory/internal/errors"
)

// DisplayRow is the read-only projection of one item for list UIs: enough
// to render a slot without touching the live item.
type DisplayRow struct {
	Index      int
	ItemID     string
	Name       string
	Rarity     entities.Rarity
	WeaponType entities.WeaponType
	Level      int32
	XP         int64
	MaxXP      int64
	IsEquipped bool
}

// DisplayRows projects every item into a row, in inventory order. MaxXP is
// the next rank's threshold; at max rank it holds the final threshold so
// progress bars render full rather than dividing by zero.
func (inv *Inventory) DisplayRows() ([]DisplayRow, error) {
	rows := make([]DisplayRow, 0, len(inv.items))
	for idx, item := range inv.items {
		snapshot, err := item.Snapshot()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to snapshot item %q", item.id)
		}

		maxXP := snapshot.Current.RequiredXP
		if snapshot.Next != nil {
			maxXP = snapshot.Next.RequiredXP
		}

		rows = append(rows, DisplayRow{
			Index:      idx,
			ItemID:     item.id,
			Name:       item.def.Name,
			Rarity:     item.def.Rarity,
			WeaponType: item.def.WeaponType,
			Level:      snapshot.Current.Rank,
			XP:         snapshot.XP,
			MaxXP:      maxXP,
			IsEquipped: idx == inv.equipped,
		})
	}
	return rows, nil
}
