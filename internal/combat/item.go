package combat

// Item is a piece of equipment contributing flat stat bonuses while worn.
// Items have no behaviour of their own; aggregation simply sums their
// bonuses on top of the wearer's base stats.
type Item struct {
	Name  string
	Bonus Stats
}

func sumItemStats(items []Item) Stats {
	total := Stats{}
	for _, itm := range items {
		for k, v := range itm.Bonus {
			total[k] += v
		}
	}
	return total
}
