package combat

import (
	"fmt"
	"strings"
)

// ActionOutcome is the immutable record of one executed skill. Produced once
// per execution and never mutated afterwards.
type ActionOutcome struct {
	Actor  string `json:"actor"`
	Target string `json:"target"`
	Skill  string `json:"skill"`
	Hit    bool   `json:"hit"`
	Crit   bool   `json:"crit"`
	// Damage is post-mitigation damage dealt.
	Damage int `json:"damage"`
	Healed int `json:"healed,omitempty"`
}

// AsMap returns a plain serializable form suitable for external logging.
func (o ActionOutcome) AsMap() map[string]any {
	return map[string]any{
		"actor":  o.Actor,
		"target": o.Target,
		"skill":  o.Skill,
		"hit":    o.Hit,
		"crit":   o.Crit,
		"damage": o.Damage,
		"healed": o.Healed,
	}
}

// Round is the ordered sequence of outcomes executed within one round.
type Round []ActionOutcome

// BattleLog is the ordered sequence of rounds, in turn-execution order.
// Append-only during the battle, read-only afterwards.
type BattleLog struct {
	Rounds []Round `json:"rounds"`
}

// AddRound appends one finished round.
func (l *BattleLog) AddRound(r Round) {
	l.Rounds = append(l.Rounds, r)
}

// String renders the full turn-by-turn log for human consumption.
func (l *BattleLog) String() string {
	var out []string
	for i, round := range l.Rounds {
		out = append(out, fmt.Sprintf("===== Round %d =====", i+1))
		for _, a := range round {
			switch {
			case !a.Hit:
				out = append(out, fmt.Sprintf("%s's %s MISSED %s", a.Actor, a.Skill, a.Target))
			case a.Healed > 0:
				out = append(out, fmt.Sprintf("%s used %s and recovered %d HP", a.Actor, a.Skill, a.Healed))
			default:
				crit := ""
				if a.Crit {
					crit = " CRIT!"
				}
				out = append(out, fmt.Sprintf("%s used %s on %s for %d dmg%s", a.Actor, a.Skill, a.Target, a.Damage, crit))
			}
		}
	}
	return strings.Join(out, "\n")
}
