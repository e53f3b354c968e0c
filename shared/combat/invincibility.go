package combat

import "github.com/automoto/cryptblade/shared/ident"

// Invincibility maps attacker IDs to the ticks left during which their
// hits are ignored. The zero value is ready to use.
type Invincibility struct {
	remaining map[ident.ID]int
}

// Grant inserts or refreshes the window for attacker.
func (v *Invincibility) Grant(attacker ident.ID, ticks int) {
	if ticks <= 0 {
		return
	}
	if v.remaining == nil {
		v.remaining = make(map[ident.ID]int)
	}
	v.remaining[attacker] = ticks
}

func (v *Invincibility) Has(attacker ident.ID) bool {
	_, ok := v.remaining[attacker]
	return ok
}

func (v *Invincibility) Remaining(attacker ident.ID) int {
	return v.remaining[attacker]
}

func (v *Invincibility) Len() int { return len(v.remaining) }

// Tick decrements every window and drops the expired ones.
func (v *Invincibility) Tick() {
	for id, n := range v.remaining {
		if n <= 1 {
			delete(v.remaining, id)
			continue
		}
		v.remaining[id] = n - 1
	}
}
