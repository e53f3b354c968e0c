package systems

import (
	"strconv"

	"github.com/automoto/cryptblade/components"
	cfg "github.com/automoto/cryptblade/config"
	"github.com/automoto/cryptblade/shared/combat"
	"github.com/automoto/cryptblade/shared/ident"
	"github.com/automoto/cryptblade/systems/factory"
	"github.com/automoto/cryptblade/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

type pendingHit struct {
	target *donburi.Entry
	hit    combat.Hit
}

// UpdateWeapons advances every swing and resolves blade contacts. Player
// weapons resolve before enemy weapons. Hits are queued as damage events
// only after every attacker has been tested.
func UpdateWeapons(ecs *ecs.ECS) {
	resolver := combat.Resolver{NumberTTL: cfg.Combat.NumberTTL}

	var pending []pendingHit
	for _, e := range collect(ecs, tags.Player) {
		pending = append(pending, swingWeapon(ecs, resolver, e, tags.Enemy, tags.ResolvEnemy)...)
	}
	for _, e := range collect(ecs, tags.Enemy) {
		pending = append(pending, swingWeapon(ecs, resolver, e, tags.Player, tags.ResolvPlayer)...)
	}

	for _, p := range pending {
		queueDamage(p.target, components.DamageHit{
			Attacker: p.hit.Attacker,
			Amount:   p.hit.Damage,
		})
		n := p.hit.Number
		factory.SpawnDamageNumber(ecs, strconv.Itoa(n.Amount), n.X, n.Y, n.TTL, cfg.Combat.NumberColor)
	}
}

func swingWeapon(ecs *ecs.ECS, resolver combat.Resolver, e *donburi.Entry, hostile *donburi.ComponentType[donburi.Tag], hostileTag string) []pendingHit {
	if e.HasComponent(components.Death) {
		return nil
	}
	weapon := components.Weapon.Get(e)
	if weapon.Weapon == nil {
		return nil
	}
	weapon.Swing.Advance()

	box := components.Object.Get(e).Box()
	cx, cy := box.Center()
	bounds := combat.WeaponBounds(cx, cy, *weapon.Weapon, weapon.Swing.Dir)
	if probe := weapon.Broadphase; probe != nil {
		probe.X, probe.Y = bounds.X, bounds.Y
		probe.Update()
	}
	if !weapon.Swing.Cutting() {
		return nil
	}

	entries := candidates(ecs, weapon, hostile, hostileTag)
	targets := make([]combat.Target, 0, len(entries))
	byID := make(map[ident.ID]*donburi.Entry, len(entries))
	for _, t := range entries {
		ch := components.Character.Get(t)
		targets = append(targets, combat.Target{
			ID:            ch.ID,
			Box:           components.Object.Get(t).Box(),
			Mask:          ch.Mask,
			Invincibility: components.Invincibility.Get(t),
		})
		byID[ch.ID] = t
	}

	hits := resolver.Resolve(combat.Attacker{
		ID:     components.Character.Get(e).ID,
		Box:    box,
		Weapon: weapon.Weapon,
		Swing:  &weapon.Swing,
	}, targets)

	out := make([]pendingHit, 0, len(hits))
	for _, h := range hits {
		out = append(out, pendingHit{target: byID[h.Target], hit: h})
	}
	return out
}

// candidates narrows the hostile characters to those the weapon's
// broadphase object touches. Without a space every hostile is a candidate.
func candidates(ecs *ecs.ECS, weapon *components.WeaponData, hostile *donburi.ComponentType[donburi.Tag], hostileTag string) []*donburi.Entry {
	var out []*donburi.Entry
	probe := weapon.Broadphase
	if probe == nil || probe.Space == nil {
		hostile.Each(ecs.World, func(t *donburi.Entry) {
			if !t.HasComponent(components.Death) {
				out = append(out, t)
			}
		})
		return out
	}

	check := probe.Check(0, 0, hostileTag)
	if check == nil {
		return nil
	}
	for _, o := range check.Objects {
		t, ok := o.Data.(*donburi.Entry)
		if !ok || !t.Valid() || t.HasComponent(components.Death) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func queueDamage(e *donburi.Entry, hit components.DamageHit) {
	if e.HasComponent(components.DamageEvent) {
		event := components.DamageEvent.Get(e)
		event.Hits = append(event.Hits, hit)
		return
	}
	donburi.Add(e, components.DamageEvent, &components.DamageEventData{
		Hits: []components.DamageHit{hit},
	})
}

// collect snapshots the entries carrying c so the caller may change their
// archetypes while walking them.
func collect(ecs *ecs.ECS, c donburi.IComponentType) []*donburi.Entry {
	var out []*donburi.Entry
	donburi.NewQuery(filter.Contains(c)).Each(ecs.World, func(e *donburi.Entry) {
		out = append(out, e)
	})
	return out
}
