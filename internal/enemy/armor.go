package enemy

import "github.com/sigmazhou/warframe-damage-calculator/internal/dot"

// DebuffKind identifies a timed debuff on a target.
type DebuffKind string

const DebuffHeatArmorStrip DebuffKind = "heat_armor_strip"

// Armor-strip stage table: retained fraction of base armor per stage.
var stripRetained = [...]float64{1.00, 0.85, 0.70, 0.60, 0.50}

// MaxStripStage is the deepest armor-strip stage.
const MaxStripStage = len(stripRetained) - 1

const (
	// StripInterval is how often the stage advances while heat DOTs are
	// active on the target.
	StripInterval = 0.5
	// RecoveryInterval is how often the stage recedes once all heat DOTs
	// have expired. Recovery is deliberately slower than stripping.
	RecoveryInterval = 1.5
)

// ArmorStrip is the staged armor-reduction debuff driven by heat DOT
// presence. It advances one stage per StripInterval while heat DOTs
// exist and recedes one stage per RecoveryInterval while none do. The
// debuff only leaves the target's active set once it has fully
// recovered to stage zero with no heat DOTs remaining.
type ArmorStrip struct {
	stage          int
	lastTransition float64
}

// NewArmorStrip returns an armor-strip debuff starting at stage zero.
func NewArmorStrip(now float64) *ArmorStrip {
	return &ArmorStrip{lastTransition: now}
}

// Stage returns the current strip stage.
func (a *ArmorStrip) Stage() int {
	return a.stage
}

// RetainedFraction returns the fraction of base armor the target keeps
// at the current stage.
func (a *ArmorStrip) RetainedFraction() float64 {
	return stripRetained[a.stage]
}

// Expired reports whether the debuff should be removed from the target.
func (a *ArmorStrip) Expired(target *State) bool {
	return a.stage == 0 && target.Dots.Stacks(dot.Heat) == 0
}

// Update advances or recedes the strip stage based on heat DOT presence
// at the given time, then re-derives the target's current armor.
func (a *ArmorStrip) Update(target *State, now float64) {
	if target.Dots.Stacks(dot.Heat) > 0 {
		for a.stage < MaxStripStage && now-a.lastTransition >= StripInterval {
			a.stage++
			a.lastTransition += StripInterval
		}
		if a.stage == MaxStripStage {
			a.lastTransition = now
		}
	} else {
		for a.stage > 0 && now-a.lastTransition >= RecoveryInterval {
			a.stage--
			a.lastTransition += RecoveryInterval
		}
		if a.stage == 0 {
			a.lastTransition = now
		}
	}

	armor := target.BaseArmor * a.RetainedFraction()
	if armor < 0 {
		armor = 0
	}
	if armor > target.BaseArmor {
		armor = target.BaseArmor
	}
	target.CurrentArmor = armor
}

// UpdateDebuffs ticks every active debuff on the target and drops the
// ones that have expired.
func (s *State) UpdateDebuffs(now float64) {
	for kind, strip := range s.Debuffs {
		strip.Update(s, now)
		if strip.Expired(s) {
			delete(s.Debuffs, kind)
		}
	}
}

// EnsureArmorStrip adds the heat armor-strip debuff if it is not
// already active.
func (s *State) EnsureArmorStrip(now float64) {
	if _, ok := s.Debuffs[DebuffHeatArmorStrip]; !ok {
		s.Debuffs[DebuffHeatArmorStrip] = NewArmorStrip(now)
	}
}
