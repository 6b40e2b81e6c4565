// Package dot holds the damage-over-time state machine: per-element
// stacks of ticking instances with either independent or refresh-all
// timer behavior.
package dot

// Type identifies a DOT effect.
type Type string

const (
	Heat        Type = "heat"
	Toxin       Type = "toxin"
	Slash       Type = "slash"
	Electricity Type = "electricity"
	Gas         Type = "gas"
)

// Behavior controls how a new proc interacts with existing stacks of
// the same type.
type Behavior int

const (
	// BehaviorIndependent appends a new instance with its own countdown.
	BehaviorIndependent Behavior = iota
	// BehaviorRefreshAll resets the remaining duration of every existing
	// instance to the new instance's total duration before appending it.
	BehaviorRefreshAll
)

// Instance is a single active DOT stack.
type Instance struct {
	Type          Type
	DamagePerTick float64
	Remaining     float64 // seconds
	TickRate      float64 // ticks per second
	TotalDuration float64 // seconds, as created
}

// Tick advances the instance by delta seconds and returns the damage
// dealt over that window. An already expired instance deals nothing.
func (i *Instance) Tick(delta float64) float64 {
	if i.Remaining <= 0 {
		return 0
	}
	i.Remaining -= delta
	return i.DamagePerTick * delta * i.TickRate
}

// Active reports whether the instance still has time remaining.
func (i *Instance) Active() bool {
	return i.Remaining > 0
}

// State tracks all active DOT stacks on one target.
type State struct {
	active map[Type][]*Instance
}

// NewState returns an empty DOT state.
func NewState() *State {
	return &State{active: make(map[Type][]*Instance)}
}

// Add inserts a new instance according to the given stacking behavior.
func (s *State) Add(inst *Instance, behavior Behavior) {
	if behavior == BehaviorRefreshAll {
		for _, existing := range s.active[inst.Type] {
			existing.Remaining = inst.TotalDuration
		}
	}
	s.active[inst.Type] = append(s.active[inst.Type], inst)
}

// TickAll advances every active instance by delta seconds and returns
// the damage dealt per DOT type. Instances that run out are dropped at
// the end of the tick; a type left with no instances is removed from
// the state entirely, which is what the armor-strip debuff observes.
func (s *State) TickAll(delta float64) map[Type]float64 {
	dealt := make(map[Type]float64)
	for t, instances := range s.active {
		var total float64
		remaining := instances[:0]
		for _, inst := range instances {
			total += inst.Tick(delta)
			if inst.Active() {
				remaining = append(remaining, inst)
			}
		}
		if len(remaining) == 0 {
			delete(s.active, t)
		} else {
			s.active[t] = remaining
		}
		if total > 0 {
			dealt[t] = total
		}
	}
	return dealt
}

// Stacks returns the number of active instances for a DOT type.
func (s *State) Stacks(t Type) int {
	return len(s.active[t])
}

// StackCounts returns the active stack count per type, omitting types
// with no stacks.
func (s *State) StackCounts() map[Type]int {
	counts := make(map[Type]int, len(s.active))
	for t, instances := range s.active {
		counts[t] = len(instances)
	}
	return counts
}

// Instances returns the active instances for a DOT type.
func (s *State) Instances(t Type) []*Instance {
	return s.active[t]
}

// Clear removes all active DOTs.
func (s *State) Clear() {
	s.active = make(map[Type][]*Instance)
}
