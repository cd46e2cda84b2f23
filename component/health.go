package component

// HealthChange is broadcast to observers whenever health or its bounds change.
type HealthChange struct {
	Current float64
	Max     float64
	Delta   float64
	Dead    bool
}

// HealthObserver receives health change notifications.
type HealthObserver func(evt HealthChange)

// Health tracks character health. The effective maximum is Base + Bonus.
type Health struct {
	Base    float64
	Bonus   float64
	Current float64
	Dead    bool

	observers map[int]HealthObserver
	nextID    int
	order     []int
}

// NewHealth creates a Health at full health.
func NewHealth(base float64) *Health {
	if base <= 0 {
		base = 1
	}
	return &Health{Base: base, Current: base}
}

// Max returns the effective maximum health.
func (h *Health) Max() float64 {
	if h == nil {
		return 0
	}
	return h.Base + h.Bonus
}

// IsAlive reports whether the character is alive.
func (h *Health) IsAlive() bool {
	return h != nil && !h.Dead && h.Current > 0
}

// ApplyDamage subtracts amount and notifies observers. It reports whether
// the damage killed the character on this call.
func (h *Health) ApplyDamage(amount float64) (died bool) {
	if h == nil || h.Dead {
		return false
	}
	h.Current -= amount
	if h.Current <= 0 {
		h.Dead = true
		died = true
	}
	h.notify(-amount)
	return died
}

// RestoreToMax sets current health to Base + Bonus.
func (h *Health) RestoreToMax() {
	if h == nil {
		return
	}
	prev := h.Current
	h.Current = h.Max()
	h.Dead = false
	h.notify(h.Current - prev)
}

// SetBonus changes the bonus component of the maximum and notifies with a
// zero delta. Current health is left alone in both directions.
func (h *Health) SetBonus(v float64) {
	if h == nil {
		return
	}
	h.Bonus = v
	h.notify(0)
}

// Observe registers fn and returns a function that removes it.
func (h *Health) Observe(fn HealthObserver) (cancel func()) {
	if h == nil || fn == nil {
		return func() {}
	}
	if h.observers == nil {
		h.observers = make(map[int]HealthObserver)
	}
	h.nextID++
	id := h.nextID
	h.observers[id] = fn
	h.order = append(h.order, id)
	return func() {
		delete(h.observers, id)
		for i, v := range h.order {
			if v == id {
				h.order = append(h.order[:i], h.order[i+1:]...)
				break
			}
		}
	}
}

func (h *Health) notify(delta float64) {
	if len(h.order) == 0 {
		return
	}
	evt := HealthChange{Current: h.Current, Max: h.Max(), Delta: delta, Dead: h.Dead}
	for _, id := range h.order {
		if fn := h.observers[id]; fn != nil {
			fn(evt)
		}
	}
}
