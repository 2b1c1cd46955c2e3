package systems

import "github.com/pthm-cable/obeh/components"

// Directive is the preference registry behind the priority directive:
// the human's stated preferences scale what the parent does for them.
type Directive struct {
	prefs map[components.Domain]float64
}

// NewDirective creates an empty registry.
func NewDirective() Directive {
	return Directive{prefs: make(map[components.Domain]float64, len(components.Domains))}
}

// Record overwrites the stored preference for a domain.
func (d *Directive) Record(domain components.Domain, value float64) {
	d.prefs[domain] = value
}

// Preference returns the stored value for a domain.
func (d *Directive) Preference(domain components.Domain) (float64, bool) {
	v, ok := d.prefs[domain]
	return v, ok
}

// Respect scales an action by 0.5 + 0.5*preference. Unregistered domains
// pass the action through unchanged.
func (d *Directive) Respect(domain components.Domain, action float64) float64 {
	v, ok := d.prefs[domain]
	if !ok {
		return action
	}
	return action * (0.5 + 0.5*v)
}
