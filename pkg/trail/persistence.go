package trail

import "fmt"

var persistenceNames = map[Persistence]string{
	PersistOff:         "off",
	PersistAlways:      "always",
	PersistConditional: "conditional",
}

var persistWhenNames = map[PersistWhen]string{
	OnMovement: "on_movement",
	Custom:     "custom",
}

func (p Persistence) String() string {
	if name, ok := persistenceNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Persistence(%d)", int(p))
}

// MarshalText implements encoding.TextMarshaler.
func (p Persistence) MarshalText() ([]byte, error) {
	if _, ok := persistenceNames[p]; !ok {
		return nil, fmt.Errorf("unknown persistence %d", int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Persistence) UnmarshalText(text []byte) error {
	for v, name := range persistenceNames {
		if name == string(text) {
			*p = v
			return nil
		}
	}
	return fmt.Errorf("unknown persistence %q", text)
}

func (w PersistWhen) String() string {
	if name, ok := persistWhenNames[w]; ok {
		return name
	}
	return fmt.Sprintf("PersistWhen(%d)", int(w))
}

// MarshalText implements encoding.TextMarshaler.
func (w PersistWhen) MarshalText() ([]byte, error) {
	if _, ok := persistWhenNames[w]; !ok {
		return nil, fmt.Errorf("unknown persist_when %d", int(w))
	}
	return []byte(w.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (w *PersistWhen) UnmarshalText(text []byte) error {
	for v, name := range persistWhenNames {
		if name == string(text) {
			*w = v
			return nil
		}
	}
	return fmt.Errorf("unknown persist_when %q", text)
}
