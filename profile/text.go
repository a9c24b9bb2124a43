package profile

import (
	"encoding/json"
	"fmt"

	toml "github.com/pelletier/go-toml"
	"github.com/atlantiscfg/atlantiscfg/keycode"
	yaml "gopkg.in/yaml.v3"
)

// textProfile is the on-disk shape of a Profile: every optional field is
// omitted when absent, ordered collections stay sequences, and macros stay
// a name-keyed mapping. It's shared across the JSON, YAML, and TOML codecs
// so the three formats agree on field names.
type textProfile struct {
	PollRate        *uint16                  `json:"poll_rate,omitempty" yaml:"poll_rate,omitempty" toml:"poll_rate,omitempty"`
	CurrentDPIIndex *uint8                   `json:"current_dpi_index,omitempty" yaml:"current_dpi_index,omitempty" toml:"current_dpi_index,omitempty"`
	LiftOffDistance *uint8                   `json:"lift_off_distance,omitempty" yaml:"lift_off_distance,omitempty" toml:"lift_off_distance,omitempty"`
	DebounceMs      *uint8                   `json:"debounce_ms,omitempty" yaml:"debounce_ms,omitempty" toml:"debounce_ms,omitempty"`
	MotionSync      *bool                    `json:"motion_sync,omitempty" yaml:"motion_sync,omitempty" toml:"motion_sync,omitempty"`
	AngleSnapping   *bool                    `json:"angle_snapping,omitempty" yaml:"angle_snapping,omitempty" toml:"angle_snapping,omitempty"`
	RippleControl   *bool                    `json:"ripple_control,omitempty" yaml:"ripple_control,omitempty" toml:"ripple_control,omitempty"`
	PeakPerformance *bool                    `json:"peak_performance,omitempty" yaml:"peak_performance,omitempty" toml:"peak_performance,omitempty"`
	PeakPerfTimeMs  *uint16                  `json:"peak_performance_time_ms,omitempty" yaml:"peak_performance_time_ms,omitempty" toml:"peak_performance_time_ms,omitempty"`
	HighPerformance *bool                    `json:"high_performance,omitempty" yaml:"high_performance,omitempty" toml:"high_performance,omitempty"`
	DPIs            []textDPI                `json:"dpis,omitempty" yaml:"dpis,omitempty" toml:"dpis,omitempty"`
	DPIColors       []textColor              `json:"dpi_colors,omitempty" yaml:"dpi_colors,omitempty" toml:"dpi_colors,omitempty"`
	ButtonActions   []textAction             `json:"button_actions,omitempty" yaml:"button_actions,omitempty" toml:"button_actions,omitempty"`
	Macros          map[string][]textMacroEv `json:"macros,omitempty" yaml:"macros,omitempty" toml:"macros,omitempty"`
}

type textDPI struct {
	X uint16 `json:"x" yaml:"x" toml:"x"`
	Y uint16 `json:"y" yaml:"y" toml:"y"`
}

type textColor struct {
	Red   uint8 `json:"red" yaml:"red" toml:"red"`
	Green uint8 `json:"green" yaml:"green" toml:"green"`
	Blue  uint8 `json:"blue" yaml:"blue" toml:"blue"`
}

type textKeyEvent struct {
	Key   string `json:"key" yaml:"key" toml:"key"`
	State string `json:"state" yaml:"state" toml:"state"`
}

type textMacroEv struct {
	KeyEvent textKeyEvent `json:"key_event" yaml:"key_event" toml:"key_event"`
	DelayMs  uint16       `json:"delay_ms" yaml:"delay_ms" toml:"delay_ms"`
}

type textAction struct {
	Kind           string         `json:"kind" yaml:"kind" toml:"kind"`
	DPI            *uint16        `json:"dpi,omitempty" yaml:"dpi,omitempty" toml:"dpi,omitempty"`
	FireIntervalMs *uint8         `json:"fire_interval_ms,omitempty" yaml:"fire_interval_ms,omitempty" toml:"fire_interval_ms,omitempty"`
	FireRepeat     *uint8         `json:"fire_repeat,omitempty" yaml:"fire_repeat,omitempty" toml:"fire_repeat,omitempty"`
	Events         []textKeyEvent `json:"events,omitempty" yaml:"events,omitempty" toml:"events,omitempty"`
	Macro          string         `json:"macro,omitempty" yaml:"macro,omitempty" toml:"macro,omitempty"`
}

func keyEventToText(e KeyEvent) textKeyEvent {
	name, ok := keycode.Name[e.Key]
	if !ok {
		name = fmt.Sprintf("0x%04x", uint16(e.Key))
	}
	return textKeyEvent{Key: name, State: e.State.String()}
}

func keyEventFromText(t textKeyEvent) (KeyEvent, error) {
	key, ok := keycode.ByName(t.Key)
	if !ok {
		return KeyEvent{}, fmt.Errorf("profile: unknown key name %q", t.Key)
	}
	var state keycode.KeyState
	switch t.State {
	case "pressed":
		state = keycode.Pressed
	case "released":
		state = keycode.Released
	default:
		return KeyEvent{}, fmt.Errorf("profile: unknown key state %q", t.State)
	}
	return KeyEvent{Key: key, State: state}, nil
}

func toText(p *Profile) *textProfile {
	t := &textProfile{
		PollRate:        p.PollRate,
		CurrentDPIIndex: p.CurrentDPIIndex,
		LiftOffDistance: p.LiftOffDistance,
		DebounceMs:      p.DebounceMs,
		MotionSync:      p.MotionSync,
		AngleSnapping:   p.AngleSnapping,
		RippleControl:   p.RippleControl,
		PeakPerformance: p.PeakPerformance,
		PeakPerfTimeMs:  p.PeakPerfTimeMs,
		HighPerformance: p.HighPerformance,
	}
	for _, d := range p.DPIs {
		t.DPIs = append(t.DPIs, textDPI{X: d.X, Y: d.Y})
	}
	for _, c := range p.DPIColors {
		t.DPIColors = append(t.DPIColors, textColor{Red: c.Red, Green: c.Green, Blue: c.Blue})
	}
	for _, a := range p.ButtonActions {
		ta := textAction{Kind: a.Kind.String(), Macro: a.MacroName}
		if a.Kind == ActionDpiLock {
			dpi := a.DPI
			ta.DPI = &dpi
		}
		if a.Kind == ActionFire {
			interval, repeat := a.FireIntervalMs, a.FireRepeat
			ta.FireIntervalMs = &interval
			ta.FireRepeat = &repeat
		}
		for _, e := range a.ComboEvents {
			ta.Events = append(ta.Events, keyEventToText(e))
		}
		t.ButtonActions = append(t.ButtonActions, ta)
	}
	if len(p.Macros) > 0 {
		t.Macros = make(map[string][]textMacroEv, len(p.Macros))
		for name, events := range p.Macros {
			var tevents []textMacroEv
			for _, e := range events {
				tevents = append(tevents, textMacroEv{
					KeyEvent: keyEventToText(e.KeyEvent),
					DelayMs:  e.DelayMs,
				})
			}
			t.Macros[name] = tevents
		}
	}
	return t
}

func fromText(t *textProfile) (*Profile, error) {
	p := &Profile{
		PollRate:        t.PollRate,
		CurrentDPIIndex: t.CurrentDPIIndex,
		LiftOffDistance: t.LiftOffDistance,
		DebounceMs:      t.DebounceMs,
		MotionSync:      t.MotionSync,
		AngleSnapping:   t.AngleSnapping,
		RippleControl:   t.RippleControl,
		PeakPerformance: t.PeakPerformance,
		PeakPerfTimeMs:  t.PeakPerfTimeMs,
		HighPerformance: t.HighPerformance,
	}
	for _, d := range t.DPIs {
		p.DPIs = append(p.DPIs, DPI{X: d.X, Y: d.Y})
	}
	for _, c := range t.DPIColors {
		p.DPIColors = append(p.DPIColors, Color{Red: c.Red, Green: c.Green, Blue: c.Blue})
	}
	for _, ta := range t.ButtonActions {
		kind, ok := ActionKindFromString(ta.Kind)
		if !ok {
			return nil, fmt.Errorf("profile: unknown action kind %q", ta.Kind)
		}
		a := Action{Kind: kind, MacroName: ta.Macro}
		if ta.DPI != nil {
			a.DPI = *ta.DPI
		}
		if ta.FireIntervalMs != nil {
			a.FireIntervalMs = *ta.FireIntervalMs
		}
		if ta.FireRepeat != nil {
			a.FireRepeat = *ta.FireRepeat
		}
		for _, te := range ta.Events {
			e, err := keyEventFromText(te)
			if err != nil {
				return nil, err
			}
			a.ComboEvents = append(a.ComboEvents, e)
		}
		p.ButtonActions = append(p.ButtonActions, a)
	}
	if len(t.Macros) > 0 {
		p.Macros = make(map[string][]MacroEvent, len(t.Macros))
		for name, tevents := range t.Macros {
			var events []MacroEvent
			for _, te := range tevents {
				e, err := keyEventFromText(te.KeyEvent)
				if err != nil {
					return nil, err
				}
				events = append(events, MacroEvent{KeyEvent: e, DelayMs: te.DelayMs})
			}
			p.Macros[name] = events
		}
	}
	return p, nil
}

// MarshalJSON renders a Profile to its persisted JSON form.
func MarshalJSON(p *Profile) ([]byte, error) {
	return json.MarshalIndent(toText(p), "", "  ")
}

// UnmarshalJSON parses a Profile from its persisted JSON form.
func UnmarshalJSON(data []byte) (*Profile, error) {
	var t textProfile
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("profile: parse json: %w", err)
	}
	return fromText(&t)
}

// MarshalYAML renders a Profile to its persisted YAML form.
func MarshalYAML(p *Profile) ([]byte, error) {
	return yaml.Marshal(toText(p))
}

// UnmarshalYAML parses a Profile from its persisted YAML form.
func UnmarshalYAML(data []byte) (*Profile, error) {
	var t textProfile
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("profile: parse yaml: %w", err)
	}
	return fromText(&t)
}

// MarshalTOML renders a Profile to its persisted TOML form.
func MarshalTOML(p *Profile) ([]byte, error) {
	return toml.Marshal(*toText(p))
}

// UnmarshalTOML parses a Profile from its persisted TOML form.
func UnmarshalTOML(data []byte) (*Profile, error) {
	var t textProfile
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("profile: parse toml: %w", err)
	}
	return fromText(&t)
}
