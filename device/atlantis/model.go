package atlantis

import (
	"fmt"

	"github.com/atlantiscfg/atlantiscfg/device"
	"github.com/atlantiscfg/atlantiscfg/profile"
)

// Button IDs carried by the RawButton action variant, one per physical
// click the five fixed click actions can bind to.
const (
	buttonIDLeft    = 1
	buttonIDRight   = 2
	buttonIDMiddle  = 4
	buttonIDBack    = 8
	buttonIDForward = 16
)

func pollRateToRaw(hz uint16) (uint8, error) {
	switch hz {
	case 1000:
		return 1, nil
	case 500:
		return 2, nil
	case 250:
		return 4, nil
	case 125:
		return 8, nil
	case 4000:
		return 16, nil
	default:
		return 0, device.InvalidConversion(fmt.Sprintf("unsupported poll rate %d Hz", hz))
	}
}

func pollRateFromRaw(raw uint8) (uint16, error) {
	switch raw {
	case 1:
		return 1000, nil
	case 2:
		return 500, nil
	case 4:
		return 250, nil
	case 8:
		return 125, nil
	case 16:
		return 4000, nil
	default:
		return 0, device.InvalidConversion(fmt.Sprintf("unknown poll rate byte 0x%02x", raw))
	}
}

func peakPerfTimeToRaw(ms uint16) (uint8, error) {
	if ms > 2550 {
		return 0, device.InvalidConversion(fmt.Sprintf("peak performance time %dms exceeds 2550ms", ms))
	}
	return uint8(ms / 10), nil
}

func peakPerfTimeFromRaw(raw uint8) uint16 { return uint16(raw) * 10 }

func boolToRaw(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

func boolFromRaw(raw uint8) bool { return raw != 0 }

// actionToRaw converts the non-payload fields of a button action. Combo
// events and macro names are resolved separately by ProfileToRaw, since
// they live in their own slot pools rather than inside the action itself.
func actionToRaw(a profile.Action) (RawAction, error) {
	switch a.Kind {
	case profile.ActionDisabled:
		return RawAction{Kind: RawDisabled}, nil
	case profile.ActionLeftClick:
		return RawAction{Kind: RawButton, ButtonID: buttonIDLeft}, nil
	case profile.ActionRightClick:
		return RawAction{Kind: RawButton, ButtonID: buttonIDRight}, nil
	case profile.ActionMiddleClick:
		return RawAction{Kind: RawButton, ButtonID: buttonIDMiddle}, nil
	case profile.ActionBackClick:
		return RawAction{Kind: RawButton, ButtonID: buttonIDBack}, nil
	case profile.ActionForwardClick:
		return RawAction{Kind: RawButton, ButtonID: buttonIDForward}, nil
	case profile.ActionDpiLoop:
		return RawAction{Kind: RawDpiLoop}, nil
	case profile.ActionDpiUp:
		return RawAction{Kind: RawDpiUp}, nil
	case profile.ActionDpiDown:
		return RawAction{Kind: RawDpiDown}, nil
	case profile.ActionDpiLock:
		return RawAction{Kind: RawDpiLock, DpiRaw: dpiToRaw(a.DPI)}, nil
	case profile.ActionPollRateLoop:
		return RawAction{Kind: RawPollRateLoop}, nil
	case profile.ActionWheelLeft:
		return RawAction{Kind: RawWheelLeft}, nil
	case profile.ActionWheelRight:
		return RawAction{Kind: RawWheelRight}, nil
	case profile.ActionWheelUp:
		return RawAction{Kind: RawWheelUp}, nil
	case profile.ActionWheelDown:
		return RawAction{Kind: RawWheelDown}, nil
	case profile.ActionFire:
		return RawAction{Kind: RawFire, Interval: a.FireIntervalMs, Repeat: a.FireRepeat}, nil
	case profile.ActionCombo:
		return RawAction{Kind: RawCombo}, nil
	case profile.ActionMacro:
		return RawAction{Kind: RawMacro}, nil
	default:
		return RawAction{}, device.InvalidConversion(fmt.Sprintf("unknown action kind %d", a.Kind))
	}
}

// rawActionToAction is the reverse of actionToRaw. Combo and macro actions
// come back with their payload fields empty; ProfileToRaw's counterpart,
// RawToProfile, fills ComboEvents and MacroName in from the matching slot
// pool afterward.
func rawActionToAction(r RawAction) (profile.Action, error) {
	switch r.Kind {
	case RawDisabled:
		return profile.Disabled(), nil
	case RawButton:
		switch r.ButtonID {
		case buttonIDLeft:
			return profile.LeftClick(), nil
		case buttonIDRight:
			return profile.RightClick(), nil
		case buttonIDMiddle:
			return profile.MiddleClick(), nil
		case buttonIDBack:
			return profile.BackClick(), nil
		case buttonIDForward:
			return profile.ForwardClick(), nil
		default:
			return profile.Action{}, device.InvalidConversion(fmt.Sprintf("unknown button id %d", r.ButtonID))
		}
	case RawDpiLoop:
		return profile.DpiLoop(), nil
	case RawDpiUp:
		return profile.DpiUp(), nil
	case RawDpiDown:
		return profile.DpiDown(), nil
	case RawDpiLock:
		return profile.DpiLock(dpiFromRaw(r.DpiRaw)), nil
	case RawPollRateLoop:
		return profile.PollRateLoop(), nil
	case RawWheelLeft:
		return profile.WheelLeft(), nil
	case RawWheelRight:
		return profile.WheelRight(), nil
	case RawWheelUp:
		return profile.WheelUp(), nil
	case RawWheelDown:
		return profile.WheelDown(), nil
	case RawFire:
		return profile.Fire(r.Interval, r.Repeat), nil
	case RawCombo:
		return profile.Combo(nil), nil
	case RawMacro:
		return profile.Macro(""), nil
	default:
		return profile.Action{}, device.InvalidConversion(fmt.Sprintf("unknown raw action kind %d", r.Kind))
	}
}

// ProfileToRaw converts a user-facing profile into its wire representation
// sized for numButtons button-action, combo, and macro slots. Soft
// degradations (a DPI stage with a color but no resolution, more button
// actions than buttons, an undefined macro reference, an exhausted macro
// pool) are reported as warnings rather than failing the whole conversion;
// malformed data (an unencodable key, an out-of-range value, more than
// maxDpiStages DPI stages) is returned as an error.
func ProfileToRaw(p *profile.Profile, numButtons uint8) (*RawProfile, []string, error) {
	var warnings []string
	raw := &RawProfile{}

	if p.PollRate != nil {
		b, err := pollRateToRaw(*p.PollRate)
		if err != nil {
			return nil, nil, err
		}
		raw.PollRate = settingOf(b)
	}
	if p.CurrentDPIIndex != nil {
		if *p.CurrentDPIIndex >= maxDpiStages {
			return nil, nil, device.InvalidConversion(fmt.Sprintf("current DPI index %d out of range", *p.CurrentDPIIndex))
		}
		raw.CurrentDpiIndex = settingOf(*p.CurrentDPIIndex)
	}
	if p.LiftOffDistance != nil {
		raw.LiftOffDistance = settingOf(*p.LiftOffDistance)
	}
	if p.DebounceMs != nil {
		raw.DebounceMs = settingOf(*p.DebounceMs)
	}
	if p.MotionSync != nil {
		raw.MotionSync = settingOf(boolToRaw(*p.MotionSync))
	}
	if p.AngleSnapping != nil {
		raw.AngleSnapping = settingOf(boolToRaw(*p.AngleSnapping))
	}
	if p.RippleControl != nil {
		raw.RippleControl = settingOf(boolToRaw(*p.RippleControl))
	}
	if p.PeakPerformance != nil {
		raw.PeakPerformance = settingOf(boolToRaw(*p.PeakPerformance))
	}
	if p.PeakPerfTimeMs != nil {
		b, err := peakPerfTimeToRaw(*p.PeakPerfTimeMs)
		if err != nil {
			return nil, nil, err
		}
		raw.PeakPerformanceTime = settingOf(b)
	}
	if p.HighPerformance != nil {
		raw.HighPerformance = settingOf(boolToRaw(*p.HighPerformance))
	}

	dpiCount := len(p.DPIs)
	if len(p.DPIColors) > dpiCount {
		dpiCount = len(p.DPIColors)
	}
	if dpiCount > maxDpiStages {
		return nil, nil, device.InvalidConversion(fmt.Sprintf("%d DPI stages exceeds maximum %d", dpiCount, maxDpiStages))
	}
	if dpiCount > 0 {
		raw.DpiCount = settingOf(uint8(dpiCount))
		raw.Dpis = make([]setting[RawDpi], dpiCount)
		raw.DpiColors = make([]setting[RawColor], dpiCount)
		for i := 0; i < dpiCount; i++ {
			if i < len(p.DPIs) {
				raw.Dpis[i] = settingOf(RawDpi{X: dpiToRaw(p.DPIs[i].X), Y: dpiToRaw(p.DPIs[i].Y)})
			} else {
				warnings = append(warnings, fmt.Sprintf("dpi stage %d has a color but no resolution, leaving it unset", i))
			}
			if i < len(p.DPIColors) {
				raw.DpiColors[i] = settingOf(RawColor(p.DPIColors[i]))
			}
		}
	}

	if int(numButtons) < len(p.ButtonActions) {
		warnings = append(warnings, fmt.Sprintf("profile defines %d button actions, truncating to %d", len(p.ButtonActions), numButtons))
	}
	raw.ButtonActions = make([]setting[RawAction], numButtons)
	raw.Combos = make([]setting[RawCombo], numButtons)
	raw.Macros = make([]setting[RawMacro], numButtons)
	nextMacroSlot := uint8(0)

	for i := 0; i < int(numButtons) && i < len(p.ButtonActions); i++ {
		action := p.ButtonActions[i]
		ra, err := actionToRaw(action)
		if err != nil {
			return nil, nil, err
		}

		switch action.Kind {
		case profile.ActionCombo:
			events := make([]RawKeyEvent, len(action.ComboEvents))
			for j, e := range action.ComboEvents {
				re, err := keyEventToRaw(e)
				if err != nil {
					return nil, nil, err
				}
				events[j] = re
			}
			raw.Combos[i] = settingOf(RawCombo{Events: events})

		case profile.ActionMacro:
			macroEvents, defined := p.Macros[action.MacroName]
			if !defined {
				warnings = append(warnings, fmt.Sprintf("button %d references undefined macro %q, disabling it", i, action.MacroName))
				raw.ButtonActions[i] = settingOf(RawAction{Kind: RawDisabled})
				continue
			}
			if int(nextMacroSlot) >= int(numButtons) {
				warnings = append(warnings, fmt.Sprintf("macro pool exhausted, button %d's macro %q dropped", i, action.MacroName))
				raw.ButtonActions[i] = settingOf(RawAction{Kind: RawDisabled})
				continue
			}
			idx := nextMacroSlot
			nextMacroSlot++

			wireEvents := make([]RawMacroEvent, len(macroEvents))
			for j, me := range macroEvents {
				re, err := keyEventToRaw(me.KeyEvent)
				if err != nil {
					return nil, nil, err
				}
				wireEvents[j] = RawMacroEvent{KeyEvent: re, DelayMs: me.DelayMs}
			}
			raw.Macros[idx] = settingOf(RawMacro{Name: action.MacroName, Events: wireEvents})
			ra.MacroIndex = idx
		}

		raw.ButtonActions[i] = settingOf(ra)
	}

	return raw, warnings, nil
}

// RawToProfile converts a wire profile back into user-facing form. A macro
// action's name is always filled in from the macro's own stored name
// (rather than left blank), even though the source implementation this
// protocol was reverse engineered from discards it at this step — see
// DESIGN.md. A button bound to a combo or macro slot that has no stored
// data is a semantic mismatch, not a soft degradation, and is returned as
// an error rather than a warning.
func RawToProfile(raw *RawProfile) (*profile.Profile, []string, error) {
	var warnings []string
	p := &profile.Profile{}

	if v, ok := raw.PollRate.Get(); ok {
		hz, err := pollRateFromRaw(v)
		if err != nil {
			return nil, nil, err
		}
		p.PollRate = &hz
	}
	if v, ok := raw.CurrentDpiIndex.Get(); ok {
		p.CurrentDPIIndex = &v
	}
	if v, ok := raw.LiftOffDistance.Get(); ok {
		p.LiftOffDistance = &v
	}
	if v, ok := raw.DebounceMs.Get(); ok {
		p.DebounceMs = &v
	}
	if v, ok := raw.MotionSync.Get(); ok {
		b := boolFromRaw(v)
		p.MotionSync = &b
	}
	if v, ok := raw.AngleSnapping.Get(); ok {
		b := boolFromRaw(v)
		p.AngleSnapping = &b
	}
	if v, ok := raw.RippleControl.Get(); ok {
		b := boolFromRaw(v)
		p.RippleControl = &b
	}
	if v, ok := raw.PeakPerformance.Get(); ok {
		b := boolFromRaw(v)
		p.PeakPerformance = &b
	}
	if v, ok := raw.PeakPerformanceTime.Get(); ok {
		ms := peakPerfTimeFromRaw(v)
		p.PeakPerfTimeMs = &ms
	}
	if v, ok := raw.HighPerformance.Get(); ok {
		b := boolFromRaw(v)
		p.HighPerformance = &b
	}

	for i, s := range raw.Dpis {
		v, ok := s.Get()
		if !ok {
			warnings = append(warnings, fmt.Sprintf("dpi stage %d has no stored resolution, skipping", i))
			continue
		}
		p.DPIs = append(p.DPIs, profile.DPI{X: dpiFromRaw(v.X), Y: dpiFromRaw(v.Y)})
	}
	for i, s := range raw.DpiColors {
		v, ok := s.Get()
		if !ok {
			warnings = append(warnings, fmt.Sprintf("dpi stage %d has no stored color, skipping", i))
			continue
		}
		p.DPIColors = append(p.DPIColors, profile.Color(v))
	}

	macroNames := map[uint8]string{}
	p.Macros = map[string][]profile.MacroEvent{}
	for i, s := range raw.Macros {
		rm, ok := s.Get()
		if !ok {
			continue
		}
		macroNames[uint8(i)] = rm.Name
		if _, exists := p.Macros[rm.Name]; exists {
			warnings = append(warnings, fmt.Sprintf("macro name %q is stored at more than one slot, keeping the last one read", rm.Name))
		}
		events := make([]profile.MacroEvent, len(rm.Events))
		for j, re := range rm.Events {
			ke, err := rawToKeyEvent(re.KeyEvent)
			if err != nil {
				return nil, nil, err
			}
			events[j] = profile.MacroEvent{KeyEvent: ke, DelayMs: re.DelayMs}
		}
		p.Macros[rm.Name] = events
	}
	if len(p.Macros) == 0 {
		p.Macros = nil
	}

	p.ButtonActions = make([]profile.Action, len(raw.ButtonActions))
	for i, s := range raw.ButtonActions {
		ra, ok := s.Get()
		if !ok {
			warnings = append(warnings, fmt.Sprintf("button %d has no stored action, defaulting to disabled", i))
			p.ButtonActions[i] = profile.Disabled()
			continue
		}
		action, err := rawActionToAction(ra)
		if err != nil {
			return nil, nil, err
		}

		switch ra.Kind {
		case RawCombo:
			if i >= len(raw.Combos) {
				return nil, nil, device.InvalidConversion(fmt.Sprintf("button %d is bound to a combo but has no combo slot", i))
			}
			rc, ok := raw.Combos[i].Get()
			if !ok {
				return nil, nil, device.InvalidConversion(fmt.Sprintf("button %d is bound to a combo with no stored events", i))
			}
			events := make([]profile.KeyEvent, len(rc.Events))
			for j, re := range rc.Events {
				ke, err := rawToKeyEvent(re)
				if err != nil {
					return nil, nil, err
				}
				events[j] = ke
			}
			action.ComboEvents = events
		case RawMacro:
			name, ok := macroNames[ra.MacroIndex]
			if !ok {
				return nil, nil, device.InvalidConversion(fmt.Sprintf("button %d references macro slot %d, which has no stored macro", i, ra.MacroIndex))
			}
			action.MacroName = name
		}

		p.ButtonActions[i] = action
	}

	return p, warnings, nil
}
