package profile

// String returns the text-form name used by the persisted profile codec and
// CLI output for an ActionKind.
func (k ActionKind) String() string {
	switch k {
	case ActionDisabled:
		return "disabled"
	case ActionLeftClick:
		return "left_click"
	case ActionRightClick:
		return "right_click"
	case ActionMiddleClick:
		return "middle_click"
	case ActionBackClick:
		return "back_click"
	case ActionForwardClick:
		return "forward_click"
	case ActionDpiLoop:
		return "dpi_loop"
	case ActionDpiUp:
		return "dpi_up"
	case ActionDpiDown:
		return "dpi_down"
	case ActionDpiLock:
		return "dpi_lock"
	case ActionPollRateLoop:
		return "poll_rate_loop"
	case ActionWheelLeft:
		return "wheel_left"
	case ActionWheelRight:
		return "wheel_right"
	case ActionWheelUp:
		return "wheel_up"
	case ActionWheelDown:
		return "wheel_down"
	case ActionFire:
		return "fire"
	case ActionCombo:
		return "combo"
	case ActionMacro:
		return "macro"
	default:
		return "unknown"
	}
}

// ActionKindFromString resolves a text-form action kind name back to an
// ActionKind.
func ActionKindFromString(s string) (ActionKind, bool) {
	for _, k := range []ActionKind{
		ActionDisabled, ActionLeftClick, ActionRightClick, ActionMiddleClick,
		ActionBackClick, ActionForwardClick, ActionDpiLoop, ActionDpiUp,
		ActionDpiDown, ActionDpiLock, ActionPollRateLoop, ActionWheelLeft,
		ActionWheelRight, ActionWheelUp, ActionWheelDown, ActionFire,
		ActionCombo, ActionMacro,
	} {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}
