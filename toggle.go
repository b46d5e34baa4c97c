package willowgui

// checkboxWidget draws CheckedBackground or UncheckedBackground and reports
// the current Checked value through OnCheck when a touch ends on it. The
// application owns the state and flips Checked with SetProps.
type checkboxWidget struct {
	baseWidget
}

func (checkboxWidget) checkUpdate(prev, next *Props, payload *UpdatePayload) {
	if prev.Checked != next.Checked ||
		!prev.CheckedBackground.Equal(next.CheckedBackground) ||
		!prev.UncheckedBackground.Equal(next.UncheckedBackground) {
		payload.Others = true
	}
}

func (checkboxWidget) bubble(n *Node, e *Event) {
	if e.Type == EventTouchEnd && n.props.OnCheck != nil {
		n.props.OnCheck(n.props.Checked)
	}
}

func (checkboxWidget) appearance(n *Node) Appearance {
	a := n.baseAppearance()
	if n.props.Checked {
		a.Background = n.props.CheckedBackground.resolved()
	} else {
		a.Background = n.props.UncheckedBackground.resolved()
	}
	return a
}

// radioWidget is selected when Props.Selected equals its Props.ID. A touch
// ending on it reports its ID through OnSelect.
type radioWidget struct {
	baseWidget
}

func (radioWidget) checkUpdate(prev, next *Props, payload *UpdatePayload) {
	if prev.Selected != next.Selected ||
		(prev.Selected == prev.ID) != (next.Selected == next.ID) ||
		!prev.SelectedBackground.Equal(next.SelectedBackground) ||
		!prev.UnselectedBackground.Equal(next.UnselectedBackground) {
		payload.Others = true
	}
}

func (radioWidget) bubble(n *Node, e *Event) {
	if e.Type == EventTouchEnd && n.props.OnSelect != nil {
		n.props.OnSelect(n.props.ID)
	}
}

func (radioWidget) appearance(n *Node) Appearance {
	a := n.baseAppearance()
	if n.props.Selected == n.props.ID {
		a.Background = n.props.SelectedBackground.resolved()
	} else {
		a.Background = n.props.UnselectedBackground.resolved()
	}
	return a
}
