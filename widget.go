package willowgui

// widget is the kind-specific behavior of a Node. Hooks are called by the
// node at fixed points; baseWidget supplies no-op defaults.
type widget interface {
	// validate rejects props that cannot render. It may normalize p.
	validate(n *Node, p *Props) error
	// init runs once after a successful validate at construction.
	init(n *Node)
	// checkUpdate adds kind-specific prop differences to payload.
	checkUpdate(prev, next *Props, payload *UpdatePayload)
	// applyUpdate runs after n.props has been replaced.
	applyUpdate(n *Node, prev *Props, payload UpdatePayload)
	attached(n *Node)
	childrenChanged(n *Node)
	// transformed runs after n's world transform and bounds are recomputed,
	// before its children are.
	transformed(n *Node)
	// prepare runs before n is drawn.
	prepare(n *Node)
	// bubble reacts to e after n's user handler ran.
	bubble(n *Node, e *Event)
	cancel(n *Node)
	appearance(n *Node) Appearance
	clipRect(n *Node) (Rect, bool)
}

type baseWidget struct{}

func (baseWidget) validate(*Node, *Props) error               { return nil }
func (baseWidget) init(*Node)                                 {}
func (baseWidget) checkUpdate(*Props, *Props, *UpdatePayload) {}
func (baseWidget) applyUpdate(*Node, *Props, UpdatePayload)   {}
func (baseWidget) attached(*Node)                             {}
func (baseWidget) childrenChanged(*Node)                      {}
func (baseWidget) transformed(*Node)                          {}
func (baseWidget) prepare(*Node)                              {}
func (baseWidget) bubble(*Node, *Event)                       {}
func (baseWidget) cancel(*Node)                               {}
func (baseWidget) appearance(n *Node) Appearance              { return n.baseAppearance() }
func (baseWidget) clipRect(*Node) (Rect, bool)                { return Rect{}, false }

func newWidget(kind NodeKind) widget {
	switch kind {
	case KindLabel:
		return &labelWidget{}
	case KindButton:
		return &buttonWidget{}
	case KindCheckbox:
		return &checkboxWidget{}
	case KindRadioButton:
		return &radioWidget{}
	case KindSlider:
		return &sliderWidget{}
	case KindSliderBar:
		return &sliderBarWidget{}
	case KindClip:
		return &clipWidget{}
	case KindScroll:
		return &scrollWidget{}
	case kindSliderThumb:
		return &thumbWidget{}
	}
	return baseWidget{}
}

// baseAppearance is the style every kind shares.
func (n *Node) baseAppearance() Appearance {
	return Appearance{
		Background:  n.props.Background.resolved(),
		Transparent: n.props.Transparent,
		FillX:       1,
		FillY:       1,
	}
}

// CheckUpdate reports how next differs from prev for this node's kind.
func (n *Node) CheckUpdate(prev, next *Props) UpdatePayload {
	payload := checkBaseUpdate(prev, next)
	n.w.checkUpdate(prev, next, &payload)
	return payload
}

// Update stores next as the node's props and applies payload: a Transform
// change recomputes the subtree transform, and kind-specific state is
// refreshed. Returns a *ConfigError, leaving the node unchanged, when next
// cannot render.
func (n *Node) Update(next Props, payload UpdatePayload) error {
	if err := n.w.validate(n, &next); err != nil {
		return err
	}
	prev := n.props
	n.props = next
	if !payload.Changed() {
		return nil
	}
	if payload.Transform {
		n.refreshTransform()
	} else if payload.Others && n.transformValid {
		n.visible = !occluded(n)
	}
	n.w.applyUpdate(n, &prev, payload)
	return nil
}

// SetProps replaces the node's props, updating whatever changed.
func (n *Node) SetProps(next Props) error {
	return n.Update(next, n.CheckUpdate(&n.props, &next))
}
