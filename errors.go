package willowgui

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLayout is returned when a Slider or SliderBar layout is
	// neither LayoutRow nor LayoutColumn.
	ErrInvalidLayout = errors.New("layout can only be row or column")
	// ErrClipRotation is returned for clipping widgets with a rotation; the
	// scissor rectangle is always axis-aligned.
	ErrClipRotation = errors.New("clip does not support rotation")
	// ErrUnknownKind is returned by CreateElement for an unrecognized kind.
	ErrUnknownKind = errors.New("no such basic element")
	// ErrLayerExists is returned by CreateLayer for a duplicate name.
	ErrLayerExists = errors.New("layer already exists")
	// ErrMissingPadding is returned when the default List scroll bar is
	// requested without right padding to place it in.
	ErrMissingPadding = errors.New("default scroll bar requires right padding")
	// ErrInvalidConfig is returned when a Config fails validation.
	ErrInvalidConfig = errors.New("invalid config")
)

// ConfigError reports a widget configuration that cannot render. It is
// raised at construction or update time and is not recoverable for that
// widget.
type ConfigError struct {
	Node string // node name, or layer name for ErrLayerExists
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("willowgui: %s: %v", e.Node, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func configError(name string, err error) error {
	return &ConfigError{Node: name, Err: err}
}
