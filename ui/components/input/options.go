package input

import "github.com/charmbracelet/bubbles/textinput"

// Options carries text field settings the widget does not recognize itself.
// They are forwarded untouched; the keys below are understood by the field,
// unknown keys are kept and can be read back with Model.Option.
type Options map[string]any

// Known option keys.
const (
	OptPrompt          = "prompt"          // string
	OptCharLimit       = "charLimit"       // int
	OptMaxLength       = "maxLength"       // int, alias of charLimit
	OptWidth           = "width"           // int
	OptSecureTextEntry = "secureTextEntry" // bool
	OptEditable        = "editable"        // bool, default true
	OptOnChangeText    = "onChangeText"    // func(string)
	OptOnSubmitEditing = "onSubmitEditing" // func(string)
)

// Values of the wrong type are ignored.
func (m *Model) apply(opts Options) {
	m.editable = true
	m.fixedWidth = false
	m.onChangeText = nil
	m.onSubmit = nil
	m.textinput.Prompt = ""
	m.textinput.CharLimit = 0
	m.textinput.EchoMode = textinput.EchoNormal

	for key, v := range opts {
		switch key {
		case OptPrompt:
			if s, ok := v.(string); ok {
				m.textinput.Prompt = s
			}
		case OptCharLimit, OptMaxLength:
			if n, ok := v.(int); ok {
				m.textinput.CharLimit = n
			}
		case OptWidth:
			if n, ok := v.(int); ok {
				m.textinput.Width = n
				m.fixedWidth = true
			}
		case OptSecureTextEntry:
			if b, ok := v.(bool); ok && b {
				m.textinput.EchoMode = textinput.EchoPassword
			}
		case OptEditable:
			if b, ok := v.(bool); ok {
				m.editable = b
			}
		case OptOnChangeText:
			if fn, ok := v.(func(string)); ok {
				m.onChangeText = fn
			}
		case OptOnSubmitEditing:
			if fn, ok := v.(func(string)); ok {
				m.onSubmit = fn
			}
		}
	}

	if !m.fixedWidth && m.width > 0 {
		m.SetWidth(m.width)
	}
}
