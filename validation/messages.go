package validation

// Messages resolves message keys to localized error text. The engine composes
// keys ("emailRequired", "invalidEmail", ...) and never embeds display
// strings itself.
type Messages interface {
	Message(key string) string
}

// MessageFunc adapts a plain function to [Messages].
type MessageFunc func(key string) string

// Message implements [Messages].
func (f MessageFunc) Message(key string) string {
	return f(key)
}

var defaultMessageTable = map[string]string{
	"fieldRequired":       "This field is required",
	"nameRequired":        "Name is required",
	"emailRequired":       "Email is required",
	"passwordRequired":    "Password is required",
	"invalidEmail":        "Please enter a valid email address",
	"passwordMinLength":   "Password is too short",
	"passwordsDoNotMatch": "Passwords do not match",
}

type defaultMessages struct{}

// Unknown keys resolve to the key itself, matching the behavior of the
// translation layer the schema keys were designed for.
func (defaultMessages) Message(key string) string {
	if msg, ok := defaultMessageTable[key]; ok {
		return msg
	}
	return key
}

// DefaultMessages is the built-in English [Messages] table. It is used
// whenever a nil Messages is supplied.
var DefaultMessages Messages = defaultMessages{}
