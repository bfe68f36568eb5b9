package menubot

type options struct {
	title string
}

// Option configures Render.
type Option func(*options)

// WithTitle sets the message title. Default: "Today's menu".
func WithTitle(title string) Option {
	return func(o *options) {
		o.title = title
	}
}
