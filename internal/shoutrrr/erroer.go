package shoutrrr

type Erroer interface {
	Error(s string)
}

type noopLogger struct{}

func (l noopLogger) Error(_ string) {}
