package logtools

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/on-the-ground/toolbelt/decorators"
)

// CallConfig configures LogCall.
type CallConfig struct {
	// Name is the name logged for the call, default decorators.FuncName of
	// fn. Set it when fn is already decorated.
	Name string
}

// LogCall traces every call of fn at debug level: its arguments before the
// call, its result or error after.
func LogCall[A, R any](fn decorators.Func[A, R], cfg CallConfig) decorators.Func[A, R] {
	name := cfg.Name
	if name == "" {
		name = decorators.FuncName(fn)
	}
	return decorators.Wrap(fn, func(ctx context.Context, call decorators.Func[A, R], args A) (R, error) {
		logger := zap.L().Sugar()
		logger.Debugf("calling %s with args=%+v", name, args)
		res, err := call(args)
		if err != nil {
			logger.Debugf("%s failed: %v", name, err)
			return res, err
		}
		logger.Debugf("%s returned %+v", name, res)
		return res, nil
	})
}

// LogSection logs the entry of a named section and returns the func that logs
// its exit. Both lines carry the same section id.
//
//	defer logtools.LogSection("demo")()
func LogSection(name string) func() {
	logger := zap.L().With(zap.String("section_id", uuid.New().String()))
	logger.Info(">>> Entering section: " + name)
	return func() {
		logger.Info("<<< Exiting section: " + name)
	}
}
