// Package logtools configures the process-wide zap logger and offers two
// tracing helpers built on it.
//
// Setup is the only place that installs handlers. LogCall and LogSection log
// through zap.L() and rely on the host application having called Setup; the
// decorators never configure logging themselves.
//
//	cfg, _ := logtools.ConfigFromEnv(ctx)
//	logger, err := logtools.Setup(cfg)
//	if err != nil {
//	    return err
//	}
//	defer logtools.Close()
//
//	defer logtools.LogSection("import")()
//	add := logtools.LogCall(addFn, logtools.CallConfig{})
package logtools
