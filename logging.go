package rgatext

import "github.com/sirupsen/logrus"

// log is the package-level logger. Host applications that want this
// library's debug/warn lines folded into their own output can call
// SetLogger with a *logrus.Logger configured the way the rest of their
// process is.
var log = logrus.StandardLogger()

// SetLogger replaces the logger used by every SynchronizedText instance
// created after the call. It does not retroactively affect loggers already
// captured by existing instances' field entries.
func SetLogger(l *logrus.Logger) {
	if l == nil {
		return
	}
	log = l
}
