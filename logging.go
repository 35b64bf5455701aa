package lydia

import "github.com/hashicorp/go-hclog"

// defaultLogger is used by NewSession when no logger is supplied, keeping
// translation silent by default.
func defaultLogger() hclog.Logger {
	return hclog.NewNullLogger()
}
