package workflows

import (
	"github.com/PolarWolf314/seedxor/internal/audit"
	"github.com/PolarWolf314/seedxor/internal/shares"
)

// Common holds settings shared by every workflow.
type Common struct {
	// Engine performs the XOR work. Defaults to shares.New().
	Engine *shares.Engine

	// AuditPath is the audit log location. Empty disables auditing.
	AuditPath string
}

func (c Common) engine() *shares.Engine {
	if c.Engine == nil {
		return shares.New()
	}
	return c.Engine
}

// record writes entry to the audit log. The error is reported to the caller
// but never fails the workflow.
func (c Common) record(entry audit.Entry) error {
	return audit.Log(c.AuditPath, entry)
}
