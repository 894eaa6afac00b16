package cmd

import "github.com/PolarWolf314/seedxor/internal/workflows"

// commonOptions builds the workflow settings shared by every command.
func commonOptions() workflows.Common {
	return workflows.Common{AuditPath: Config.Audit.Path}
}
