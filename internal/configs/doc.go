// Package configs manages seedxor's user configuration.
//
// Configuration is stored in TOML at
// $XDG_CONFIG_HOME/seedxor/config.toml (os.UserConfigDir on other
// platforms), or at the path in SEEDXOR_CONFIG. A missing file means
// defaults:
//
//	[gen]
//	lines = 200
//
//	[xor]
//	atomic_output = true
//
//	[audit]
//	path = ""
//
// gen.lines is the default --lines for gen. xor.atomic_output makes xor
// write to a temporary file and publish it only after every round has
// succeeded. audit.path enables the JSON Lines audit log when set.
package configs
