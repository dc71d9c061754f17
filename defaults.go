package tinytar

// ResetDefaults resets global configuration variables to their default values.
func ResetDefaults() {
	Verbose = false
	Quiet = false
	Progress = false
	SpaceCheck = true
	checksumType = defaultChecksumType
	clock = systemClock{}
	fsys = osFS{}
}
