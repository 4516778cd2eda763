package uptime

// SetProcPaths redirects the proc files for the duration of a test.
func SetProcPaths(uptime, loadavg string) (restore func()) {
	oldUptime, oldLoadavg := uptimePath, loadavgPath
	uptimePath, loadavgPath = uptime, loadavg
	return func() { uptimePath, loadavgPath = oldUptime, oldLoadavg }
}
