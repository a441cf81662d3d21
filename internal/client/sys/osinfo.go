package sys

import (
	"os"
	"runtime"
)

// OSInfo describes the host platform.
type OSInfo struct {
	Platform string
	Arch     string
	Hostname string
}

// DescribeOS returns the current platform descriptor. Hostname lookup
// failures leave the field empty.
func DescribeOS() OSInfo {
	hostname, _ := os.Hostname()
	return OSInfo{
		Platform: runtime.GOOS,
		Arch:     runtime.GOARCH,
		Hostname: hostname,
	}
}
