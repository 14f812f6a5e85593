package version

// Version is the snipman release version
const Version = "0.2.0"

// String returns the printable version
func String() string {
	return "snipman " + Version
}
