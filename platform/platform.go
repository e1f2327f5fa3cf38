// Package platform names the target a binary was built for. The name is
// chosen by build tag:
//
//	go build -tags esp32
//	go build -tags arduino32
//
// Without either tag the build is generic. Setting both is a compile error.
package platform

// Info returns the name of the build target
func Info() string {
	return name
}
