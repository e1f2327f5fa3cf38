//go:build !esp32 && !arduino32

package platform

const name = "Generic Platform"
