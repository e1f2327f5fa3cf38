//go:build esp32

package platform

const name = "ESP32 Platform"
