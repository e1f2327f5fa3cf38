//go:build arduino32

package platform

const name = "Arduino32 Platform"
