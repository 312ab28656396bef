// Package utils provides small shared helpers: rider-facing timestamp
// formatting and great-circle distance math.
package utils
