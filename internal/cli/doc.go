// Package cli provides the cobra commands of the cafe-env binary: printing,
// validating and deriving addresses from the environment record.
package cli
