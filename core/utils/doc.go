// Package utils holds small helpers for values coming back from database drivers.
package utils
