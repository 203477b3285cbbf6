// Package utils provides small helpers shared across the application:
// content type detection, query redaction, file extension handling and safe numeric conversion.
package utils
