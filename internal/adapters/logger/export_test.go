// export_test.go exports private functions for white-box testing.
package logger

var (
	CollectErrorChain = collectErrorChain
	ErrorMetadata     = errorMetadata
	FormatErrorChain  = formatErrorChain
	PreferJSON        = preferJSON
)
